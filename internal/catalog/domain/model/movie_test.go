package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMovieDocument_DerivesLowercaseTitle(t *testing.T) {
	body := map[string]interface{}{
		"title":        "The MATRIX",
		"description":  "desc",
		"img":          "https://example.com/m.jpg",
		"stock":        float64(3),
		"rental_price": 2.5,
		"sale_price":   9.99,
		"availability": true,
		"likes":        float64(0),
		"extraneous":   "dropped",
	}

	fields := NewMovieDocument(body)
	assert.Equal(t, "the matrix", fields[FieldTitleToLowerCase])
	assert.Equal(t, "The MATRIX", fields[FieldTitle])
	assert.Equal(t, true, fields[FieldAvailability])
	assert.NotContains(t, fields, "extraneous")
}

func TestUpdatedMovieDocument_RecomputesDerivedField(t *testing.T) {
	fields := UpdatedMovieDocument(map[string]interface{}{
		"title":        "Blade RUNNER",
		"description":  "desc",
		"img":          "https://example.com/b.jpg",
		"stock":        float64(1),
		"rental_price": 3.0,
		"sale_price":   12.0,
		"likes":        float64(7),
		"availability": false,
	})

	assert.Equal(t, "blade runner", fields[FieldTitleToLowerCase])
	// Availability only changes through its dedicated patch.
	assert.NotContains(t, fields, FieldAvailability)
}

func TestNewUserDocument_KeepsOnlyUserFields(t *testing.T) {
	fields := NewUserDocument(map[string]interface{}{
		"name":  "Ana",
		"email": "ana@example.com",
		"rol":   "admin",
		"admin": true,
	})

	assert.Equal(t, map[string]interface{}{
		"name":  "Ana",
		"email": "ana@example.com",
		"rol":   "admin",
	}, fields)
}

func TestQueryBuilder_Chaining(t *testing.T) {
	q := NewQuery().
		WhereEquals(FieldTitle, "Alien").
		OrderBy(FieldLikes, Descending).
		WithOffset(20).
		WithLimit(10)

	assert.Equal(t, []Filter{{Field: FieldTitle, Value: "Alien"}}, q.Filters)
	assert.Equal(t, []Order{{Field: FieldLikes, Direction: Descending}}, q.Orders)
	assert.Equal(t, 20, q.Offset)
	assert.Equal(t, 10, q.Limit)
}

func TestQueryBuilder_DefaultsToAscending(t *testing.T) {
	q := NewQuery().OrderBy(FieldTitleToLowerCase, "sideways")
	assert.Equal(t, Ascending, q.Orders[0].Direction)
}
