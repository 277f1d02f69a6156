package model

import "strings"

// Collection names used by the catalog.
const (
	CollectionMovies       = "movies"
	CollectionUsers        = "users"
	CollectionRentedMovies = "rented_movies"
	CollectionPurchases    = "purchases"
)

// Movie field names.
const (
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldImg              = "img"
	FieldStock            = "stock"
	FieldRentalPrice      = "rental_price"
	FieldSalePrice        = "sale_price"
	FieldAvailability     = "availability"
	FieldLikes            = "likes"
	FieldTitleToLowerCase = "titleToLowerCase"
)

// MovieCreateFields lists the required fields for creating a movie, in the
// order validation failures are reported.
var MovieCreateFields = []FieldSpec{
	{FieldTitle, KindString},
	{FieldDescription, KindString},
	{FieldImg, KindString},
	{FieldStock, KindNumber},
	{FieldRentalPrice, KindNumber},
	{FieldSalePrice, KindNumber},
	{FieldAvailability, KindBool},
	{FieldLikes, KindNumber},
}

// MovieUpdateFields lists the required fields for a full movie update.
// Availability is excluded: it changes only through its dedicated patch.
var MovieUpdateFields = []FieldSpec{
	{FieldTitle, KindString},
	{FieldDescription, KindString},
	{FieldImg, KindString},
	{FieldStock, KindNumber},
	{FieldRentalPrice, KindNumber},
	{FieldSalePrice, KindNumber},
	{FieldLikes, KindNumber},
}

// NewMovieDocument projects a validated create payload onto the stored movie
// shape, deriving titleToLowerCase for case-insensitive ordering.
func NewMovieDocument(body map[string]interface{}) map[string]interface{} {
	fields := pickFields(body, MovieCreateFields)
	fields[FieldTitleToLowerCase] = lowercaseTitle(body)
	return fields
}

// UpdatedMovieDocument projects a validated full-update payload onto the
// stored movie shape. The title is rewritten, so the derived sort key is
// recomputed with it; availability is never touched here.
func UpdatedMovieDocument(body map[string]interface{}) map[string]interface{} {
	fields := pickFields(body, MovieUpdateFields)
	fields[FieldTitleToLowerCase] = lowercaseTitle(body)
	return fields
}

func lowercaseTitle(body map[string]interface{}) string {
	title, _ := body[FieldTitle].(string)
	return strings.ToLower(title)
}

func pickFields(body map[string]interface{}, specs []FieldSpec) map[string]interface{} {
	fields := make(map[string]interface{}, len(specs))
	for _, spec := range specs {
		fields[spec.Name] = body[spec.Name]
	}
	return fields
}
