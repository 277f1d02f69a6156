package model

// Query describes a filtered, ordered, paginated read over a collection.
type Query struct {
	Filters []Filter // equality clauses, combined with AND
	Orders  []Order
	Limit   int
	Offset  int
}

// Filter represents a single equality condition in a query (where clause).
type Filter struct {
	Field string
	Value interface{}
}

// Order represents a single ordering condition in a query.
type Order struct {
	Field     string
	Direction string
}

const (
	// Ascending is used for ordering in ascending order.
	Ascending = "asc"
	// Descending is used for ordering in descending order.
	Descending = "desc"
)

// NewQuery returns an empty query.
func NewQuery() Query {
	return Query{}
}

// WhereEquals adds an equality filter on field.
func (q Query) WhereEquals(field string, value interface{}) Query {
	q.Filters = append(q.Filters, Filter{Field: field, Value: value})
	return q
}

// OrderBy adds an ordering clause. Any direction other than Descending
// orders ascending.
func (q Query) OrderBy(field, direction string) Query {
	if direction != Descending {
		direction = Ascending
	}
	q.Orders = append(q.Orders, Order{Field: field, Direction: direction})
	return q
}

// WithOffset sets the number of documents to skip.
func (q Query) WithOffset(n int) Query {
	q.Offset = n
	return q
}

// WithLimit caps the number of documents returned.
func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}
