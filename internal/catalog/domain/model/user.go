package model

// User field names.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldRol   = "rol"
)

// Rental and purchase field names.
const (
	FieldOwnerName = "owner_name"
	FieldOwnerID   = "owner_id"
	FieldMovieName = "movie_name"
	FieldQuantity  = "quantity"
	FieldRentedDay = "rented_day"
	FieldReturnDay = "return_day"
	FieldDelay     = "delay"
	FieldBoughtDay = "bought_day"
)

// UserFields lists the required fields for creating a user.
var UserFields = []FieldSpec{
	{FieldName, KindString},
	{FieldEmail, KindString},
	{FieldRol, KindString},
}

// RentalFields lists the required fields for appending a rental record.
var RentalFields = []FieldSpec{
	{FieldOwnerName, KindString},
	{FieldOwnerID, KindString},
	{FieldMovieName, KindString},
	{FieldRentedDay, KindString},
	{FieldReturnDay, KindString},
	{FieldQuantity, KindNumber},
	{FieldDelay, KindNumber},
}

// PurchaseFields lists the required fields for appending a purchase record.
var PurchaseFields = []FieldSpec{
	{FieldOwnerName, KindString},
	{FieldOwnerID, KindString},
	{FieldMovieName, KindString},
	{FieldBoughtDay, KindString},
	{FieldQuantity, KindNumber},
}

// NewUserDocument projects a validated user payload onto the stored shape.
func NewUserDocument(body map[string]interface{}) map[string]interface{} {
	return pickFields(body, UserFields)
}

// NewRentalDocument projects a validated rental payload onto the stored shape.
// Rentals are append-only; there is no update counterpart.
func NewRentalDocument(body map[string]interface{}) map[string]interface{} {
	return pickFields(body, RentalFields)
}

// NewPurchaseDocument projects a validated purchase payload onto the stored
// shape. Purchases are append-only, like rentals.
func NewPurchaseDocument(body map[string]interface{}) map[string]interface{} {
	return pickFields(body, PurchaseFields)
}
