package usecase

import (
	"context"
	"testing"

	"movie-rental/internal/catalog/domain/model"
	apperrors "movie-rental/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":  name,
		"email": name + "@example.com",
		"rol":   "client",
	}
}

func rentalBody() map[string]interface{} {
	return map[string]interface{}{
		"owner_name": "Ana",
		"owner_id":   "u1",
		"movie_name": "The Matrix",
		"rented_day": "2024-01-02",
		"return_day": "2024-01-09",
		"quantity":   float64(1),
		// Zero days of delay: a falsy value that must still pass validation.
		"delay": float64(0),
	}
}

func purchaseBody() map[string]interface{} {
	return map[string]interface{}{
		"owner_name": "Ana",
		"owner_id":   "u1",
		"movie_name": "The Matrix",
		"bought_day": "2024-01-02",
		"quantity":   float64(2),
	}
}

func newUserUC(t *testing.T) (*UserUsecase, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	return NewUserUsecase(store, testLogger{}), store
}

func TestCreateUser_ThenList(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	id, err := uc.CreateUser(ctx, userBody("Ana"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].ID)
	assert.Equal(t, "Ana", users[0].UserData["name"])
}

func TestCreateUser_MissingFieldStopsBeforeStore(t *testing.T) {
	uc, store := newUserUC(t)

	body := userBody("Ana")
	delete(body, "rol")
	_, err := uc.CreateUser(context.Background(), body)
	require.Error(t, err)
	assert.Equal(t, `Field "rol" is required.`, err.Error())
	assert.Zero(t, store.addCalls)
}

func TestGetUser_AbsentYieldsEmptyRecord(t *testing.T) {
	uc, _ := newUserUC(t)

	fields, err := uc.GetUser(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, fields)
}

func TestAddRental_RoundTrip(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	userID, err := uc.CreateUser(ctx, userBody("Ana"))
	require.NoError(t, err)

	rentalID, err := uc.AddRental(ctx, userID, rentalBody())
	require.NoError(t, err)

	fields, err := uc.GetRental(ctx, userID, rentalID)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", fields["movie_name"])
	assert.Equal(t, float64(0), fields["delay"])

	rentals, err := uc.ListRentals(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, rentalID, rentals[0].ID)
}

func TestAddRental_UnknownUserShortCircuits(t *testing.T) {
	uc, store := newUserUC(t)

	_, err := uc.AddRental(context.Background(), "ghost", rentalBody())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "User not found.", err.Error())
	// The child collection must never be touched when the parent is missing.
	assert.Zero(t, store.addCalls)
	assert.Zero(t, store.queryCalls[model.CollectionRentedMovies])
}

func TestAddRental_ValidatesBeforeUserLookup(t *testing.T) {
	uc, store := newUserUC(t)

	body := rentalBody()
	delete(body, "return_day")
	_, err := uc.AddRental(context.Background(), "ghost", body)
	require.Error(t, err)
	assert.Equal(t, `Field "return_day" is required.`, err.Error())
	assert.Zero(t, store.getCalls[model.CollectionUsers])
}

func TestAddRental_RejectsNonNumericDelay(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	userID, err := uc.CreateUser(ctx, userBody("Ana"))
	require.NoError(t, err)

	// delay counts days, so a bool is the wrong kind and reads as missing.
	body := rentalBody()
	body["delay"] = false
	_, err = uc.AddRental(ctx, userID, body)
	require.Error(t, err)
	assert.Equal(t, `Field "delay" is required.`, err.Error())
}

func TestListRentals_UnknownUserIsNotFound(t *testing.T) {
	uc, store := newUserUC(t)

	_, err := uc.ListRentals(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, "User not found.", err.Error())
	assert.Zero(t, store.queryCalls[model.CollectionRentedMovies])
}

func TestGetRental_UnknownRentalUnderExistingUser(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	userID, err := uc.CreateUser(ctx, userBody("Ana"))
	require.NoError(t, err)

	_, err = uc.GetRental(ctx, userID, "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Rental not found.", err.Error())
}

func TestRentals_AreScopedToTheirOwner(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	ana, err := uc.CreateUser(ctx, userBody("Ana"))
	require.NoError(t, err)
	bob, err := uc.CreateUser(ctx, userBody("Bob"))
	require.NoError(t, err)

	rentalID, err := uc.AddRental(ctx, ana, rentalBody())
	require.NoError(t, err)

	// Bob cannot see Ana's rental, by listing or by direct ID.
	rentals, err := uc.ListRentals(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, rentals)

	_, err = uc.GetRental(ctx, bob, rentalID)
	require.Error(t, err)
	assert.Equal(t, "Rental not found.", err.Error())
}

func TestAddPurchase_RoundTrip(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	userID, err := uc.CreateUser(ctx, userBody("Ana"))
	require.NoError(t, err)

	purchaseID, err := uc.AddPurchase(ctx, userID, purchaseBody())
	require.NoError(t, err)

	fields, err := uc.GetPurchase(ctx, userID, purchaseID)
	require.NoError(t, err)
	assert.Equal(t, float64(2), fields["quantity"])

	purchases, err := uc.ListPurchases(ctx, userID)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, purchaseID, purchases[0].ID)
}

func TestAddPurchase_UnknownUserShortCircuits(t *testing.T) {
	uc, store := newUserUC(t)

	_, err := uc.AddPurchase(context.Background(), "ghost", purchaseBody())
	require.Error(t, err)
	assert.Equal(t, "User not found.", err.Error())
	assert.Zero(t, store.addCalls)
}

func TestGetPurchase_UnknownPurchaseUsesLowercaseLabel(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	userID, err := uc.CreateUser(ctx, userBody("Ana"))
	require.NoError(t, err)

	_, err = uc.GetPurchase(ctx, userID, "missing")
	require.Error(t, err)
	assert.Equal(t, "purchase not found.", err.Error())
}

func TestRentalsAndPurchases_DoNotMix(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	userID, err := uc.CreateUser(ctx, userBody("Ana"))
	require.NoError(t, err)

	rentalID, err := uc.AddRental(ctx, userID, rentalBody())
	require.NoError(t, err)

	_, err = uc.GetPurchase(ctx, userID, rentalID)
	require.Error(t, err)
	assert.Equal(t, "purchase not found.", err.Error())

	purchases, err := uc.ListPurchases(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}
