package usecase

import (
	"context"
	"errors"

	"movie-rental/internal/catalog/domain/model"
	"movie-rental/internal/catalog/domain/repository"
	apperrors "movie-rental/internal/shared/errors"
	"movie-rental/internal/shared/logger"
)

// UserUsecase implements UserService. The nested rental and purchase
// operations follow the ownership cascade: the user document is fetched and
// verified before its child collection is touched, and a missing user
// short-circuits without any child access.
type UserUsecase struct {
	store repository.DocumentStore
	log   logger.Logger
}

// NewUserUsecase creates a UserUsecase.
func NewUserUsecase(store repository.DocumentStore, log logger.Logger) *UserUsecase {
	return &UserUsecase{
		store: store,
		log:   log.WithComponent("user_usecase"),
	}
}

var usersRef = repository.Collection(model.CollectionUsers)

// CreateUser validates the payload and appends a new user document.
func (uc *UserUsecase) CreateUser(ctx context.Context, body map[string]interface{}) (string, error) {
	if err := model.ValidateRequired(body, model.UserFields); err != nil {
		return "", err
	}

	id, err := uc.store.Add(ctx, usersRef, model.NewUserDocument(body))
	if err != nil {
		uc.log.Errorf("failed to create user: %v", err)
		return "", err
	}

	uc.log.Infof("user %s created", id)
	return id, nil
}

// ListUsers returns every user record, unpaginated.
func (uc *UserUsecase) ListUsers(ctx context.Context) ([]UserItem, error) {
	docs, err := uc.store.Query(ctx, usersRef, model.NewQuery())
	if err != nil {
		uc.log.Errorf("failed to list users: %v", err)
		return nil, err
	}

	users := make([]UserItem, 0, len(docs))
	for _, doc := range docs {
		users = append(users, UserItem{ID: doc.DocumentID, UserData: doc.Fields})
	}
	return users, nil
}

// GetUser fetches a single user's fields. A missing ID yields (nil, nil);
// the existence cascade applies to nested resource paths, not to this read.
func (uc *UserUsecase) GetUser(ctx context.Context, id string) (map[string]interface{}, error) {
	doc, err := uc.store.Get(ctx, usersRef, id)
	if errors.Is(err, apperrors.ErrDocumentNotFound) {
		return nil, nil
	}
	if err != nil {
		uc.log.Errorf("failed to get user %s: %v", id, err)
		return nil, err
	}
	return doc.Fields, nil
}

// AddRental appends a rental record under the given user after verifying the
// user exists.
func (uc *UserUsecase) AddRental(ctx context.Context, userID string, body map[string]interface{}) (string, error) {
	if err := model.ValidateRequired(body, model.RentalFields); err != nil {
		return "", err
	}
	if err := uc.requireUser(ctx, userID); err != nil {
		return "", err
	}

	id, err := uc.store.Add(ctx, rentalsRef(userID), model.NewRentalDocument(body))
	if err != nil {
		uc.log.Errorf("failed to add rental for user %s: %v", userID, err)
		return "", err
	}
	return id, nil
}

// ListRentals returns every rental owned by the given user, unpaginated.
func (uc *UserUsecase) ListRentals(ctx context.Context, userID string) ([]RentalItem, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	docs, err := uc.store.Query(ctx, rentalsRef(userID), model.NewQuery())
	if err != nil {
		uc.log.Errorf("failed to list rentals for user %s: %v", userID, err)
		return nil, err
	}

	rentals := make([]RentalItem, 0, len(docs))
	for _, doc := range docs {
		rentals = append(rentals, RentalItem{ID: doc.DocumentID, RentalData: doc.Fields})
	}
	return rentals, nil
}

// GetRental fetches one rental owned by the given user.
func (uc *UserUsecase) GetRental(ctx context.Context, userID, rentalID string) (map[string]interface{}, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	doc, err := uc.store.Get(ctx, rentalsRef(userID), rentalID)
	if errors.Is(err, apperrors.ErrDocumentNotFound) {
		return nil, apperrors.NewNotFoundError("Rental")
	}
	if err != nil {
		uc.log.Errorf("failed to get rental %s for user %s: %v", rentalID, userID, err)
		return nil, err
	}
	return doc.Fields, nil
}

// AddPurchase appends a purchase record under the given user after verifying
// the user exists.
func (uc *UserUsecase) AddPurchase(ctx context.Context, userID string, body map[string]interface{}) (string, error) {
	if err := model.ValidateRequired(body, model.PurchaseFields); err != nil {
		return "", err
	}
	if err := uc.requireUser(ctx, userID); err != nil {
		return "", err
	}

	id, err := uc.store.Add(ctx, purchasesRef(userID), model.NewPurchaseDocument(body))
	if err != nil {
		uc.log.Errorf("failed to add purchase for user %s: %v", userID, err)
		return "", err
	}
	return id, nil
}

// ListPurchases returns every purchase owned by the given user, unpaginated.
func (uc *UserUsecase) ListPurchases(ctx context.Context, userID string) ([]PurchaseItem, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	docs, err := uc.store.Query(ctx, purchasesRef(userID), model.NewQuery())
	if err != nil {
		uc.log.Errorf("failed to list purchases for user %s: %v", userID, err)
		return nil, err
	}

	purchases := make([]PurchaseItem, 0, len(docs))
	for _, doc := range docs {
		purchases = append(purchases, PurchaseItem{ID: doc.DocumentID, PurchaseData: doc.Fields})
	}
	return purchases, nil
}

// GetPurchase fetches one purchase owned by the given user.
func (uc *UserUsecase) GetPurchase(ctx context.Context, userID, purchaseID string) (map[string]interface{}, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	doc, err := uc.store.Get(ctx, purchasesRef(userID), purchaseID)
	if errors.Is(err, apperrors.ErrDocumentNotFound) {
		return nil, apperrors.NewNotFoundError("purchase")
	}
	if err != nil {
		uc.log.Errorf("failed to get purchase %s for user %s: %v", purchaseID, userID, err)
		return nil, err
	}
	return doc.Fields, nil
}

// requireUser verifies the parent user document exists before any child
// collection access. A missing user stops the cascade.
func (uc *UserUsecase) requireUser(ctx context.Context, userID string) error {
	_, err := uc.store.Get(ctx, usersRef, userID)
	if errors.Is(err, apperrors.ErrDocumentNotFound) {
		return apperrors.NewNotFoundError("User")
	}
	if err != nil {
		uc.log.Errorf("failed to verify user %s: %v", userID, err)
		return err
	}
	return nil
}

func rentalsRef(userID string) repository.CollectionRef {
	return repository.Subcollection(userID, model.CollectionRentedMovies)
}

func purchasesRef(userID string) repository.CollectionRef {
	return repository.Subcollection(userID, model.CollectionPurchases)
}
