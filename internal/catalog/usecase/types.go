package usecase

import "context"

// ListMoviesRequest carries the raw listing parameters as they arrive on the
// query string. Coercion to numbers, with fallback to defaults, happens in
// the usecase.
type ListMoviesRequest struct {
	SortBy    string
	SortOrder string
	Page      string
	PerPage   string
	Title     string
}

// MovieListing is the paginated listing response. TotalMovies counts the
// whole filtered set, independent of the pagination window.
type MovieListing struct {
	TotalMovies  int64       `json:"total_movies"`
	MoviesOnPage int         `json:"movies_on_page"`
	Movies       []MovieItem `json:"movies"`
}

// MovieItem tags a movie record with its store ID.
type MovieItem struct {
	ID        string                 `json:"id"`
	MovieData map[string]interface{} `json:"movie_data"`
}

// UserItem tags a user record with its store ID.
type UserItem struct {
	ID       string                 `json:"id"`
	UserData map[string]interface{} `json:"user_data"`
}

// RentalItem tags a rental record with its store ID.
type RentalItem struct {
	ID         string                 `json:"id"`
	RentalData map[string]interface{} `json:"rental_data"`
}

// PurchaseItem tags a purchase record with its store ID.
type PurchaseItem struct {
	ID           string                 `json:"id"`
	PurchaseData map[string]interface{} `json:"purchase_data"`
}

// MovieService is the movie-facing contract consumed by the HTTP adapter.
type MovieService interface {
	CreateMovie(ctx context.Context, body map[string]interface{}) (string, error)
	ListMovies(ctx context.Context, req ListMoviesRequest) (*MovieListing, error)
	GetMovie(ctx context.Context, id string) (map[string]interface{}, error)
	UpdateMovie(ctx context.Context, id string, body map[string]interface{}) error
	PatchAvailability(ctx context.Context, id string, value interface{}) error
	LikeMovie(ctx context.Context, id string) error
	DeleteMovie(ctx context.Context, id string) error
	ListMoviesByAvailability(ctx context.Context, value string) ([]MovieItem, error)
}

// UserService is the user-facing contract consumed by the HTTP adapter,
// including the nested rental and purchase operations.
type UserService interface {
	CreateUser(ctx context.Context, body map[string]interface{}) (string, error)
	ListUsers(ctx context.Context) ([]UserItem, error)
	GetUser(ctx context.Context, id string) (map[string]interface{}, error)
	AddRental(ctx context.Context, userID string, body map[string]interface{}) (string, error)
	ListRentals(ctx context.Context, userID string) ([]RentalItem, error)
	GetRental(ctx context.Context, userID, rentalID string) (map[string]interface{}, error)
	AddPurchase(ctx context.Context, userID string, body map[string]interface{}) (string, error)
	ListPurchases(ctx context.Context, userID string) ([]PurchaseItem, error)
	GetPurchase(ctx context.Context, userID, purchaseID string) (map[string]interface{}, error)
}

// MovieCache caches movie records by ID in front of the store. A nil cache
// disables caching.
type MovieCache interface {
	Get(ctx context.Context, id string) (map[string]interface{}, bool)
	Set(ctx context.Context, id string, fields map[string]interface{})
	Invalidate(ctx context.Context, id string)
}
