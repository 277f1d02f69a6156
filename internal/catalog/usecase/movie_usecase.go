package usecase

import (
	"context"
	"errors"
	"strconv"

	"movie-rental/internal/catalog/domain/model"
	"movie-rental/internal/catalog/domain/repository"
	apperrors "movie-rental/internal/shared/errors"
	"movie-rental/internal/shared/logger"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// MovieUsecase implements MovieService: the catalog query engine plus the
// movie mutation paths.
type MovieUsecase struct {
	store repository.DocumentStore
	cache MovieCache
	log   logger.Logger
}

// NewMovieUsecase creates a MovieUsecase. cache may be nil to disable
// read-through caching of single-movie fetches.
func NewMovieUsecase(store repository.DocumentStore, cache MovieCache, log logger.Logger) *MovieUsecase {
	return &MovieUsecase{
		store: store,
		cache: cache,
		log:   log.WithComponent("movie_usecase"),
	}
}

var moviesRef = repository.Collection(model.CollectionMovies)

// CreateMovie validates the payload and appends a new movie document,
// deriving the lowercase title sort key.
func (uc *MovieUsecase) CreateMovie(ctx context.Context, body map[string]interface{}) (string, error) {
	if err := model.ValidateRequired(body, model.MovieCreateFields); err != nil {
		return "", err
	}

	id, err := uc.store.Add(ctx, moviesRef, model.NewMovieDocument(body))
	if err != nil {
		uc.log.Errorf("failed to create movie: %v", err)
		return "", err
	}

	uc.log.Infof("movie %s created", id)
	return id, nil
}

// ListMovies runs the filtered, sorted, paginated catalog listing.
//
// The total is counted on the filtered set before the pagination window is
// applied, so an out-of-range page yields an empty page with the correct
// total.
func (uc *MovieUsecase) ListMovies(ctx context.Context, req ListMoviesRequest) (*MovieListing, error) {
	page := coercePositive(req.Page, defaultPage)
	perPage := coercePositive(req.PerPage, defaultPerPage)

	query := model.NewQuery()
	if req.Title != "" {
		query = query.WhereEquals(model.FieldTitle, req.Title)
	}
	if req.SortBy == model.FieldLikes {
		query = query.OrderBy(model.FieldLikes, req.SortOrder)
	} else {
		query = query.OrderBy(model.FieldTitleToLowerCase, req.SortOrder)
	}

	total, err := uc.store.Count(ctx, moviesRef, query)
	if err != nil {
		uc.log.Errorf("failed to count movies: %v", err)
		return nil, err
	}

	startIndex := (page - 1) * perPage
	docs, err := uc.store.Query(ctx, moviesRef, query.WithOffset(startIndex).WithLimit(perPage))
	if err != nil {
		uc.log.Errorf("failed to list movies: %v", err)
		return nil, err
	}

	movies := make([]MovieItem, 0, len(docs))
	for _, doc := range docs {
		movies = append(movies, MovieItem{ID: doc.DocumentID, MovieData: doc.Fields})
	}

	return &MovieListing{
		TotalMovies:  total,
		MoviesOnPage: len(movies),
		Movies:       movies,
	}, nil
}

// GetMovie fetches a single movie's fields. A missing ID yields (nil, nil):
// the read path reports absence as an empty record, not an error.
func (uc *MovieUsecase) GetMovie(ctx context.Context, id string) (map[string]interface{}, error) {
	if uc.cache != nil {
		if fields, ok := uc.cache.Get(ctx, id); ok {
			return fields, nil
		}
	}

	doc, err := uc.store.Get(ctx, moviesRef, id)
	if errors.Is(err, apperrors.ErrDocumentNotFound) {
		return nil, nil
	}
	if err != nil {
		uc.log.Errorf("failed to get movie %s: %v", id, err)
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, id, doc.Fields)
	}
	return doc.Fields, nil
}

// UpdateMovie validates and replaces every listed movie field, recomputing
// the lowercase title sort key. Availability is left untouched.
func (uc *MovieUsecase) UpdateMovie(ctx context.Context, id string, body map[string]interface{}) error {
	if err := model.ValidateRequired(body, model.MovieUpdateFields); err != nil {
		return err
	}

	if err := uc.store.Update(ctx, moviesRef, id, model.UpdatedMovieDocument(body)); err != nil {
		uc.log.Errorf("failed to update movie %s: %v", id, err)
		return err
	}

	uc.invalidate(ctx, id)
	return nil
}

// PatchAvailability overwrites the availability field with the raw request
// value. No validation by contract.
func (uc *MovieUsecase) PatchAvailability(ctx context.Context, id string, value interface{}) error {
	err := uc.store.Update(ctx, moviesRef, id, map[string]interface{}{model.FieldAvailability: value})
	if err != nil {
		uc.log.Errorf("failed to patch availability on movie %s: %v", id, err)
		return err
	}

	uc.invalidate(ctx, id)
	return nil
}

// LikeMovie adds one like via the store's atomic increment, so concurrent
// likes never lose updates.
func (uc *MovieUsecase) LikeMovie(ctx context.Context, id string) error {
	err := uc.store.Increment(ctx, moviesRef, id, model.FieldLikes, 1)
	if errors.Is(err, apperrors.ErrDocumentNotFound) {
		return apperrors.NewNotFoundError("Movie")
	}
	if err != nil {
		uc.log.Errorf("failed to like movie %s: %v", id, err)
		return err
	}

	uc.invalidate(ctx, id)
	return nil
}

// DeleteMovie removes a movie unconditionally. An unknown ID is not an
// error; the delete path performs no existence check.
func (uc *MovieUsecase) DeleteMovie(ctx context.Context, id string) error {
	if err := uc.store.Delete(ctx, moviesRef, id); err != nil {
		uc.log.Errorf("failed to delete movie %s: %v", id, err)
		return err
	}

	uc.invalidate(ctx, id)
	return nil
}

// ListMoviesByAvailability returns every movie whose availability equals the
// literal "true" or "false". Any other value matches nothing.
func (uc *MovieUsecase) ListMoviesByAvailability(ctx context.Context, value string) ([]MovieItem, error) {
	if value != "true" && value != "false" {
		return nil, nil
	}

	query := model.NewQuery().WhereEquals(model.FieldAvailability, value == "true")
	docs, err := uc.store.Query(ctx, moviesRef, query)
	if err != nil {
		uc.log.Errorf("failed to list movies by availability: %v", err)
		return nil, err
	}

	movies := make([]MovieItem, 0, len(docs))
	for _, doc := range docs {
		movies = append(movies, MovieItem{ID: doc.DocumentID, MovieData: doc.Fields})
	}
	return movies, nil
}

func (uc *MovieUsecase) invalidate(ctx context.Context, id string) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, id)
	}
}

// coercePositive parses raw as a positive integer, falling back to def on
// missing, non-numeric or non-positive input.
func coercePositive(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
