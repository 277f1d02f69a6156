package http

import (
	"movie-rental/internal/catalog/usecase"
	"movie-rental/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// MovieHandler exposes the movie catalog endpoints.
type MovieHandler struct {
	movies usecase.MovieService
	log    logger.Logger
}

// NewMovieHandler creates a MovieHandler.
func NewMovieHandler(movies usecase.MovieService, log logger.Logger) *MovieHandler {
	return &MovieHandler{
		movies: movies,
		log:    log.WithComponent("movie_handler"),
	}
}

// RegisterRoutes registers the movie endpoints.
func (h *MovieHandler) RegisterRoutes(router fiber.Router) {
	movies := router.Group("/movies")
	movies.Post("/", h.CreateMovie)
	movies.Get("/", h.ListMovies)
	movies.Get("/availability/:value", h.ListByAvailability)
	movies.Post("/:movie_id/like", h.LikeMovie)
	movies.Get("/:movie_id", h.GetMovie)
	movies.Put("/:movie_id", h.UpdateMovie)
	movies.Delete("/:movie_id", h.DeleteMovie)
	movies.Patch("/:movie_id/availability", h.PatchAvailability)
}

// CreateMovie handles POST /movies.
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	id, err := h.movies.CreateMovie(c.Context(), parseBody(c))
	if err != nil {
		return respondError(c, h.log, err, "Failed to create the movie.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Movie created successfully.",
	})
}

// ListMovies handles GET /movies with sortBy, sortOrder, page, perPage and
// title query parameters.
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	listing, err := h.movies.ListMovies(c.Context(), usecase.ListMoviesRequest{
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      c.Query("page"),
		PerPage:   c.Query("perPage"),
		Title:     c.Query("title"),
	})
	if err != nil {
		return respondError(c, h.log, err, "Failed to list the movies.")
	}

	return c.JSON(listing)
}

// GetMovie handles GET /movies/:movie_id. An unknown ID responds 200 with an
// empty body.
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	fields, err := h.movies.GetMovie(c.Context(), c.Params("movie_id"))
	if err != nil {
		return respondError(c, h.log, err, "Failed to get the movie data.")
	}
	if fields == nil {
		return c.Status(fiber.StatusOK).Send(nil)
	}

	return c.JSON(fields)
}

// UpdateMovie handles PUT /movies/:movie_id, the full-document update.
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id := c.Params("movie_id")
	if err := h.movies.UpdateMovie(c.Context(), id, parseBody(c)); err != nil {
		return respondError(c, h.log, err, "Error updating the movie data.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "The data of the movie were updated succesfully.",
	})
}

// PatchAvailability handles PATCH /movies/:movie_id/availability. The raw
// request value is written as-is.
func (h *MovieHandler) PatchAvailability(c *fiber.Ctx) error {
	value := parseBody(c)["availability"]
	if err := h.movies.PatchAvailability(c.Context(), c.Params("movie_id"), value); err != nil {
		return respondError(c, h.log, err, "Failed to update the availability.")
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

// LikeMovie handles POST /movies/:movie_id/like.
func (h *MovieHandler) LikeMovie(c *fiber.Ctx) error {
	if err := h.movies.LikeMovie(c.Context(), c.Params("movie_id")); err != nil {
		return respondError(c, h.log, err, "Failed to like the movie.")
	}

	return c.JSON(fiber.Map{"message": "Liked the movie!"})
}

// DeleteMovie handles DELETE /movies/:movie_id. Unknown IDs still succeed.
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	if err := h.movies.DeleteMovie(c.Context(), c.Params("movie_id")); err != nil {
		return respondError(c, h.log, err, "Failed to delete the movie.")
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

// ListByAvailability handles GET /movies/availability/:value. Zero matches
// respond 404.
func (h *MovieHandler) ListByAvailability(c *fiber.Ctx) error {
	movies, err := h.movies.ListMoviesByAvailability(c.Context(), c.Params("value"))
	if err != nil {
		return respondError(c, h.log, err, "Something went wrong")
	}
	if len(movies) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No movies found with the given availability value.",
		})
	}

	return c.JSON(movies)
}
