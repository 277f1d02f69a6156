package http

import (
	"errors"

	apperrors "movie-rental/internal/shared/errors"
	"movie-rental/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// HTTPHandler groups the catalog's HTTP handlers.
type HTTPHandler struct {
	Movies *MovieHandler
	Users  *UserHandler
}

// NewHTTPHandler creates the top-level HTTP handler.
func NewHTTPHandler(movies *MovieHandler, users *UserHandler) *HTTPHandler {
	return &HTTPHandler{
		Movies: movies,
		Users:  users,
	}
}

// RegisterRoutes registers every catalog route on the router.
func (h *HTTPHandler) RegisterRoutes(router fiber.Router) {
	h.Movies.RegisterRoutes(router)
	h.Users.RegisterRoutes(router)
}

// parseBody decodes the request body into a dynamic map. An unreadable body
// degrades to an empty map so the validator reports the first missing field.
func parseBody(c *fiber.Ctx) map[string]interface{} {
	body := make(map[string]interface{})
	if err := c.BodyParser(&body); err != nil {
		return map[string]interface{}{}
	}
	return body
}

// respondError maps an error onto the response envelope. Validation and
// not-found errors carry their own status and message; everything else
// becomes a 500 with the endpoint's generic message, with the detail logged
// server-side only.
func respondError(c *fiber.Ctx, log logger.Logger, err error, fallback string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode < fiber.StatusInternalServerError {
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{"error": appErr.Message})
	}

	log.Errorf("%s: %v", fallback, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
