package http

import (
	"movie-rental/internal/catalog/usecase"
	"movie-rental/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// UserHandler exposes the user endpoints and the nested rental and purchase
// resources beneath them.
type UserHandler struct {
	users usecase.UserService
	log   logger.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users usecase.UserService, log logger.Logger) *UserHandler {
	return &UserHandler{
		users: users,
		log:   log.WithComponent("user_handler"),
	}
}

// RegisterRoutes registers the user endpoints, including the nested
// rented_movies and purchases collections.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Post("/", h.CreateUser)
	users.Get("/", h.ListUsers)
	users.Get("/:user_id", h.GetUser)

	users.Post("/:user_id/rented_movies", h.AddRental)
	users.Get("/:user_id/rented_movies", h.ListRentals)
	users.Get("/:user_id/rented_movies/:rented_id", h.GetRental)

	users.Post("/:user_id/purchases", h.AddPurchase)
	users.Get("/:user_id/purchases", h.ListPurchases)
	users.Get("/:user_id/purchases/:purchase_id", h.GetPurchase)
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	id, err := h.users.CreateUser(c.Context(), parseBody(c))
	if err != nil {
		return respondError(c, h.log, err, "Failed to create the user.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "user created successfully.",
	})
}

// ListUsers handles GET /users. The read endpoints under /users respond 201,
// a quirk kept from the original contract.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.Context())
	if err != nil {
		return respondError(c, h.log, err, "Failed to get the users data.")
	}

	return c.Status(fiber.StatusCreated).JSON(users)
}

// GetUser handles GET /users/:user_id. An unknown ID responds with an empty
// body; the existence cascade only guards the nested resources.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	fields, err := h.users.GetUser(c.Context(), c.Params("user_id"))
	if err != nil {
		return respondError(c, h.log, err, "Failed to get the users data.")
	}
	if fields == nil {
		return c.Status(fiber.StatusCreated).Send(nil)
	}

	return c.Status(fiber.StatusCreated).JSON(fields)
}

// AddRental handles POST /users/:user_id/rented_movies.
func (h *UserHandler) AddRental(c *fiber.Ctx) error {
	id, err := h.users.AddRental(c.Context(), c.Params("user_id"), parseBody(c))
	if err != nil {
		return respondError(c, h.log, err, "Failed to create the rental data.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Rental added.",
	})
}

// ListRentals handles GET /users/:user_id/rented_movies.
func (h *UserHandler) ListRentals(c *fiber.Ctx) error {
	rentals, err := h.users.ListRentals(c.Context(), c.Params("user_id"))
	if err != nil {
		return respondError(c, h.log, err, "Failed to get the rental data.")
	}

	return c.JSON(rentals)
}

// GetRental handles GET /users/:user_id/rented_movies/:rented_id.
func (h *UserHandler) GetRental(c *fiber.Ctx) error {
	fields, err := h.users.GetRental(c.Context(), c.Params("user_id"), c.Params("rented_id"))
	if err != nil {
		return respondError(c, h.log, err, "Failed to get the rental data.")
	}

	return c.JSON(fields)
}

// AddPurchase handles POST /users/:user_id/purchases.
func (h *UserHandler) AddPurchase(c *fiber.Ctx) error {
	id, err := h.users.AddPurchase(c.Context(), c.Params("user_id"), parseBody(c))
	if err != nil {
		return respondError(c, h.log, err, "Failed to create the purchase data.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Purchase added.",
	})
}

// ListPurchases handles GET /users/:user_id/purchases.
func (h *UserHandler) ListPurchases(c *fiber.Ctx) error {
	purchases, err := h.users.ListPurchases(c.Context(), c.Params("user_id"))
	if err != nil {
		return respondError(c, h.log, err, "Failed to get the purchase data.")
	}

	return c.JSON(purchases)
}

// GetPurchase handles GET /users/:user_id/purchases/:purchase_id.
func (h *UserHandler) GetPurchase(c *fiber.Ctx) error {
	fields, err := h.users.GetPurchase(c.Context(), c.Params("user_id"), c.Params("purchase_id"))
	if err != nil {
		return respondError(c, h.log, err, "Failed to get the purchase data.")
	}

	return c.JSON(fields)
}
