package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/ncgames/boardgame-reviews-backend/internal/api/response"
	"github.com/ncgames/boardgame-reviews-backend/internal/repository"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// List handles GET /api/users
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userRepo.List(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "failed to list users")
	}

	return response.OK(c, "users", users)
}
