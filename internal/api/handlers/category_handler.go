package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/ncgames/boardgame-reviews-backend/internal/api/response"
	"github.com/ncgames/boardgame-reviews-backend/internal/repository"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryRepo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryRepo.List(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "failed to list categories")
	}

	return response.OK(c, "category", categories)
}
