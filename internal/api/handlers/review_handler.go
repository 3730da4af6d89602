package handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ncgames/boardgame-reviews-backend/internal/api/response"
	"github.com/ncgames/boardgame-reviews-backend/internal/repository"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewRepo repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviewRepo: reviewRepo}
}

// UpdateVotesRequest represents the request body for a vote increment.
// IncVotes is a pointer so a missing field and a zero increment stay
// distinguishable.
type UpdateVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// List handles GET /api/reviews
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewRepo.List(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "failed to list reviews")
	}

	return response.OK(c, "review", reviews)
}

// Get handles GET /api/reviews/:review_id
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		return response.BadRequest(c, MsgInvalidInput)
	}

	review, err := h.reviewRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, MsgIDNotFound(id))
		}
		return response.InternalError(c, "failed to get review")
	}

	return response.OK(c, "review", review)
}

// UpdateVotes handles PATCH /api/reviews/:review_id
//
// Validation precedence: id shape, id existence, body presence, body
// type. The body is not consulted until the id is known to resolve.
func (h *ReviewHandler) UpdateVotes(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		return response.BadRequest(c, MsgInvalidInput)
	}

	exists, err := h.reviewRepo.Exists(c.Request().Context(), id)
	if err != nil {
		return response.InternalError(c, "failed to check review")
	}
	if !exists {
		return response.NotFound(c, MsgIDNotFound(id))
	}

	var req UpdateVotesRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, MsgInvalidInput)
	}
	if req.IncVotes == nil {
		return response.BadRequest(c, MsgMissingInput)
	}

	review, err := h.reviewRepo.IncrementVotes(c.Request().Context(), id, *req.IncVotes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, MsgIDNotFound(id))
		}
		return response.InternalError(c, "failed to update votes")
	}

	return response.OK(c, "vote", review)
}
