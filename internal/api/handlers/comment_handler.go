package handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ncgames/boardgame-reviews-backend/internal/api/response"
	"github.com/ncgames/boardgame-reviews-backend/internal/models"
	"github.com/ncgames/boardgame-reviews-backend/internal/repository"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository, userRepo repository.UserRepository) *CommentHandler {
	return &CommentHandler{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
	}
}

// CreateCommentRequest represents the request body for creating a comment
type CreateCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// ListByReview handles GET /api/reviews/:review_id/comments
func (h *CommentHandler) ListByReview(c echo.Context) error {
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

	comments, err := h.commentRepo.ListByReview(c.Request().Context(), id)
	if err != nil {
		return response.InternalError(c, "failed to list comments")
	}

	return response.OK(c, "comments", comments)
}

// Create handles POST /api/reviews/:review_id/comments
//
// Validation precedence: id shape, id existence, body presence,
// referential username check. An invalid review id always reports as
// such even when the body is also invalid, and no insert happens until
// every check has passed.
func (h *CommentHandler) Create(c echo.Context) error {
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

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, MsgInvalidInput)
	}
	if req.Username == "" || req.Body == "" {
		return response.BadRequest(c, MsgMissingInput)
	}

	if _, err := h.userRepo.GetByUsername(c.Request().Context(), req.Username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.BadRequest(c, MsgUsernameNotFound(req.Username))
		}
		return response.InternalError(c, "failed to check user")
	}

	comment := &models.Comment{
		ReviewID: id,
		Author:   req.Username,
		Body:     req.Body,
	}

	if err := h.commentRepo.Create(c.Request().Context(), comment); err != nil {
		return response.InternalError(c, "failed to create comment")
	}

	return response.Created(c, "comment", comment)
}
