package repository

import (
	"context"
	"fmt"

	"github.com/ncgames/boardgame-reviews-backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByReview(ctx context.Context, reviewID int) ([]models.Comment, error)
}

// commentRepository implements CommentRepository using GORM
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment; comment_id and created_at are assigned
// by the store
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	result := r.db.WithContext(ctx).Create(comment)
	if result.Error != nil {
		if isForeignKeyError(result.Error) {
			return fmt.Errorf("comment references a missing row: %w", ErrInvalidInput)
		}
		if isDuplicateKeyError(result.Error) {
			return fmt.Errorf("comment %d already exists: %w", comment.CommentID, ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create comment: %w", result.Error)
	}
	return nil
}

// ListByReview retrieves all comments for a review, newest first.
// A review with no comments yields an empty slice, not an error.
func (r *commentRepository) ListByReview(ctx context.Context, reviewID int) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
