package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncgames/boardgame-reviews-backend/internal/models"
	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	List(ctx context.Context) ([]models.ReviewWithCommentCount, error)
	GetByID(ctx context.Context, id int) (*models.ReviewWithCommentCount, error)
	Exists(ctx context.Context, id int) (bool, error)
	IncrementVotes(ctx context.Context, id int, delta int) (*models.Review, error)
}

// reviewRepository implements ReviewRepository using GORM
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository instance
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// The comment count is cast to TEXT so it stays a string on the wire.
const reviewWithCountSelect = `
	SELECT
		r.*,
		CAST((SELECT COUNT(*) FROM comments c WHERE c.review_id = r.review_id) AS TEXT) AS comment_count
	FROM reviews r
`

// List retrieves all reviews with their comment counts, newest first
func (r *reviewRepository) List(ctx context.Context) ([]models.ReviewWithCommentCount, error) {
	var reviews []models.ReviewWithCommentCount
	query := reviewWithCountSelect + ` ORDER BY r.created_at DESC`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// GetByID retrieves a single review with its comment count
func (r *reviewRepository) GetByID(ctx context.Context, id int) (*models.ReviewWithCommentCount, error) {
	var review models.ReviewWithCommentCount
	query := reviewWithCountSelect + ` WHERE r.review_id = ?`
	result := r.db.WithContext(ctx).Raw(query, id).Scan(&review)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get review by ID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &review, nil
}

// Exists reports whether a review with the given ID exists
func (r *reviewRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("review_id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return count > 0, nil
}

// IncrementVotes atomically adds delta to the review's vote total and
// returns the updated row. The add happens store-side; concurrent
// increments to the same review never lose updates.
func (r *reviewRepository) IncrementVotes(ctx context.Context, id int, delta int) (*models.Review, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("review_id = ?", id).
		Update("votes", gorm.Expr("votes + ?", delta))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to increment votes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "review_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}
	return &review, nil
}
