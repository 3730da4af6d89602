// Package mocks provides hand-written testify mocks for the repository
// interfaces.
package mocks

import (
	"context"

	"github.com/ncgames/boardgame-reviews-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository implements repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

// List retrieves all categories
func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

// MockReviewRepository implements repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

// List retrieves all reviews with comment counts
func (m *MockReviewRepository) List(ctx context.Context) ([]models.ReviewWithCommentCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewWithCommentCount), args.Error(1)
}

// GetByID retrieves a review by its ID
func (m *MockReviewRepository) GetByID(ctx context.Context, id int) (*models.ReviewWithCommentCount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewWithCommentCount), args.Error(1)
}

// Exists reports whether a review exists
func (m *MockReviewRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// IncrementVotes adds delta to the review's vote total
func (m *MockReviewRepository) IncrementVotes(ctx context.Context, id int, delta int) (*models.Review, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

// MockCommentRepository implements repository.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

// Create inserts a new comment
func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// ListByReview retrieves all comments for a review
func (m *MockCommentRepository) ListByReview(ctx context.Context, reviewID int) ([]models.Comment, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// List retrieves all users
func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// GetByUsername retrieves a user by username
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
