// Package fixtures provides builders and the canonical seed data set
// used across the test suites.
package fixtures

import (
	"fmt"
	"time"

	"github.com/ncgames/boardgame-reviews-backend/internal/models"
	"gorm.io/gorm"
)

// ReviewBuilder creates test Review instances with fluent API
type ReviewBuilder struct {
	review models.Review
}

// NewReviewBuilder creates a new ReviewBuilder with sensible defaults
func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		review: models.Review{
			ReviewID:     1,
			Title:        "Agricola",
			ReviewBody:   "Farmyard fun!",
			Designer:     "Uwe Rosenberg",
			Owner:        "mallionaire",
			ReviewImgURL: "https://images.example.com/agricola.jpg",
			Votes:        1,
			Category:     "euro game",
			CreatedAt:    time.Date(2021, 1, 18, 10, 0, 20, 0, time.UTC),
		},
	}
}

// WithID sets the review ID
func (b *ReviewBuilder) WithID(id int) *ReviewBuilder {
	b.review.ReviewID = id
	return b
}

// WithTitle sets the review title
func (b *ReviewBuilder) WithTitle(title string) *ReviewBuilder {
	b.review.Title = title
	return b
}

// WithOwner sets the review owner
func (b *ReviewBuilder) WithOwner(owner string) *ReviewBuilder {
	b.review.Owner = owner
	return b
}

// WithCategory sets the review category
func (b *ReviewBuilder) WithCategory(category string) *ReviewBuilder {
	b.review.Category = category
	return b
}

// WithVotes sets the vote total
func (b *ReviewBuilder) WithVotes(votes int) *ReviewBuilder {
	b.review.Votes = votes
	return b
}

// WithCreatedAt sets the created timestamp
func (b *ReviewBuilder) WithCreatedAt(t time.Time) *ReviewBuilder {
	b.review.CreatedAt = t
	return b
}

// Build returns the constructed Review
func (b *ReviewBuilder) Build() *models.Review {
	return &b.review
}

// BuildValue returns the constructed Review as a value (not pointer)
func (b *ReviewBuilder) BuildValue() models.Review {
	return b.review
}

// CommentBuilder creates test Comment instances with fluent API
type CommentBuilder struct {
	comment models.Comment
}

// NewCommentBuilder creates a new CommentBuilder with sensible defaults
func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		comment: models.Comment{
			CommentID: 1,
			ReviewID:  2,
			Author:    "bainesface",
			Body:      "I loved this game too!",
			Votes:     16,
			CreatedAt: time.Date(2017, 11, 22, 12, 43, 33, 0, time.UTC),
		},
	}
}

// WithID sets the comment ID
func (b *CommentBuilder) WithID(id int) *CommentBuilder {
	b.comment.CommentID = id
	return b
}

// WithReviewID sets the parent review ID
func (b *CommentBuilder) WithReviewID(reviewID int) *CommentBuilder {
	b.comment.ReviewID = reviewID
	return b
}

// WithAuthor sets the comment author
func (b *CommentBuilder) WithAuthor(author string) *CommentBuilder {
	b.comment.Author = author
	return b
}

// WithBody sets the comment body
func (b *CommentBuilder) WithBody(body string) *CommentBuilder {
	b.comment.Body = body
	return b
}

// WithVotes sets the vote total
func (b *CommentBuilder) WithVotes(votes int) *CommentBuilder {
	b.comment.Votes = votes
	return b
}

// WithCreatedAt sets the created timestamp
func (b *CommentBuilder) WithCreatedAt(t time.Time) *CommentBuilder {
	b.comment.CreatedAt = t
	return b
}

// Build returns the constructed Comment
func (b *CommentBuilder) Build() *models.Comment {
	return &b.comment
}

// Categories returns the canonical category rows
func Categories() []models.Category {
	return []models.Category{
		{Slug: "euro game", Description: "Abstact games that involve little luck"},
		{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
		{Slug: "dexterity", Description: "Games involving physical skill"},
		{Slug: "children's games", Description: "Games suitable for children"},
	}
}

// Users returns the canonical user rows
func Users() []models.User {
	return []models.User{
		{Username: "mallionaire", Name: "haz", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{Username: "bainesface", Name: "sarah", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{Username: "dav3rid", Name: "dave", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}
}

// Reviews returns the canonical review rows. Created timestamps are
// strictly distinct so ordering assertions are deterministic.
func Reviews() []models.Review {
	return []models.Review{
		NewReviewBuilder().BuildValue(),
		NewReviewBuilder().WithID(2).WithTitle("Jenga").WithOwner("philippaclaire9").
			WithCategory("dexterity").WithVotes(5).
			WithCreatedAt(time.Date(2021, 1, 18, 10, 1, 41, 0, time.UTC)).BuildValue(),
		NewReviewBuilder().WithID(3).WithTitle("Ultimate Werewolf").WithOwner("bainesface").
			WithCategory("social deduction").WithVotes(5).
			WithCreatedAt(time.Date(2021, 1, 18, 10, 1, 42, 0, time.UTC)).BuildValue(),
		NewReviewBuilder().WithID(4).WithTitle("Dolor reprehenderit").WithOwner("mallionaire").
			WithCategory("social deduction").WithVotes(7).
			WithCreatedAt(time.Date(2021, 1, 22, 11, 35, 50, 0, time.UTC)).BuildValue(),
		NewReviewBuilder().WithID(5).WithTitle("Proident quis et").WithOwner("dav3rid").
			WithCategory("children's games").WithVotes(8).
			WithCreatedAt(time.Date(2021, 1, 25, 11, 16, 54, 0, time.UTC)).BuildValue(),
	}
}

// Comments returns the canonical comment rows. Review 1 deliberately
// has none; the next assigned comment_id after seeding is 7.
func Comments() []models.Comment {
	return []models.Comment{
		*NewCommentBuilder().Build(),
		*NewCommentBuilder().WithID(2).WithAuthor("mallionaire").
			WithBody("My dog loved this game too!").WithVotes(13).
			WithCreatedAt(time.Date(2021, 1, 18, 10, 9, 5, 0, time.UTC)).Build(),
		*NewCommentBuilder().WithID(3).WithAuthor("philippaclaire9").
			WithBody("I didn't know dogs could play games").WithVotes(10).
			WithCreatedAt(time.Date(2021, 1, 18, 10, 9, 48, 0, time.UTC)).Build(),
		*NewCommentBuilder().WithID(4).WithReviewID(3).WithAuthor("bainesface").
			WithBody("EPIC board game!").WithVotes(16).
			WithCreatedAt(time.Date(2017, 11, 22, 12, 36, 3, 0, time.UTC)).Build(),
		*NewCommentBuilder().WithID(5).WithReviewID(3).WithAuthor("mallionaire").
			WithBody("Now this is a story all about how, board games turned my life upside down").WithVotes(13).
			WithCreatedAt(time.Date(2021, 1, 18, 10, 24, 5, 0, time.UTC)).Build(),
		*NewCommentBuilder().WithID(6).WithReviewID(3).WithAuthor("philippaclaire9").
			WithBody("Not sure about dogs, but my cat likes to get involved with board games, the boxes are their particular favourite").WithVotes(10).
			WithCreatedAt(time.Date(2021, 1, 18, 10, 25, 11, 0, time.UTC)).Build(),
	}
}

// Seed inserts the canonical data set in referential order
func Seed(db *gorm.DB) error {
	categories := Categories()
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	users := Users()
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	reviews := Reviews()
	if err := db.Create(&reviews).Error; err != nil {
		return fmt.Errorf("failed to seed reviews: %w", err)
	}
	comments := Comments()
	if err := db.Create(&comments).Error; err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}

	// Explicit IDs bypass Postgres sequences; realign them so the next
	// insert gets max+1 instead of a duplicate key. SQLite does this on
	// its own.
	if db.Dialector.Name() == "postgres" {
		for _, stmt := range []string{
			"SELECT setval(pg_get_serial_sequence('reviews', 'review_id'), (SELECT MAX(review_id) FROM reviews))",
			"SELECT setval(pg_get_serial_sequence('comments', 'comment_id'), (SELECT MAX(comment_id) FROM comments))",
		} {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to realign sequence: %w", err)
			}
		}
	}

	return nil
}

// Truncate removes all seeded rows in referential order
func Truncate(db *gorm.DB) error {
	for _, table := range []string{"comments", "reviews", "users", "categories"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}
