package models

import (
	"time"
)

// Comment represents a comment left on a review
type Comment struct {
	CommentID int       `gorm:"primaryKey;autoIncrement" json:"comment_id"`
	ReviewID  int       `gorm:"not null;index" json:"review_id"`
	Author    string    `gorm:"not null;size:255" json:"author"`
	Body      string    `gorm:"not null" json:"body"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships. The review association lives on Review.Comments;
	// declaring it here as well would flip the foreign key onto the
	// reviews table.
	AuthorUser User `gorm:"foreignKey:Author;references:Username" json:"-"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
