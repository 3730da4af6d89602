package models

import (
	"time"
)

// Review represents a board game review
type Review struct {
	ReviewID     int       `gorm:"primaryKey;autoIncrement" json:"review_id"`
	Title        string    `gorm:"not null;size:255" json:"title"`
	ReviewBody   string    `gorm:"not null" json:"review_body"`
	Designer     string    `gorm:"size:255" json:"designer"`
	Owner        string    `gorm:"not null;size:255;index" json:"owner"`
	ReviewImgURL string    `gorm:"size:1024" json:"review_img_url"`
	Votes        int       `gorm:"not null;default:0" json:"votes"`
	Category     string    `gorm:"not null;size:255;index" json:"category"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	OwnerUser   User      `gorm:"foreignKey:Owner;references:Username" json:"-"`
	CategoryRow Category  `gorm:"foreignKey:Category;references:Slug" json:"-"`
	Comments    []Comment `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for Review
func (Review) TableName() string {
	return "reviews"
}

// ReviewWithCommentCount is used for API responses that include the
// aggregate comment count. The count is string-typed on the wire; the
// query casts it to TEXT so the representation never drifts.
type ReviewWithCommentCount struct {
	Review
	CommentCount string `json:"comment_count"`
}
