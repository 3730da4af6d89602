package models

// Category represents a board game category
type Category struct {
	Slug        string `gorm:"primaryKey;size:255" json:"slug"`
	Description string `gorm:"not null" json:"description"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
