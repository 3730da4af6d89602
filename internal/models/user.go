package models

// User represents a platform user referenced by reviews and comments
type User struct {
	Username  string `gorm:"primaryKey;size:255" json:"username"`
	Name      string `gorm:"not null;size:255" json:"name"`
	AvatarURL string `gorm:"size:1024" json:"avatar_url"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
