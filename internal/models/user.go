package models

import "time"

// User represents a registered account. The password is stored as a bcrypt
// hash and never serialized.
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Username          string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email             string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash      string    `gorm:"size:255;not null" json:"-"`
	ProfilePictureURL string    `gorm:"size:500" json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
