package models

import (
	"time"
)

type User struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Username        string `gorm:"uniqueIndex;not null" json:"username"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	Password        string `gorm:"not null" json:"-"` // Hash
	Bio             string `gorm:"size:200" json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`

	// Follow edges. Only preloaded on paths that rank or filter likers
	// against the requesting user's graph; nil everywhere else.
	Following []Follow `gorm:"foreignKey:FollowerID" json:"-"`
	Followers []Follow `gorm:"foreignKey:FolloweeID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}
