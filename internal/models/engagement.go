package models

import (
	"time"
)

// Engagement marks that a post currently has at least one like or comment.
// It is created lazily by the first interaction and removed by the last one.
// The row carries no counters on purpose: counts are always derived from the
// likes and comments tables at the moment they are needed, so there is no
// counter to drift.
type Engagement struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"uniqueIndex;not null" json:"post_id"`
	Post   Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`

	// Likes on the post, joined through the shared post id.
	Likes []Like `gorm:"foreignKey:PostID;references:PostID" json:"likes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
