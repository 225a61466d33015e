package models

import (
	"time"
)

type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Pid      string `gorm:"uniqueIndex;size:36;not null" json:"pid"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url"` // Optional

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Not a DB column, populated on read
	ContentHTML string `gorm:"-" json:"content_html,omitempty"`
}
