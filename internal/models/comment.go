package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a user comment on a moodboard. AnsweringToID references another
// comment on the same board for one level of threading; replies to replies
// still point at their direct parent, no tree walk happens on read.
type Comment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	AuthorID      uint           `gorm:"not null;index" json:"author_id"`
	Author        User           `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	MoodboardID   uint           `gorm:"not null;index" json:"moodboard_id"`
	Moodboard     Moodboard      `gorm:"foreignKey:MoodboardID;constraint:OnDelete:CASCADE" json:"-"`
	AnsweringToID *uint          `gorm:"index" json:"answering_to,omitempty"`
	Text          string         `gorm:"size:2048;not null" json:"text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
