package models

import (
	"time"

	"gorm.io/gorm"
)

// Moodboard represents a named collection of items owned by one user.
// Every user owns exactly one chaotic moodboard: the private, undeletable
// inbox board provisioned at registration.
type Moodboard struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	AuthorID    uint    `gorm:"not null;index" json:"author_id"`
	Author      User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Name        string  `gorm:"size:512;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Cover       string  `gorm:"size:1024" json:"cover"`
	IsPrivate   bool    `gorm:"default:false" json:"is_private"`
	IsChaotic   bool    `gorm:"default:false;index:idx_moodboards_chaotic" json:"is_chaotic"`
	Likes       int     `gorm:"not null;default:0" json:"likes"`
	// IsLiked indicates whether the requesting user liked this board (computed)
	IsLiked bool `gorm:"-" json:"is_liked"`
	// IsInFavorite indicates whether the requesting user favorited this board (computed)
	IsInFavorite bool           `gorm:"-" json:"is_in_favorite"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Items    []Item    `gorm:"many2many:moodboard_items;" json:"items,omitempty"`
	Comments []Comment `gorm:"foreignKey:MoodboardID" json:"comments,omitempty"`
}

// FavoriteMoodboard records that a user bookmarked a moodboard.
type FavoriteMoodboard struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_fav_moodboard" json:"user_id"`
	MoodboardID uint      `gorm:"not null;uniqueIndex:idx_user_fav_moodboard" json:"moodboard_id"`
	CreatedAt   time.Time `json:"created_at"`

	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Moodboard Moodboard `gorm:"foreignKey:MoodboardID;constraint:OnDelete:CASCADE" json:"moodboard,omitempty"`
}

// TableName specifies the table name for GORM
func (FavoriteMoodboard) TableName() string {
	return "favorite_moodboards"
}

// Like records that a user liked a moodboard.
// The pair must be unique; the board's Likes counter tracks the row count.
type Like struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_like_moodboard" json:"user_id"`
	MoodboardID uint      `gorm:"not null;uniqueIndex:idx_user_like_moodboard" json:"moodboard_id"`
	CreatedAt   time.Time `json:"created_at"`

	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Moodboard Moodboard `gorm:"foreignKey:MoodboardID;constraint:OnDelete:CASCADE" json:"moodboard,omitempty"`
}
