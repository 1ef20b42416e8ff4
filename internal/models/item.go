package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ItemType categorizes what kind of media reference an item is.
type ItemType string

const (
	ItemTypeAnime  ItemType = "anime"
	ItemTypeMovie  ItemType = "movie"
	ItemTypeSeries ItemType = "series"
	ItemTypeVideo  ItemType = "video"
	ItemTypeState  ItemType = "state"
	ItemTypeImage  ItemType = "image"
	ItemTypeSite   ItemType = "site"
	ItemTypeGif    ItemType = "gif"
	ItemTypeMusic  ItemType = "music"
	ItemTypeGame   ItemType = "game"
	ItemTypeBook   ItemType = "book"
)

// ItemTypes is the closed set of accepted item kinds.
var ItemTypes = []ItemType{
	ItemTypeAnime, ItemTypeMovie, ItemTypeSeries, ItemTypeVideo,
	ItemTypeState, ItemTypeImage, ItemTypeSite, ItemTypeGif,
	ItemTypeMusic, ItemTypeGame, ItemTypeBook,
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	for _, known := range ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Item is a single media/content reference. It belongs to one author and can
// be placed on any number of moodboards via the moodboard_items join table.
type Item struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	AuthorID    uint     `gorm:"not null;index" json:"author_id"`
	Author      User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Name        string   `gorm:"size:512;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	ItemType    ItemType `gorm:"size:128;not null;index" json:"item_type"`
	Link        string   `gorm:"size:1024" json:"link"`
	// Media is persisted as a space-separated list of URLs.
	Media     string         `gorm:"type:text" json:"-"`
	IsPrivate bool           `gorm:"default:false" json:"is_private"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Moodboards []Moodboard `gorm:"many2many:moodboard_items;" json:"-"`
}

// MediaURLs splits the persisted media column into a URL list.
func (i *Item) MediaURLs() []string {
	if strings.TrimSpace(i.Media) == "" {
		return []string{}
	}
	return strings.Fields(i.Media)
}

// SetMediaURLs joins urls into the persisted media column.
func (i *Item) SetMediaURLs(urls []string) {
	i.Media = strings.Join(urls, " ")
}

// MoodboardItem is the join row placing an item on a moodboard.
type MoodboardItem struct {
	MoodboardID uint      `gorm:"primaryKey" json:"moodboard_id"`
	ItemID      uint      `gorm:"primaryKey" json:"item_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (MoodboardItem) TableName() string {
	return "moodboard_items"
}
