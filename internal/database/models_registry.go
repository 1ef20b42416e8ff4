package database

import "mooduck/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Moodboard{},
		&models.Item{},
		&models.MoodboardItem{},
		&models.Comment{},
		&models.Like{},
		&models.FavoriteMoodboard{},
		&models.Subscription{},
	}
}
