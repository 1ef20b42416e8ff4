package repository

import (
	"context"
	"errors"
	"time"

	"mooduck/internal/cache"
	"mooduck/internal/models"

	"gorm.io/gorm"
)

// MoodboardFilter narrows public moodboard listings.
type MoodboardFilter struct {
	// Search matches against name and description.
	Search string
	// Sort is "created_at" (default) or "likes".
	Sort string
	// PeriodDays keeps only boards created within the last N days. Zero
	// disables the window.
	PeriodDays int
}

// MoodboardRepository defines persistence operations for moodboards.
type MoodboardRepository interface {
	Create(ctx context.Context, board *models.Moodboard) error
	GetByID(ctx context.Context, id uint) (*models.Moodboard, error)
	GetByIDFull(ctx context.Context, id uint) (*models.Moodboard, error)
	GetChaotic(ctx context.Context, userID uint) (*models.Moodboard, error)
	List(ctx context.Context, filter MoodboardFilter, limit, offset int) ([]models.Moodboard, error)
	ListByAuthor(ctx context.Context, authorID uint, includePrivate bool, limit, offset int) ([]models.Moodboard, error)
	SubscriptionFeed(ctx context.Context, subscriberID uint, limit, offset int) ([]models.Moodboard, error)
	Random(ctx context.Context) (*models.Moodboard, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type moodboardRepository struct {
	db *gorm.DB
}

// NewMoodboardRepository returns a new MoodboardRepository implementation.
func NewMoodboardRepository(db *gorm.DB) MoodboardRepository {
	return &moodboardRepository{db: db}
}

func (r *moodboardRepository) Create(ctx context.Context, board *models.Moodboard) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *moodboardRepository) GetByID(ctx context.Context, id uint) (*models.Moodboard, error) {
	var board models.Moodboard
	key := cache.MoodboardKey(id)

	err := cache.Aside(ctx, key, &board, cache.MoodboardTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Author").First(&board, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Moodboard", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &board, nil
}

// GetByIDFull loads the board together with its items and comment thread.
// Always hits the database: the composed view would go stale on every
// item or comment write if it went through the cache.
func (r *moodboardRepository) GetByIDFull(ctx context.Context, id uint) (*models.Moodboard, error) {
	var board models.Moodboard
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.id ASC")
		}).
		Preload("Items.Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		First(&board, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Moodboard", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &board, nil
}

func (r *moodboardRepository) GetChaotic(ctx context.Context, userID uint) (*models.Moodboard, error) {
	var board models.Moodboard
	key := cache.ChaoticKey(userID)

	err := cache.Aside(ctx, key, &board, cache.MoodboardTTL, func() error {
		err := r.db.WithContext(ctx).
			Where("author_id = ? AND is_chaotic", userID).
			First(&board).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Chaotic moodboard for user", userID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *moodboardRepository) List(ctx context.Context, filter MoodboardFilter, limit, offset int) ([]models.Moodboard, error) {
	var boards []models.Moodboard
	q := r.db.WithContext(ctx).Model(&models.Moodboard{}).
		Preload("Author").
		Where("NOT is_private AND NOT is_chaotic")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.PeriodDays > 0 {
		since := time.Now().AddDate(0, 0, -filter.PeriodDays)
		q = q.Where("created_at >= ?", since)
	}

	switch filter.Sort {
	case "likes":
		q = q.Order("likes DESC").Order("created_at DESC")
	default:
		q = q.Order("created_at DESC")
	}

	if err := q.Limit(limit).Offset(offset).Find(&boards).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return boards, nil
}

func (r *moodboardRepository) ListByAuthor(ctx context.Context, authorID uint, includePrivate bool, limit, offset int) ([]models.Moodboard, error) {
	var boards []models.Moodboard
	q := r.db.WithContext(ctx).Model(&models.Moodboard{}).
		Preload("Author").
		Where("author_id = ? AND NOT is_chaotic", authorID)
	if !includePrivate {
		q = q.Where("NOT is_private")
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&boards).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return boards, nil
}

// SubscriptionFeed lists public boards authored by users the subscriber
// follows, newest first.
func (r *moodboardRepository) SubscriptionFeed(ctx context.Context, subscriberID uint, limit, offset int) ([]models.Moodboard, error) {
	var boards []models.Moodboard
	err := r.db.WithContext(ctx).Model(&models.Moodboard{}).
		Preload("Author").
		Where("NOT is_private AND NOT is_chaotic").
		Where("author_id IN (?)",
			r.db.Model(&models.Subscription{}).
				Select("target_id").
				Where("subscriber_id = ?", subscriberID)).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&boards).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return boards, nil
}

func (r *moodboardRepository) Random(ctx context.Context) (*models.Moodboard, error) {
	var board models.Moodboard
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("NOT is_private AND NOT is_chaotic").
		Order("RANDOM()").
		First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Moodboard", "random")
		}
		return nil, models.NewInternalError(err)
	}
	return &board, nil
}

func (r *moodboardRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Moodboard{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Moodboard", id)
	}
	cache.InvalidateMoodboard(ctx, id)
	return nil
}

// Delete removes the board along with its join rows. Item rows survive,
// they belong to their author, not to the board.
func (r *moodboardRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("moodboard_id = ?", id).Delete(&models.MoodboardItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Moodboard{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Moodboard", id)
		}
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodboard(ctx, id)
	return nil
}
