package repository

import (
	"context"
	"errors"

	"mooduck/internal/cache"
	"mooduck/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemFilter narrows public item listings.
type ItemFilter struct {
	// Search matches against name and description.
	Search string
	// ItemType keeps only items of one kind when set.
	ItemType models.ItemType
}

// ItemRepository defines persistence operations for items and their
// placement on moodboards.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item, moodboardID uint) error
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Item, error)
	List(ctx context.Context, filter ItemFilter, limit, offset int) ([]models.Item, error)
	ListByAuthor(ctx context.Context, authorID uint, includePrivate bool, limit, offset int) ([]models.Item, error)
	AttachedIDs(ctx context.Context, moodboardID uint) ([]uint, error)
	Attach(ctx context.Context, moodboardID uint, itemIDs []uint) error
	Detach(ctx context.Context, moodboardID, itemID uint) error
	Random(ctx context.Context, itemType models.ItemType) (*models.Item, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository returns a new ItemRepository implementation.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create persists the item and places it on the given moodboard in one
// transaction. An item never exists detached from the board it was
// created for.
func (r *itemRepository) Create(ctx context.Context, item *models.Item, moodboardID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Create(&models.MoodboardItem{
			MoodboardID: moodboardID,
			ItemID:      item.ID,
		}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodboard(ctx, moodboardID)
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	key := cache.ItemKey(id)

	err := cache.Aside(ctx, key, &item, cache.ItemTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Author").First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Item", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Item, error) {
	if len(ids) == 0 {
		return []models.Item{}, nil
	}
	var items []models.Item
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) List(ctx context.Context, filter ItemFilter, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	q := r.db.WithContext(ctx).Model(&models.Item{}).
		Preload("Author").
		Where("NOT is_private")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.ItemType != "" {
		q = q.Where("item_type = ?", filter.ItemType)
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) ListByAuthor(ctx context.Context, authorID uint, includePrivate bool, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	q := r.db.WithContext(ctx).Model(&models.Item{}).
		Preload("Author").
		Where("author_id = ?", authorID)
	if !includePrivate {
		q = q.Where("NOT is_private")
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) AttachedIDs(ctx context.Context, moodboardID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.MoodboardItem{}).
		Where("moodboard_id = ?", moodboardID).
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// Attach places items on the board. Pairs that already exist are left
// alone so a concurrent attach cannot fail the whole batch.
func (r *itemRepository) Attach(ctx context.Context, moodboardID uint, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	rows := make([]models.MoodboardItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		rows = append(rows, models.MoodboardItem{MoodboardID: moodboardID, ItemID: itemID})
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodboard(ctx, moodboardID)
	return nil
}

func (r *itemRepository) Detach(ctx context.Context, moodboardID, itemID uint) error {
	res := r.db.WithContext(ctx).
		Where("moodboard_id = ? AND item_id = ?", moodboardID, itemID).
		Delete(&models.MoodboardItem{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Item on moodboard", itemID)
	}
	cache.InvalidateMoodboard(ctx, moodboardID)
	return nil
}

func (r *itemRepository) Random(ctx context.Context, itemType models.ItemType) (*models.Item, error) {
	var item models.Item
	q := r.db.WithContext(ctx).Preload("Author").Where("NOT is_private")
	if itemType != "" {
		q = q.Where("item_type = ?", itemType)
	}
	if err := q.Order("RANDOM()").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Item", "random")
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *itemRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Item", id)
	}
	cache.InvalidateItem(ctx, id)
	return nil
}

// Delete removes the item everywhere it appears.
func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.MoodboardItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Item{}, id)
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
			return models.NewNotFoundError("Item", id)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateItem(ctx, id)
	return nil
}
