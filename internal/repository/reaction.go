package repository

import (
	"context"
	"errors"

	"mooduck/internal/cache"
	"mooduck/internal/models"

	"gorm.io/gorm"
)

// ErrAlreadyExists signals that a reaction pair was already recorded.
var ErrAlreadyExists = errors.New("already exists")

// ReactionRepository covers likes, favorites and subscriptions. All three
// are unique pairs: the insert either creates the row or reports a
// conflict, it never errors on a race.
type ReactionRepository interface {
	Like(ctx context.Context, userID, moodboardID uint) error
	Unlike(ctx context.Context, userID, moodboardID uint) error
	LikedMoodboardIDs(ctx context.Context, userID uint, moodboardIDs []uint) ([]uint, error)

	Favorite(ctx context.Context, userID, moodboardID uint) error
	Unfavorite(ctx context.Context, userID, moodboardID uint) error
	FavoriteMoodboardIDs(ctx context.Context, userID uint, moodboardIDs []uint) ([]uint, error)
	ListFavorites(ctx context.Context, userID uint, limit, offset int) ([]models.Moodboard, error)

	Subscribe(ctx context.Context, subscriberID, targetID uint) error
	Unsubscribe(ctx context.Context, subscriberID, targetID uint) error
	ListSubscriptions(ctx context.Context, subscriberID uint, limit, offset int) ([]models.User, error)
	ListSubscribers(ctx context.Context, targetID uint, limit, offset int) ([]models.User, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository returns a new ReactionRepository implementation.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Like records the pair and bumps the board's counter in one transaction.
// The counter moves only when the insert actually lands, so it stays in
// step with the likes table under concurrent requests.
func (r *reactionRepository) Like(ctx context.Context, userID, moodboardID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO likes (user_id, moodboard_id, created_at)
			 VALUES (?, ?, NOW())
			 ON CONFLICT (user_id, moodboard_id) DO NOTHING`,
			userID, moodboardID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyExists
		}
		return tx.Exec(
			`UPDATE moodboards SET likes = likes + 1 WHERE id = ?`,
			moodboardID,
		).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return models.NewValidationError("Moodboard already liked")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodboard(ctx, moodboardID)
	return nil
}

func (r *reactionRepository) Unlike(ctx context.Context, userID, moodboardID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND moodboard_id = ?", userID, moodboardID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Exec(
			`UPDATE moodboards SET likes = likes - 1 WHERE id = ? AND likes > 0`,
			moodboardID,
		).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Like", moodboardID)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodboard(ctx, moodboardID)
	return nil
}

func (r *reactionRepository) LikedMoodboardIDs(ctx context.Context, userID uint, moodboardIDs []uint) ([]uint, error) {
	if len(moodboardIDs) == 0 {
		return nil, nil
	}
	var liked []uint
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND moodboard_id IN ?", userID, moodboardIDs).
		Pluck("moodboard_id", &liked).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return liked, nil
}

func (r *reactionRepository) Favorite(ctx context.Context, userID, moodboardID uint) error {
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO favorite_moodboards (user_id, moodboard_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, moodboard_id) DO NOTHING`,
		userID, moodboardID,
	)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewValidationError("Moodboard already in favorites")
	}
	return nil
}

func (r *reactionRepository) Unfavorite(ctx context.Context, userID, moodboardID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND moodboard_id = ?", userID, moodboardID).
		Delete(&models.FavoriteMoodboard{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Favorite", moodboardID)
	}
	return nil
}

func (r *reactionRepository) FavoriteMoodboardIDs(ctx context.Context, userID uint, moodboardIDs []uint) ([]uint, error) {
	if len(moodboardIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.FavoriteMoodboard{}).
		Where("user_id = ? AND moodboard_id IN ?", userID, moodboardIDs).
		Pluck("moodboard_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *reactionRepository) ListFavorites(ctx context.Context, userID uint, limit, offset int) ([]models.Moodboard, error) {
	var boards []models.Moodboard
	err := r.db.WithContext(ctx).Model(&models.Moodboard{}).
		Preload("Author").
		Joins("JOIN favorite_moodboards fm ON fm.moodboard_id = moodboards.id").
		Where("fm.user_id = ?", userID).
		Order("fm.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&boards).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return boards, nil
}

func (r *reactionRepository) Subscribe(ctx context.Context, subscriberID, targetID uint) error {
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO subscriptions (subscriber_id, target_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (subscriber_id, target_id) DO NOTHING`,
		subscriberID, targetID,
	)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewValidationError("Already subscribed")
	}
	return nil
}

func (r *reactionRepository) Unsubscribe(ctx context.Context, subscriberID, targetID uint) error {
	res := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND target_id = ?", subscriberID, targetID).
		Delete(&models.Subscription{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Subscription", targetID)
	}
	return nil
}

func (r *reactionRepository) ListSubscriptions(ctx context.Context, subscriberID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN subscriptions s ON s.target_id = users.id").
		Where("s.subscriber_id = ?", subscriberID).
		Order("s.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *reactionRepository) ListSubscribers(ctx context.Context, targetID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN subscriptions s ON s.subscriber_id = users.id").
		Where("s.target_id = ?", targetID).
		Order("s.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
