package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	MoodboardKeyPrefix = "moodboard:%d"
	ChaoticKeyPrefix   = "chaotic:%d"
	ItemKeyPrefix      = "item:%d"
)

const (
	UserTTL      = 5 * time.Minute
	MoodboardTTL = 10 * time.Minute
	ItemTTL      = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func MoodboardKey(moodboardID uint) string {
	return fmt.Sprintf(MoodboardKeyPrefix, moodboardID)
}

func ChaoticKey(userID uint) string {
	return fmt.Sprintf(ChaoticKeyPrefix, userID)
}

func ItemKey(itemID uint) string {
	return fmt.Sprintf(ItemKeyPrefix, itemID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateMoodboard(ctx context.Context, moodboardID uint) {
	Invalidate(ctx, MoodboardKey(moodboardID))
}

func InvalidateItem(ctx context.Context, itemID uint) {
	Invalidate(ctx, ItemKey(itemID))
}
