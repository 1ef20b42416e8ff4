package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mooduck/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with generated users, moodboards, and
// engagement (likes, favorites, subscriptions, comments).
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts), opts: opts}
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, favorite_moodboards, subscriptions, moodboard_items, items, moodboards, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// SeedUsers creates count users, each with its chaotic moodboard.
func (s *Seeder) SeedUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, *user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no users could be created")
	}
	return users, nil
}

// SeedMoodboards creates count boards spread across the users, each board
// populated with a handful of items of mixed types.
func (s *Seeder) SeedMoodboards(users []models.User, count int) ([]models.Moodboard, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	boards := make([]models.Moodboard, 0, count)

	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		board, err := s.factory.CreateMoodboard(&author)
		if err != nil {
			return nil, err
		}

		numItems := r.Intn(8) + 1
		items := make([]*models.Item, 0, numItems)
		for j := 0; j < numItems; j++ {
			itemType := models.ItemTypes[r.Intn(len(models.ItemTypes))]
			items = append(items, s.factory.BuildItem(&author, itemType))
		}
		if err := s.factory.CreateItemsBatch(items); err != nil {
			return nil, err
		}
		if !s.opts.DryRun {
			joins := make([]models.MoodboardItem, 0, len(items))
			for _, item := range items {
				joins = append(joins, models.MoodboardItem{MoodboardID: board.ID, ItemID: item.ID})
			}
			if err := s.db.Create(&joins).Error; err != nil {
				return nil, err
			}
		}

		boards = append(boards, *board)
		if i > 0 && i%100 == 0 {
			log.Printf("Created %d moodboards...", i)
		}
	}
	return boards, nil
}

// SeedEngagement wires likes, favorites, subscriptions, and comments across
// the given users and boards. Like counters stay consistent with like rows.
func (s *Seeder) SeedEngagement(users []models.User, boards []models.Moodboard) error {
	if s.opts.DryRun {
		log.Println("[dry-run] SeedEngagement skipped")
		return nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for bi := range boards {
		board := &boards[bi]
		if board.IsPrivate || board.IsChaotic {
			continue
		}

		likes := 0
		for ui := range users {
			user := &users[ui]
			if user.ID == board.AuthorID {
				continue
			}

			if r.Float32() < 0.25 {
				like := models.Like{UserID: user.ID, MoodboardID: board.ID}
				if err := s.db.Create(&like).Error; err != nil {
					return err
				}
				likes++
			}
			if r.Float32() < 0.10 {
				fav := models.FavoriteMoodboard{UserID: user.ID, MoodboardID: board.ID}
				if err := s.db.Create(&fav).Error; err != nil {
					return err
				}
			}
			if r.Float32() < 0.15 {
				if _, err := s.factory.CreateComment(user, board, nil); err != nil {
					return err
				}
			}
		}

		if likes > 0 {
			err := s.db.Model(&models.Moodboard{}).
				Where("id = ?", board.ID).
				Update("likes", likes).Error
			if err != nil {
				return err
			}
		}
	}

	// Subscription mesh: every user follows a few others.
	for ui := range users {
		user := &users[ui]
		follows := r.Intn(5)
		for i := 0; i < follows; i++ {
			target := users[r.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			sub := models.Subscription{SubscriberID: user.ID, TargetID: target.ID}
			// duplicate pairs violate the unique index; skip quietly
			if err := s.db.Where(models.Subscription{
				SubscriberID: user.ID,
				TargetID:     target.ID,
			}).FirstOrCreate(&sub).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
