// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mooduck/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	// SkipBcrypt stores the plain dev password instead of hashing it.
	SkipBcrypt bool
	// DryRun builds entities without writing to the database.
	DryRun bool
	// MaxDays spreads created_at timestamps over the last N days.
	MaxDays int
	// BatchSize controls batch insert chunking.
	BatchSize int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

func (f *Factory) spreadCreatedAt() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample user together with its chaotic
// moodboard, mirroring what registration does.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Name:     &name,
		Role:     models.RoleUser,
		Bio:      gofakeit.Sentence(10),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		chaotic := models.Moodboard{
			AuthorID:  user.ID,
			Name:      "Chaotic",
			IsPrivate: true,
			IsChaotic: true,
		}
		return tx.Create(&chaotic).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// youtubeIDs gives video items stable, real-looking links.
var youtubeIDs = []string{"dQw4w9WgXcQ", "9bZkp7q19f0", "3JZ_D3ELwOQ", "L_jWHffIx5E", "kXYiU_JCYtU"}

// BuildItem constructs an item of the given type without persisting it.
// Useful for batching.
func (f *Factory) BuildItem(author *models.User, itemType models.ItemType, overrides ...func(*models.Item)) *models.Item {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	item := &models.Item{
		AuthorID:    author.ID,
		Name:        gofakeit.Sentence(3),
		Description: gofakeit.Paragraph(1, 2, 6, "\n"),
		ItemType:    itemType,
	}
	item.CreatedAt = f.spreadCreatedAt()

	switch itemType {
	case models.ItemTypeImage, models.ItemTypeGif:
		item.SetMediaURLs([]string{
			fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		})
	case models.ItemTypeVideo:
		id := youtubeIDs[r.Intn(len(youtubeIDs))]
		item.Link = fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
		item.SetMediaURLs([]string{
			fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id),
		})
	case models.ItemTypeSite:
		item.Link = gofakeit.URL()
	case models.ItemTypeMusic:
		item.Link = fmt.Sprintf("https://open.spotify.com/track/%s", gofakeit.LetterN(22))
	case models.ItemTypeState:
		item.Description = gofakeit.Quote()
	default:
		item.Link = gofakeit.URL()
		item.SetMediaURLs([]string{
			fmt.Sprintf("https://picsum.photos/seed/%s/600/400", gofakeit.UUID()),
		})
	}

	for _, override := range overrides {
		override(item)
	}
	return item
}

// CreateItemsBatch persists multiple items in a single DB call when possible.
func (f *Factory) CreateItemsBatch(items []*models.Item) error {
	if len(items) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, item := range items {
			f.nextID++
			item.ID = f.nextID
		}
		log.Printf("[dry-run] CreateItemsBatch: %d items (no DB write)", len(items))
		return nil
	}
	batchSize := f.opts.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	return f.db.CreateInBatches(&items, batchSize).Error
}

// CreateMoodboard constructs and persists a moodboard for the author.
func (f *Factory) CreateMoodboard(author *models.User, overrides ...func(*models.Moodboard)) (*models.Moodboard, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	board := &models.Moodboard{
		AuthorID:    author.ID,
		Name:        gofakeit.HipsterSentence(3),
		Description: gofakeit.Paragraph(1, 3, 5, "\n"),
		Cover:       fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID()),
		IsPrivate:   r.Float32() < 0.15,
	}
	board.CreatedAt = f.spreadCreatedAt()

	for _, override := range overrides {
		override(board)
	}

	if f.opts.DryRun {
		f.nextID++
		board.ID = f.nextID
		log.Printf("[dry-run] CreateMoodboard: %s", board.Name)
		return board, nil
	}
	if err := f.db.Create(board).Error; err != nil {
		return nil, err
	}
	return board, nil
}

// CreateComment constructs and persists a comment on the board.
func (f *Factory) CreateComment(author *models.User, board *models.Moodboard, answeringTo *uint) (*models.Comment, error) {
	comment := &models.Comment{
		AuthorID:      author.ID,
		MoodboardID:   board.ID,
		AnsweringToID: answeringTo,
		Text:          gofakeit.Sentence(gofakeit.Number(3, 18)),
	}
	comment.CreatedAt = f.spreadCreatedAt()

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
