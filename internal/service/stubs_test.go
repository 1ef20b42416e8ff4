package service

import (
	"context"
	"testing"

	"mooduck/internal/models"
	"mooduck/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hand-written stubs for the repository interfaces. Each field defaults to a
// benign no-op so individual tests only override what they care about.

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByNameFn     func(context.Context, string) (*models.User, error)
	registerFn      func(context.Context, *models.User, string) error
	updateFieldsFn  func(context.Context, uint, map[string]interface{}) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByName(ctx context.Context, name string) (*models.User, error) {
	return s.getByNameFn(ctx, name)
}
func (s *userRepoStub) Register(ctx context.Context, user *models.User, chaoticName string) error {
	return s.registerFn(ctx, user, chaoticName)
}
func (s *userRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, search, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{Role: models.RoleUser}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByNameFn:     func(context.Context, string) (*models.User, error) { return nil, nil },
		registerFn:      func(context.Context, *models.User, string) error { return nil },
		updateFieldsFn:  func(context.Context, uint, map[string]interface{}) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

type moodboardRepoStub struct {
	createFn           func(context.Context, *models.Moodboard) error
	getByIDFn          func(context.Context, uint) (*models.Moodboard, error)
	getByIDFullFn      func(context.Context, uint) (*models.Moodboard, error)
	getChaoticFn       func(context.Context, uint) (*models.Moodboard, error)
	listFn             func(context.Context, repository.MoodboardFilter, int, int) ([]models.Moodboard, error)
	listByAuthorFn     func(context.Context, uint, bool, int, int) ([]models.Moodboard, error)
	subscriptionFeedFn func(context.Context, uint, int, int) ([]models.Moodboard, error)
	randomFn           func(context.Context) (*models.Moodboard, error)
	updateFieldsFn     func(context.Context, uint, map[string]interface{}) error
	deleteFn           func(context.Context, uint) error
}

func (s *moodboardRepoStub) Create(ctx context.Context, board *models.Moodboard) error {
	return s.createFn(ctx, board)
}
func (s *moodboardRepoStub) GetByID(ctx context.Context, id uint) (*models.Moodboard, error) {
	return s.getByIDFn(ctx, id)
}
func (s *moodboardRepoStub) GetByIDFull(ctx context.Context, id uint) (*models.Moodboard, error) {
	return s.getByIDFullFn(ctx, id)
}
func (s *moodboardRepoStub) GetChaotic(ctx context.Context, userID uint) (*models.Moodboard, error) {
	return s.getChaoticFn(ctx, userID)
}
func (s *moodboardRepoStub) List(ctx context.Context, filter repository.MoodboardFilter, limit, offset int) ([]models.Moodboard, error) {
	return s.listFn(ctx, filter, limit, offset)
}
func (s *moodboardRepoStub) ListByAuthor(ctx context.Context, authorID uint, includePrivate bool, limit, offset int) ([]models.Moodboard, error) {
	return s.listByAuthorFn(ctx, authorID, includePrivate, limit, offset)
}
func (s *moodboardRepoStub) SubscriptionFeed(ctx context.Context, subscriberID uint, limit, offset int) ([]models.Moodboard, error) {
	return s.subscriptionFeedFn(ctx, subscriberID, limit, offset)
}
func (s *moodboardRepoStub) Random(ctx context.Context) (*models.Moodboard, error) {
	return s.randomFn(ctx)
}
func (s *moodboardRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *moodboardRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopMoodboardRepo() *moodboardRepoStub {
	return &moodboardRepoStub{
		createFn:      func(context.Context, *models.Moodboard) error { return nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Moodboard, error) { return &models.Moodboard{ID: id}, nil },
		getByIDFullFn: func(_ context.Context, id uint) (*models.Moodboard, error) { return &models.Moodboard{ID: id}, nil },
		getChaoticFn: func(_ context.Context, userID uint) (*models.Moodboard, error) {
			return &models.Moodboard{ID: 1, AuthorID: userID, IsChaotic: true, IsPrivate: true}, nil
		},
		listFn: func(context.Context, repository.MoodboardFilter, int, int) ([]models.Moodboard, error) {
			return nil, nil
		},
		listByAuthorFn: func(context.Context, uint, bool, int, int) ([]models.Moodboard, error) {
			return nil, nil
		},
		subscriptionFeedFn: func(context.Context, uint, int, int) ([]models.Moodboard, error) { return nil, nil },
		randomFn:           func(context.Context) (*models.Moodboard, error) { return &models.Moodboard{ID: 1}, nil },
		updateFieldsFn:     func(context.Context, uint, map[string]interface{}) error { return nil },
		deleteFn:           func(context.Context, uint) error { return nil },
	}
}

type itemRepoStub struct {
	createFn       func(context.Context, *models.Item, uint) error
	getByIDFn      func(context.Context, uint) (*models.Item, error)
	getByIDsFn     func(context.Context, []uint) ([]models.Item, error)
	listFn         func(context.Context, repository.ItemFilter, int, int) ([]models.Item, error)
	listByAuthorFn func(context.Context, uint, bool, int, int) ([]models.Item, error)
	attachedIDsFn  func(context.Context, uint) ([]uint, error)
	attachFn       func(context.Context, uint, []uint) error
	detachFn       func(context.Context, uint, uint) error
	randomFn       func(context.Context, models.ItemType) (*models.Item, error)
	updateFieldsFn func(context.Context, uint, map[string]interface{}) error
	deleteFn       func(context.Context, uint) error
}

func (s *itemRepoStub) Create(ctx context.Context, item *models.Item, moodboardID uint) error {
	return s.createFn(ctx, item, moodboardID)
}
func (s *itemRepoStub) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	return s.getByIDFn(ctx, id)
}
func (s *itemRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.Item, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *itemRepoStub) List(ctx context.Context, filter repository.ItemFilter, limit, offset int) ([]models.Item, error) {
	return s.listFn(ctx, filter, limit, offset)
}
func (s *itemRepoStub) ListByAuthor(ctx context.Context, authorID uint, includePrivate bool, limit, offset int) ([]models.Item, error) {
	return s.listByAuthorFn(ctx, authorID, includePrivate, limit, offset)
}
func (s *itemRepoStub) AttachedIDs(ctx context.Context, moodboardID uint) ([]uint, error) {
	return s.attachedIDsFn(ctx, moodboardID)
}
func (s *itemRepoStub) Attach(ctx context.Context, moodboardID uint, itemIDs []uint) error {
	return s.attachFn(ctx, moodboardID, itemIDs)
}
func (s *itemRepoStub) Detach(ctx context.Context, moodboardID, itemID uint) error {
	return s.detachFn(ctx, moodboardID, itemID)
}
func (s *itemRepoStub) Random(ctx context.Context, itemType models.ItemType) (*models.Item, error) {
	return s.randomFn(ctx, itemType)
}
func (s *itemRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *itemRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopItemRepo() *itemRepoStub {
	return &itemRepoStub{
		createFn:  func(context.Context, *models.Item, uint) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Item, error) { return &models.Item{ID: id}, nil },
		getByIDsFn: func(_ context.Context, ids []uint) ([]models.Item, error) {
			items := make([]models.Item, len(ids))
			for i, id := range ids {
				items[i] = models.Item{ID: id}
			}
			return items, nil
		},
		listFn:         func(context.Context, repository.ItemFilter, int, int) ([]models.Item, error) { return nil, nil },
		listByAuthorFn: func(context.Context, uint, bool, int, int) ([]models.Item, error) { return nil, nil },
		attachedIDsFn:  func(context.Context, uint) ([]uint, error) { return nil, nil },
		attachFn:       func(context.Context, uint, []uint) error { return nil },
		detachFn:       func(context.Context, uint, uint) error { return nil },
		randomFn:       func(context.Context, models.ItemType) (*models.Item, error) { return &models.Item{ID: 1}, nil },
		updateFieldsFn: func(context.Context, uint, map[string]interface{}) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn          func(context.Context, *models.Comment) error
	getByIDFn         func(context.Context, uint) (*models.Comment, error)
	listByMoodboardFn func(context.Context, uint, int, int) ([]models.Comment, error)
	updateTextFn      func(context.Context, uint, string) error
	deleteFn          func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByMoodboard(ctx context.Context, moodboardID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByMoodboardFn(ctx, moodboardID, limit, offset)
}
func (s *commentRepoStub) UpdateText(ctx context.Context, id uint, text string) error {
	return s.updateTextFn(ctx, id, text)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:          func(context.Context, *models.Comment) error { return nil },
		getByIDFn:         func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByMoodboardFn: func(context.Context, uint, int, int) ([]models.Comment, error) { return nil, nil },
		updateTextFn:      func(context.Context, uint, string) error { return nil },
		deleteFn:          func(context.Context, uint) error { return nil },
	}
}

type reactionRepoStub struct {
	likeFn              func(context.Context, uint, uint) error
	unlikeFn            func(context.Context, uint, uint) error
	likedIDsFn          func(context.Context, uint, []uint) ([]uint, error)
	favoriteFn          func(context.Context, uint, uint) error
	unfavoriteFn        func(context.Context, uint, uint) error
	favoriteIDsFn       func(context.Context, uint, []uint) ([]uint, error)
	listFavoritesFn     func(context.Context, uint, int, int) ([]models.Moodboard, error)
	subscribeFn         func(context.Context, uint, uint) error
	unsubscribeFn       func(context.Context, uint, uint) error
	listSubscriptionsFn func(context.Context, uint, int, int) ([]models.User, error)
	listSubscribersFn   func(context.Context, uint, int, int) ([]models.User, error)
}

func (s *reactionRepoStub) Like(ctx context.Context, userID, moodboardID uint) error {
	return s.likeFn(ctx, userID, moodboardID)
}
func (s *reactionRepoStub) Unlike(ctx context.Context, userID, moodboardID uint) error {
	return s.unlikeFn(ctx, userID, moodboardID)
}
func (s *reactionRepoStub) LikedMoodboardIDs(ctx context.Context, userID uint, moodboardIDs []uint) ([]uint, error) {
	return s.likedIDsFn(ctx, userID, moodboardIDs)
}
func (s *reactionRepoStub) Favorite(ctx context.Context, userID, moodboardID uint) error {
	return s.favoriteFn(ctx, userID, moodboardID)
}
func (s *reactionRepoStub) Unfavorite(ctx context.Context, userID, moodboardID uint) error {
	return s.unfavoriteFn(ctx, userID, moodboardID)
}
func (s *reactionRepoStub) FavoriteMoodboardIDs(ctx context.Context, userID uint, moodboardIDs []uint) ([]uint, error) {
	return s.favoriteIDsFn(ctx, userID, moodboardIDs)
}
func (s *reactionRepoStub) ListFavorites(ctx context.Context, userID uint, limit, offset int) ([]models.Moodboard, error) {
	return s.listFavoritesFn(ctx, userID, limit, offset)
}
func (s *reactionRepoStub) Subscribe(ctx context.Context, subscriberID, targetID uint) error {
	return s.subscribeFn(ctx, subscriberID, targetID)
}
func (s *reactionRepoStub) Unsubscribe(ctx context.Context, subscriberID, targetID uint) error {
	return s.unsubscribeFn(ctx, subscriberID, targetID)
}
func (s *reactionRepoStub) ListSubscriptions(ctx context.Context, subscriberID uint, limit, offset int) ([]models.User, error) {
	return s.listSubscriptionsFn(ctx, subscriberID, limit, offset)
}
func (s *reactionRepoStub) ListSubscribers(ctx context.Context, targetID uint, limit, offset int) ([]models.User, error) {
	return s.listSubscribersFn(ctx, targetID, limit, offset)
}

func noopReactionRepo() *reactionRepoStub {
	return &reactionRepoStub{
		likeFn:              func(context.Context, uint, uint) error { return nil },
		unlikeFn:            func(context.Context, uint, uint) error { return nil },
		likedIDsFn:          func(context.Context, uint, []uint) ([]uint, error) { return nil, nil },
		favoriteFn:          func(context.Context, uint, uint) error { return nil },
		unfavoriteFn:        func(context.Context, uint, uint) error { return nil },
		favoriteIDsFn:       func(context.Context, uint, []uint) ([]uint, error) { return nil, nil },
		listFavoritesFn:     func(context.Context, uint, int, int) ([]models.Moodboard, error) { return nil, nil },
		subscribeFn:         func(context.Context, uint, uint) error { return nil },
		unsubscribeFn:       func(context.Context, uint, uint) error { return nil },
		listSubscriptionsFn: func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		listSubscribersFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
