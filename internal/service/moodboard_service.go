package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"mooduck/internal/models"
	"mooduck/internal/repository"
)

const MaxBoardNameLen = 512

type MoodboardService struct {
	boardRepo    repository.MoodboardRepository
	itemRepo     repository.ItemRepository
	reactionRepo repository.ReactionRepository
	userRepo     repository.UserRepository
	images       *ImageService
}

// NewItemInput describes an item created inline while building a board.
type NewItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ItemType    models.ItemType `json:"item_type"`
	Link        string          `json:"link"`
	Media       []string        `json:"media"`
	IsPrivate   bool            `json:"is_private"`
}

type CreateMoodboardInput struct {
	AuthorID      uint
	Name          string
	Description   string
	Cover         string
	IsPrivate     bool
	Items         []NewItemInput
	ExistingItems []uint
}

// UpdateMoodboardInput merges non-nil fields into the board.
type UpdateMoodboardInput struct {
	ID          uint
	UserID      uint
	Name        *string
	Description *string
	Cover       *string
	IsPrivate   *bool
}

func NewMoodboardService(
	boardRepo repository.MoodboardRepository,
	itemRepo repository.ItemRepository,
	reactionRepo repository.ReactionRepository,
	userRepo repository.UserRepository,
	images *ImageService,
) *MoodboardService {
	return &MoodboardService{
		boardRepo:    boardRepo,
		itemRepo:     itemRepo,
		reactionRepo: reactionRepo,
		userRepo:     userRepo,
		images:       images,
	}
}

func (s *MoodboardService) Create(ctx context.Context, in CreateMoodboardInput) (*models.Moodboard, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Moodboard name is required")
	}
	if utf8.RuneCountInString(name) > MaxBoardNameLen {
		return nil, models.NewValidationError("Moodboard name too long")
	}

	cover := in.Cover
	if IsDataURI(cover) {
		url, err := s.images.SaveCover(cover)
		if err != nil {
			return nil, err
		}
		cover = url
	}

	board := &models.Moodboard{
		AuthorID:    in.AuthorID,
		Name:        name,
		Description: in.Description,
		Cover:       cover,
		IsPrivate:   in.IsPrivate,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}

	for i := range in.Items {
		if _, err := s.createItem(ctx, board.ID, in.AuthorID, in.Items[i]); err != nil {
			return nil, err
		}
	}

	if len(in.ExistingItems) > 0 {
		if err := s.attachExisting(ctx, board.ID, in.ExistingItems); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, board.ID, in.AuthorID)
}

// Get returns the composed board view. Private boards are only visible to
// their author; everyone else gets an unauthorized error, not a 404, the
// board's existence is not a secret.
func (s *MoodboardService) Get(ctx context.Context, id, viewerID uint) (*models.Moodboard, error) {
	board, err := s.boardRepo.GetByIDFull(ctx, id)
	if err != nil {
		return nil, err
	}
	if board.IsPrivate && board.AuthorID != viewerID {
		return nil, models.NewUnauthorizedError("Moodboard is private")
	}

	if viewerID != 0 {
		if err := s.decorate(ctx, viewerID, board); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// GetChaotic returns the caller's chaotic board with its items.
func (s *MoodboardService) GetChaotic(ctx context.Context, userID uint) (*models.Moodboard, error) {
	board, err := s.boardRepo.GetChaotic(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.boardRepo.GetByIDFull(ctx, board.ID)
}

func (s *MoodboardService) List(ctx context.Context, filter repository.MoodboardFilter, viewerID uint, limit, offset int) ([]models.Moodboard, error) {
	boards, err := s.boardRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	if viewerID != 0 {
		if err := s.decorateAll(ctx, viewerID, boards); err != nil {
			return nil, err
		}
	}
	return boards, nil
}

func (s *MoodboardService) ListByAuthor(ctx context.Context, authorID, viewerID uint, limit, offset int) ([]models.Moodboard, error) {
	boards, err := s.boardRepo.ListByAuthor(ctx, authorID, authorID == viewerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if viewerID != 0 {
		if err := s.decorateAll(ctx, viewerID, boards); err != nil {
			return nil, err
		}
	}
	return boards, nil
}

func (s *MoodboardService) SubscriptionFeed(ctx context.Context, userID uint, limit, offset int) ([]models.Moodboard, error) {
	boards, err := s.boardRepo.SubscriptionFeed(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.decorateAll(ctx, userID, boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (s *MoodboardService) Random(ctx context.Context, viewerID uint) (*models.Moodboard, error) {
	board, err := s.boardRepo.Random(ctx)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, board.ID, viewerID)
}

func (s *MoodboardService) Update(ctx context.Context, in UpdateMoodboardInput) (*models.Moodboard, error) {
	board, err := s.boardRepo.GetByIDFull(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, in.UserID, board.AuthorID); err != nil {
		return nil, err
	}
	if board.IsChaotic {
		return nil, models.NewValidationError("Chaotic moodboard cannot be edited")
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, models.NewValidationError("Moodboard name is required")
		}
		if utf8.RuneCountInString(name) > MaxBoardNameLen {
			return nil, models.NewValidationError("Moodboard name too long")
		}
		fields["name"] = name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Cover != nil {
		cover := *in.Cover
		if IsDataURI(cover) {
			url, err := s.images.SaveCover(cover)
			if err != nil {
				return nil, err
			}
			cover = url
		}
		fields["cover"] = cover
	}
	if in.IsPrivate != nil {
		fields["is_private"] = *in.IsPrivate
	}

	if len(fields) > 0 {
		if err := s.boardRepo.UpdateFields(ctx, in.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, in.ID, in.UserID)
}

func (s *MoodboardService) Delete(ctx context.Context, id, userID uint) error {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOwnership(ctx, userID, board.AuthorID); err != nil {
		return err
	}
	if board.IsChaotic {
		return models.NewValidationError("Chaotic moodboard cannot be deleted")
	}
	return s.boardRepo.Delete(ctx, id)
}

// requireOwnership passes for the author and for moderators.
func (s *MoodboardService) requireOwnership(ctx context.Context, userID, authorID uint) error {
	if userID == authorID {
		return nil
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin || user.Role == models.RoleModerator {
		return nil
	}
	return models.NewUnauthorizedError("Not your moodboard")
}

func (s *MoodboardService) createItem(ctx context.Context, boardID, authorID uint, in NewItemInput) (*models.Item, error) {
	item, err := buildItem(authorID, in, s.images)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Create(ctx, item, boardID); err != nil {
		return nil, err
	}
	return item, nil
}

// attachExisting verifies the ids exist before placing them on the board.
func (s *MoodboardService) attachExisting(ctx context.Context, boardID uint, ids []uint) error {
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(items) != len(dedupe(ids)) {
		return models.NewNotFoundError("Item", ids)
	}
	existing := make([]uint, 0, len(items))
	for _, item := range items {
		existing = append(existing, item.ID)
	}
	return s.itemRepo.Attach(ctx, boardID, existing)
}

// decorate fills the viewer-dependent flags on a single board.
func (s *MoodboardService) decorate(ctx context.Context, viewerID uint, board *models.Moodboard) error {
	liked, err := s.reactionRepo.LikedMoodboardIDs(ctx, viewerID, []uint{board.ID})
	if err != nil {
		return err
	}
	board.IsLiked = len(liked) == 1

	faved, err := s.reactionRepo.FavoriteMoodboardIDs(ctx, viewerID, []uint{board.ID})
	if err != nil {
		return err
	}
	board.IsInFavorite = len(faved) == 1
	return nil
}

// decorateAll fills viewer-dependent flags with two batched lookups.
func (s *MoodboardService) decorateAll(ctx context.Context, viewerID uint, boards []models.Moodboard) error {
	if len(boards) == 0 {
		return nil
	}
	ids := make([]uint, len(boards))
	for i := range boards {
		ids[i] = boards[i].ID
	}

	liked, err := s.reactionRepo.LikedMoodboardIDs(ctx, viewerID, ids)
	if err != nil {
		return err
	}
	faved, err := s.reactionRepo.FavoriteMoodboardIDs(ctx, viewerID, ids)
	if err != nil {
		return err
	}

	likedSet := toSet(liked)
	favedSet := toSet(faved)
	for i := range boards {
		boards[i].IsLiked = likedSet[boards[i].ID]
		boards[i].IsInFavorite = favedSet[boards[i].ID]
	}
	return nil
}

func toSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
