package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"mooduck/internal/models"
	"mooduck/internal/repository"
)

const MaxItemNameLen = 512

type ItemService struct {
	itemRepo  repository.ItemRepository
	boardRepo repository.MoodboardRepository
	userRepo  repository.UserRepository
	images    *ImageService
}

// AddItemsInput is the batch payload attaching content to a board: brand new
// items plus ids of items that already exist somewhere.
type AddItemsInput struct {
	MoodboardID   uint
	UserID        uint
	Items         []NewItemInput
	ExistingItems []uint
}

// UpdateItemInput merges non-nil fields into the item.
type UpdateItemInput struct {
	ID          uint
	UserID      uint
	Name        *string
	Description *string
	ItemType    *models.ItemType
	Link        *string
	Media       *[]string
	IsPrivate   *bool
}

func NewItemService(
	itemRepo repository.ItemRepository,
	boardRepo repository.MoodboardRepository,
	userRepo repository.UserRepository,
	images *ImageService,
) *ItemService {
	return &ItemService{
		itemRepo:  itemRepo,
		boardRepo: boardRepo,
		userRepo:  userRepo,
		images:    images,
	}
}

// buildItem validates the inline payload and resolves any media data URIs
// to stored URLs.
func buildItem(authorID uint, in NewItemInput, images *ImageService) (*models.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Item name is required")
	}
	if utf8.RuneCountInString(name) > MaxItemNameLen {
		return nil, models.NewValidationError("Item name too long")
	}
	if !in.ItemType.Valid() {
		return nil, models.NewValidationError("Unknown item type")
	}

	urls := make([]string, 0, len(in.Media))
	for _, m := range in.Media {
		if IsDataURI(m) {
			url, err := images.SaveDataURI(m)
			if err != nil {
				return nil, err
			}
			urls = append(urls, url)
			continue
		}
		urls = append(urls, m)
	}

	item := &models.Item{
		AuthorID:    authorID,
		Name:        name,
		Description: in.Description,
		ItemType:    in.ItemType,
		Link:        in.Link,
		IsPrivate:   in.IsPrivate,
	}
	item.SetMediaURLs(urls)
	return item, nil
}

// AddItems creates the new items and attaches the existing ones, skipping
// ids already on the board. A batch that boils down to nothing is an error
// rather than a silent no-op.
func (s *ItemService) AddItems(ctx context.Context, in AddItemsInput) ([]models.Item, error) {
	board, err := s.boardRepo.GetByID(ctx, in.MoodboardID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, in.UserID, board.AuthorID); err != nil {
		return nil, err
	}

	var toAttach []uint
	if len(in.ExistingItems) > 0 {
		wanted := dedupe(in.ExistingItems)
		found, err := s.itemRepo.GetByIDs(ctx, wanted)
		if err != nil {
			return nil, err
		}
		if len(found) != len(wanted) {
			return nil, models.NewNotFoundError("Item", in.ExistingItems)
		}

		current, err := s.itemRepo.AttachedIDs(ctx, in.MoodboardID)
		if err != nil {
			return nil, err
		}
		onBoard := toSet(current)
		for _, id := range wanted {
			if !onBoard[id] {
				toAttach = append(toAttach, id)
			}
		}
	}

	if len(in.Items) == 0 && len(toAttach) == 0 {
		return nil, models.NewValidationError("Nothing to add: no new items and every existing item is already on the moodboard")
	}

	added := make([]models.Item, 0, len(in.Items)+len(toAttach))
	for i := range in.Items {
		item, err := buildItem(board.AuthorID, in.Items[i], s.images)
		if err != nil {
			return nil, err
		}
		if err := s.itemRepo.Create(ctx, item, in.MoodboardID); err != nil {
			return nil, err
		}
		added = append(added, *item)
	}

	if len(toAttach) > 0 {
		if err := s.itemRepo.Attach(ctx, in.MoodboardID, toAttach); err != nil {
			return nil, err
		}
		attached, err := s.itemRepo.GetByIDs(ctx, toAttach)
		if err != nil {
			return nil, err
		}
		added = append(added, attached...)
	}

	return added, nil
}

// ListBoardItems returns a board's items with the board's own visibility
// rules applied.
func (s *ItemService) ListBoardItems(ctx context.Context, moodboardID, viewerID uint) ([]models.Item, error) {
	board, err := s.boardRepo.GetByID(ctx, moodboardID)
	if err != nil {
		return nil, err
	}
	if board.IsPrivate && board.AuthorID != viewerID {
		return nil, models.NewUnauthorizedError("Moodboard is private")
	}
	full, err := s.boardRepo.GetByIDFull(ctx, moodboardID)
	if err != nil {
		return nil, err
	}
	return full.Items, nil
}

func (s *ItemService) RemoveItem(ctx context.Context, moodboardID, itemID, userID uint) error {
	board, err := s.boardRepo.GetByID(ctx, moodboardID)
	if err != nil {
		return err
	}
	if err := s.requireOwnership(ctx, userID, board.AuthorID); err != nil {
		return err
	}
	return s.itemRepo.Detach(ctx, moodboardID, itemID)
}

func (s *ItemService) Get(ctx context.Context, id, viewerID uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.IsPrivate && item.AuthorID != viewerID {
		return nil, models.NewUnauthorizedError("Item is private")
	}
	return item, nil
}

func (s *ItemService) List(ctx context.Context, filter repository.ItemFilter, limit, offset int) ([]models.Item, error) {
	if filter.ItemType != "" && !filter.ItemType.Valid() {
		return nil, models.NewValidationError("Unknown item type")
	}
	return s.itemRepo.List(ctx, filter, limit, offset)
}

func (s *ItemService) Random(ctx context.Context, itemType models.ItemType) (*models.Item, error) {
	if itemType != "" && !itemType.Valid() {
		return nil, models.NewValidationError("Unknown item type")
	}
	return s.itemRepo.Random(ctx, itemType)
}

func (s *ItemService) Update(ctx context.Context, in UpdateItemInput) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, in.UserID, item.AuthorID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, models.NewValidationError("Item name is required")
		}
		if utf8.RuneCountInString(name) > MaxItemNameLen {
			return nil, models.NewValidationError("Item name too long")
		}
		fields["name"] = name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ItemType != nil {
		if !in.ItemType.Valid() {
			return nil, models.NewValidationError("Unknown item type")
		}
		fields["item_type"] = *in.ItemType
	}
	if in.Link != nil {
		fields["link"] = *in.Link
	}
	if in.Media != nil {
		urls := make([]string, 0, len(*in.Media))
		for _, m := range *in.Media {
			if IsDataURI(m) {
				url, err := s.images.SaveDataURI(m)
				if err != nil {
					return nil, err
				}
				urls = append(urls, url)
				continue
			}
			urls = append(urls, m)
		}
		fields["media"] = strings.Join(urls, " ")
	}
	if in.IsPrivate != nil {
		fields["is_private"] = *in.IsPrivate
	}

	if len(fields) > 0 {
		if err := s.itemRepo.UpdateFields(ctx, in.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.itemRepo.GetByID(ctx, in.ID)
}

func (s *ItemService) Delete(ctx context.Context, id, userID uint) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOwnership(ctx, userID, item.AuthorID); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

func (s *ItemService) requireOwnership(ctx context.Context, userID, authorID uint) error {
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
	return models.NewUnauthorizedError("Not your item")
}
