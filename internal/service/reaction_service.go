package service

import (
	"context"

	"mooduck/internal/models"
	"mooduck/internal/repository"
)

type ReactionService struct {
	reactionRepo repository.ReactionRepository
	boardRepo    repository.MoodboardRepository
	userRepo     repository.UserRepository
}

func NewReactionService(
	reactionRepo repository.ReactionRepository,
	boardRepo repository.MoodboardRepository,
	userRepo repository.UserRepository,
) *ReactionService {
	return &ReactionService{
		reactionRepo: reactionRepo,
		boardRepo:    boardRepo,
		userRepo:     userRepo,
	}
}

// likeable rejects boards the user has no business reacting to: chaotic
// boards and other people's private boards.
func (s *ReactionService) likeable(ctx context.Context, userID, moodboardID uint) error {
	board, err := s.boardRepo.GetByID(ctx, moodboardID)
	if err != nil {
		return err
	}
	if board.IsChaotic {
		return models.NewUnauthorizedError("Chaotic moodboard cannot be liked or favorited")
	}
	if board.IsPrivate && board.AuthorID != userID {
		return models.NewUnauthorizedError("Moodboard is private")
	}
	return nil
}

func (s *ReactionService) Like(ctx context.Context, userID, moodboardID uint) error {
	if err := s.likeable(ctx, userID, moodboardID); err != nil {
		return err
	}
	return s.reactionRepo.Like(ctx, userID, moodboardID)
}

func (s *ReactionService) Unlike(ctx context.Context, userID, moodboardID uint) error {
	return s.reactionRepo.Unlike(ctx, userID, moodboardID)
}

func (s *ReactionService) Favorite(ctx context.Context, userID, moodboardID uint) error {
	if err := s.likeable(ctx, userID, moodboardID); err != nil {
		return err
	}
	return s.reactionRepo.Favorite(ctx, userID, moodboardID)
}

func (s *ReactionService) Unfavorite(ctx context.Context, userID, moodboardID uint) error {
	return s.reactionRepo.Unfavorite(ctx, userID, moodboardID)
}

func (s *ReactionService) ListFavorites(ctx context.Context, userID uint, limit, offset int) ([]models.Moodboard, error) {
	return s.reactionRepo.ListFavorites(ctx, userID, limit, offset)
}

func (s *ReactionService) Subscribe(ctx context.Context, subscriberID, targetID uint) error {
	if subscriberID == targetID {
		return models.NewValidationError("Cannot subscribe to yourself")
	}
	// 404 before conflict: subscribing to a ghost must not create a row
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.reactionRepo.Subscribe(ctx, subscriberID, targetID)
}

func (s *ReactionService) Unsubscribe(ctx context.Context, subscriberID, targetID uint) error {
	return s.reactionRepo.Unsubscribe(ctx, subscriberID, targetID)
}

func (s *ReactionService) ListSubscriptions(ctx context.Context, subscriberID uint, limit, offset int) ([]models.User, error) {
	return s.reactionRepo.ListSubscriptions(ctx, subscriberID, limit, offset)
}

func (s *ReactionService) ListSubscribers(ctx context.Context, targetID uint, limit, offset int) ([]models.User, error) {
	return s.reactionRepo.ListSubscribers(ctx, targetID, limit, offset)
}
