package service

import (
	"context"
	"strings"

	"mooduck/internal/models"
	"mooduck/internal/repository"
)

const MaxCommentLen = 2048

type CommentService struct {
	commentRepo repository.CommentRepository
	boardRepo   repository.MoodboardRepository
}

type CreateCommentInput struct {
	MoodboardID uint
	AuthorID    uint
	Text        string
	AnsweringTo *uint
}

func NewCommentService(commentRepo repository.CommentRepository, boardRepo repository.MoodboardRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, boardRepo: boardRepo}
}

func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(text) > MaxCommentLen {
		return nil, models.NewValidationError("Comment too long")
	}

	board, err := s.boardRepo.GetByID(ctx, in.MoodboardID)
	if err != nil {
		return nil, err
	}
	if board.IsPrivate && board.AuthorID != in.AuthorID {
		return nil, models.NewUnauthorizedError("Moodboard is private")
	}

	if in.AnsweringTo != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.AnsweringTo)
		if err != nil {
			return nil, err
		}
		if parent.MoodboardID != in.MoodboardID {
			return nil, models.NewValidationError("Parent comment belongs to another moodboard")
		}
	}

	comment := &models.Comment{
		AuthorID:      in.AuthorID,
		MoodboardID:   in.MoodboardID,
		AnsweringToID: in.AnsweringTo,
		Text:          text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) List(ctx context.Context, moodboardID, viewerID uint, limit, offset int) ([]models.Comment, error) {
	board, err := s.boardRepo.GetByID(ctx, moodboardID)
	if err != nil {
		return nil, err
	}
	if board.IsPrivate && board.AuthorID != viewerID {
		return nil, models.NewUnauthorizedError("Moodboard is private")
	}
	return s.commentRepo.ListByMoodboard(ctx, moodboardID, limit, offset)
}

func (s *CommentService) Get(ctx context.Context, moodboardID, commentID, viewerID uint) (*models.Comment, error) {
	board, err := s.boardRepo.GetByID(ctx, moodboardID)
	if err != nil {
		return nil, err
	}
	if board.IsPrivate && board.AuthorID != viewerID {
		return nil, models.NewUnauthorizedError("Moodboard is private")
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.MoodboardID != moodboardID {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	return comment, nil
}

// Update edits the text. Only the author can edit their comment.
func (s *CommentService) Update(ctx context.Context, moodboardID, commentID, userID uint, text string) (*models.Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(trimmed) > MaxCommentLen {
		return nil, models.NewValidationError("Comment too long")
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.MoodboardID != moodboardID {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	if comment.AuthorID != userID {
		return nil, models.NewUnauthorizedError("Not your comment")
	}

	if err := s.commentRepo.UpdateText(ctx, commentID, trimmed); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *CommentService) Delete(ctx context.Context, moodboardID, commentID, userID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.MoodboardID != moodboardID {
		return models.NewNotFoundError("Comment", commentID)
	}
	if comment.AuthorID != userID {
		return models.NewUnauthorizedError("Not your comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
