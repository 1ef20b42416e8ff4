package service

import (
	"context"
	"strings"
	"testing"

	"mooduck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Create(t *testing.T) {
	t.Parallel()

	t.Run("empty text is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopMoodboardRepo())
		_, err := svc.Create(context.Background(), CreateCommentInput{MoodboardID: 3, AuthorID: 1, Text: "  "})
		assertValidationError(t, err)
	})

	t.Run("overlong text is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopMoodboardRepo())
		_, err := svc.Create(context.Background(), CreateCommentInput{
			MoodboardID: 3, AuthorID: 1, Text: strings.Repeat("x", MaxCommentLen+1),
		})
		assertValidationError(t, err)
	})

	t.Run("foreign private board is unauthorized", func(t *testing.T) {
		t.Parallel()
		boards := noopMoodboardRepo()
		boards.getByIDFn = func(_ context.Context, id uint) (*models.Moodboard, error) {
			return &models.Moodboard{ID: id, AuthorID: 7, IsPrivate: true}, nil
		}
		svc := NewCommentService(noopCommentRepo(), boards)
		_, err := svc.Create(context.Background(), CreateCommentInput{MoodboardID: 3, AuthorID: 1, Text: "hi"})
		assertAppErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("reply must stay on the same board", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, MoodboardID: 99}, nil
		}
		svc := NewCommentService(comments, noopMoodboardRepo())
		parent := uint(11)
		_, err := svc.Create(context.Background(), CreateCommentInput{
			MoodboardID: 3, AuthorID: 1, Text: "hi", AnsweringTo: &parent,
		})
		assertValidationError(t, err)
	})

	t.Run("reply records its parent", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, MoodboardID: 3}, nil
		}
		var created *models.Comment
		comments.createFn = func(_ context.Context, c *models.Comment) error {
			created = c
			return nil
		}
		svc := NewCommentService(comments, noopMoodboardRepo())
		parent := uint(11)
		_, err := svc.Create(context.Background(), CreateCommentInput{
			MoodboardID: 3, AuthorID: 1, Text: " trimmed ", AnsweringTo: &parent,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "trimmed", created.Text)
		require.NotNil(t, created.AnsweringToID)
		assert.Equal(t, uint(11), *created.AnsweringToID)
	})
}

func TestCommentService_Update_AuthorOnly(t *testing.T) {
	t.Parallel()

	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, MoodboardID: 3, AuthorID: 7, Text: "original"}, nil
	}
	svc := NewCommentService(comments, noopMoodboardRepo())

	t.Run("stranger is unauthorized", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Update(context.Background(), 3, 11, 8, "edited")
		assertAppErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("author edits", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Update(context.Background(), 3, 11, 7, "edited")
		assert.NoError(t, err)
	})

	t.Run("wrong board is not found", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Update(context.Background(), 4, 11, 7, "edited")
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}

func TestCommentService_Delete_AuthorOnly(t *testing.T) {
	t.Parallel()

	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, MoodboardID: 3, AuthorID: 7}, nil
	}
	svc := NewCommentService(comments, noopMoodboardRepo())

	err := svc.Delete(context.Background(), 3, 11, 8)
	assertAppErrorCode(t, err, "UNAUTHORIZED")

	assert.NoError(t, svc.Delete(context.Background(), 3, 11, 7))
}
