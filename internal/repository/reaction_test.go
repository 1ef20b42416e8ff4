package repository

import (
	"context"
	"regexp"
	"testing"

	"mooduck/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionRepository_Like(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	t.Run("first like bumps the counter", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO likes (user_id, moodboard_id, created_at)`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE moodboards SET likes = likes + 1 WHERE id = $1`)).
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Like(ctx, 1, 2)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second like is a conflict and leaves the counter alone", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO likes (user_id, moodboard_id, created_at)`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Like(ctx, 1, 2)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReactionRepository_Unlike(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	t.Run("removes the row and decrements", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE user_id = $1 AND moodboard_id = $2`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE moodboards SET likes = likes - 1 WHERE id = $1 AND likes > 0`)).
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Unlike(ctx, 1, 2)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing like is not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Unlike(ctx, 1, 2)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReactionRepository_Favorite(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	t.Run("duplicate favorite is rejected", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO favorite_moodboards`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Favorite(ctx, 1, 2)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unfavorite of a missing row is not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorite_moodboards"`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Unfavorite(ctx, 1, 2)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReactionRepository_Subscribe(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	t.Run("records the pair once", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO subscriptions`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.Subscribe(ctx, 1, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second subscribe is a conflict", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO subscriptions`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Subscribe(ctx, 1, 2)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReactionRepository_LikedMoodboardIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReactionRepository(db)

	t.Run("empty input short-circuits", func(t *testing.T) {
		ids, err := repo.LikedMoodboardIDs(context.Background(), 1, nil)
		assert.NoError(t, err)
		assert.Empty(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("plucks matching board ids", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "moodboard_id" FROM "likes" WHERE user_id = $1 AND moodboard_id IN ($2,$3)`)).
			WithArgs(1, 10, 20).
			WillReturnRows(sqlmock.NewRows([]string{"moodboard_id"}).AddRow(10))

		ids, err := repo.LikedMoodboardIDs(context.Background(), 1, []uint{10, 20})
		assert.NoError(t, err)
		assert.Equal(t, []uint{10}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
