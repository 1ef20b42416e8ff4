package repository

import (
	"context"
	"regexp"
	"testing"

	"mooduck/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMoodboardRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMoodboardRepository(db)
	ctx := context.Background()

	t.Run("loads board with author", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "moodboards" WHERE "moodboards"."id" = $1 AND "moodboards"."deleted_at" IS NULL ORDER BY "moodboards"."id" LIMIT $2`)).
			WithArgs(3, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "name", "likes"}).AddRow(3, 1, "rainy day", 4))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "duckfan"))

		board, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "rainy day", board.Name)
		assert.Equal(t, 4, board.Likes)
		assert.Equal(t, "duckfan", board.Author.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing board is not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "moodboards"`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.GetByID(ctx, 99)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMoodboardRepository_GetChaotic(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMoodboardRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "moodboards" WHERE .*author_id = \$1 AND is_chaotic`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "is_chaotic", "is_private"}).AddRow(7, 1, true, true))

	board, err := repo.GetChaotic(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, board.IsChaotic)
	assert.True(t, board.IsPrivate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodboardRepository_UpdateFields_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMoodboardRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "moodboards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateFields(context.Background(), 42, map[string]interface{}{"name": "renamed"})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodboardRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMoodboardRepository(db)
	ctx := context.Background()

	t.Run("drops placements then the board", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "moodboard_items" WHERE moodboard_id = $1`)).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "moodboards" SET "deleted_at"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(ctx, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already deleted board is not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "moodboard_items"`)).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "moodboards" SET "deleted_at"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 99)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
