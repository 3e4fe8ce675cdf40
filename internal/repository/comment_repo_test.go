package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-content-api/internal/model"
)

var commentColumns = []string{"id", "user_id", "post_id", "content", "created_at"}

func TestCommentRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCommentRepository(mock)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("list by post", func(t *testing.T) {
		mock.ExpectQuery("FROM comments").
			WithArgs(int64(1), 10, 0).
			WillReturnRows(pgxmock.NewRows(commentColumns).
				AddRow(int64(1), int64(2), int64(1), "first", now).
				AddRow(int64(2), int64(3), int64(1), "second", now))

		comments, err := repo.ListByPost(ctx, 1, model.Page{Limit: 10})
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, int64(3), comments[1].OwnerID())
	})

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO comments").
			WithArgs(int64(1), int64(2), "nice").
			WillReturnRows(pgxmock.NewRows(commentColumns).AddRow(int64(9), int64(2), int64(1), "nice", now))

		comment, err := repo.Create(ctx, 1, 2, "nice")
		require.NoError(t, err)
		assert.Equal(t, int64(9), comment.ID)
		assert.Equal(t, int64(1), comment.PostID)
	})

	t.Run("find missing", func(t *testing.T) {
		mock.ExpectQuery("FROM comments WHERE id").
			WithArgs(int64(77)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, 77)
		assert.ErrorIs(t, err, model.ErrCommentNotFound)
	})

	t.Run("update", func(t *testing.T) {
		mock.ExpectQuery("UPDATE comments SET content").
			WithArgs(int64(9), "edited").
			WillReturnRows(pgxmock.NewRows(commentColumns).AddRow(int64(9), int64(2), int64(1), "edited", now))

		comment, err := repo.Update(ctx, 9, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", comment.Content)
	})

	t.Run("delete error is wrapped", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM comments").
			WithArgs(int64(9)).
			WillReturnError(errors.New("timeout"))

		err := repo.Delete(ctx, 9)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delete comment")
	})

	t.Run("delete missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM comments").
			WithArgs(int64(9)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(ctx, 9), model.ErrCommentNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
