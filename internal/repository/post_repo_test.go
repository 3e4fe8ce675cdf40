package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-content-api/internal/model"
)

var postColumns = []string{"id", "user_id", "content", "created_at"}

func TestPostRepositoryList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostRepository(mock)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("all posts newest first", func(t *testing.T) {
		mock.ExpectQuery("FROM posts").
			WithArgs(10, 0).
			WillReturnRows(pgxmock.NewRows(postColumns).
				AddRow(int64(2), int64(2), "Post 2", now).
				AddRow(int64(1), int64(1), "Post 1", now.Add(-time.Minute)))

		posts, err := repo.List(ctx, model.Page{Limit: 10, Offset: 0})
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Post 2", posts[0].Content)
	})

	t.Run("by user with empty result", func(t *testing.T) {
		mock.ExpectQuery("WHERE user_id = \\$1").
			WithArgs(int64(9), 5, 5).
			WillReturnRows(pgxmock.NewRows(postColumns))

		posts, err := repo.ListByUser(ctx, 9, model.Page{Limit: 5, Offset: 5})
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryMutations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostRepository(mock)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO posts").
			WithArgs(int64(1), "hello").
			WillReturnRows(pgxmock.NewRows(postColumns).AddRow(int64(5), int64(1), "hello", now))

		post, err := repo.Create(ctx, 1, "hello")
		require.NoError(t, err)
		assert.Equal(t, int64(1), post.OwnerID())
	})

	t.Run("find missing", func(t *testing.T) {
		mock.ExpectQuery("FROM posts WHERE id").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, 404)
		assert.ErrorIs(t, err, model.ErrPostNotFound)
	})

	t.Run("update keeps owner", func(t *testing.T) {
		mock.ExpectQuery("UPDATE posts SET content").
			WithArgs(int64(5), "edited").
			WillReturnRows(pgxmock.NewRows(postColumns).AddRow(int64(5), int64(1), "edited", now))

		post, err := repo.Update(ctx, 5, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", post.Content)
		assert.Equal(t, int64(1), post.UserID)
	})

	t.Run("update of vanished row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE posts SET content").
			WithArgs(int64(6), "edited").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Update(ctx, 6, "edited")
		assert.ErrorIs(t, err, model.ErrPostNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM posts").
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(ctx, 5))
	})

	t.Run("delete missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM posts").
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(ctx, 5), model.ErrPostNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
