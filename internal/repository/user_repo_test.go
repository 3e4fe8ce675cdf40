package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-content-api/internal/model"
)

var userColumns = []string{"id", "email", "password", "created_at"}

func TestUserRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice@example.com", "hash").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(1), "alice@example.com", "hash", created))

		user, err := repo.Create(ctx, "alice@example.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, model.User{ID: 1, Email: "alice@example.com", PasswordHash: "hash", CreatedAt: created}, user)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice@example.com", "other").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := repo.Create(ctx, "alice@example.com", "other")
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("bob@example.com", "hash").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(ctx, "bob@example.com", "hash")
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrEmailTaken)
		assert.Contains(t, err.Error(), "create user")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password, created_at").
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(7), "alice@example.com", "hash", time.Now()))

		user, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password, created_at").
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "users_email_key"))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}, ""))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "refresh_tokens_token_key"}, "users_email_key"))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, isUniqueViolation(errors.New("boom"), ""))
	assert.False(t, isUniqueViolation(nil, ""))
}
