package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"go-content-api/internal/model"
)

// TokenRepository persists refresh tokens. Rows are never updated or deleted
// here; expiry is judged by the caller against the stored expires_at.
type TokenRepository struct {
	db DBTX
}

func NewTokenRepository(db DBTX) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Insert(ctx context.Context, userID int64, token string, expiresAt time.Time) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := r.db.QueryRow(ctx,
		`INSERT INTO refresh_tokens (user_id, token, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING token, user_id, expires_at`,
		userID, token, expiresAt.UTC()).
		Scan(&rt.Token, &rt.UserID, &rt.ExpiresAt)
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("store refresh token: %w", err)
	}
	return rt, nil
}

func (r *TokenRepository) FindByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := r.db.QueryRow(ctx,
		`SELECT token, user_id, expires_at
		 FROM refresh_tokens WHERE token = $1`, token).
		Scan(&rt.Token, &rt.UserID, &rt.ExpiresAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.RefreshToken{}, model.ErrTokenNotFound
	}
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("find refresh token: %w", err)
	}
	return rt, nil
}
