package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-content-api/internal/model"
	"go-content-api/pkg/apierror"
)

type UserStore interface {
	Create(ctx context.Context, email string, passwordHash string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

type RefreshTokenStore interface {
	Insert(ctx context.Context, userID int64, token string, expiresAt time.Time) (model.RefreshToken, error)
	FindByToken(ctx context.Context, token string) (model.RefreshToken, error)
}

type AuthService struct {
	users  UserStore
	tokens RefreshTokenStore
	hasher PasswordHasher
	issuer *TokenService
	now    func() time.Time
}

func NewAuthService(users UserStore, tokens RefreshTokenStore, hasher PasswordHasher, issuer *TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		issuer: issuer,
		now:    time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, email string, password string) (model.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return model.User{}, apierror.Validation("Email and password are required")
	}
	if len(password) > MaxPasswordBytes {
		return model.User{}, apierror.Validation(fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes))
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return model.User{}, apierror.Conflict("Email is already registered")
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, err
	}

	// A concurrent registration can still win between the lookup and the
	// insert; the unique constraint reports it as ErrEmailTaken.
	user, err := s.users.Create(ctx, email, hash)
	if errors.Is(err, model.ErrEmailTaken) {
		return model.User{}, apierror.Conflict("Email is already registered")
	}
	if err != nil {
		return model.User{}, err
	}

	slog.Info("user registered", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (model.TokenPair, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return model.TokenPair{}, apierror.Validation("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.TokenPair{}, apierror.NotFound("User not found")
	}
	if err != nil {
		return model.TokenPair{}, err
	}

	// No stored hash can come from a password over the bcrypt limit.
	if len(password) > MaxPasswordBytes || !s.hasher.Verify(password, user.PasswordHash) {
		return model.TokenPair{}, apierror.Authentication("Invalid password")
	}

	accessToken, err := s.issuer.IssueAccessToken(user.ID)
	if err != nil {
		return model.TokenPair{}, err
	}

	refreshToken, expiresAt, err := s.issuer.IssueRefreshToken(user.ID)
	if err != nil {
		return model.TokenPair{}, err
	}

	if _, err := s.tokens.Insert(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return model.TokenPair{}, fmt.Errorf("persist refresh token: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID)
	return model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a stored, unexpired refresh token for a new access
// token. The refresh token itself stays valid until its own expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.AccessTokenData, error) {
	if refreshToken == "" {
		return model.AccessTokenData{}, apierror.Validation("Refresh token is required")
	}

	stored, err := s.tokens.FindByToken(ctx, refreshToken)
	if errors.Is(err, model.ErrTokenNotFound) {
		return model.AccessTokenData{}, apierror.Authentication("Token not found")
	}
	if err != nil {
		return model.AccessTokenData{}, err
	}

	if stored.Expired(s.now()) {
		return model.AccessTokenData{}, apierror.Authentication("Token expired")
	}

	claims, err := s.issuer.Verify(refreshToken)
	if err != nil {
		return model.AccessTokenData{}, apierror.Authentication("Invalid token")
	}
	if claims.UserID != stored.UserID {
		slog.Warn("refresh token subject does not match stored owner", "stored_user_id", stored.UserID)
		return model.AccessTokenData{}, apierror.Authentication("Invalid token")
	}

	accessToken, err := s.issuer.IssueAccessToken(claims.UserID)
	if err != nil {
		return model.AccessTokenData{}, err
	}

	return model.AccessTokenData{AccessToken: accessToken}, nil
}

// ValidateAccessToken is the verification hook used by the request guard.
func (s *AuthService) ValidateAccessToken(token string) (*model.AuthClaims, error) {
	return s.issuer.Verify(token)
}
