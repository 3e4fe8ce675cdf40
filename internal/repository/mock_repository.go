package repository

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"go-content-api/internal/model"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, email string, passwordHash string) (model.User, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Insert(ctx context.Context, userID int64, token string, expiresAt time.Time) (model.RefreshToken, error) {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Get(0).(model.RefreshToken), args.Error(1)
}

func (m *MockTokenRepository) FindByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.RefreshToken), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context, page model.Page) ([]model.Post, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID int64, page model.Page) ([]model.Post, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id int64) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, userID int64, content string) (model.Post, error) {
	args := m.Called(ctx, userID, content)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, id int64, content string) (model.Post, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64, page model.Page) ([]model.Comment, error) {
	args := m.Called(ctx, postID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id int64) (model.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, postID int64, userID int64, content string) (model.Comment, error) {
	args := m.Called(ctx, postID, userID, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, id int64, content string) (model.Comment, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
