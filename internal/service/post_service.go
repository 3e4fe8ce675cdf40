package service

import (
	"context"
	"strings"

	"go-content-api/internal/model"
	"go-content-api/pkg/apierror"
)

type PostStore interface {
	List(ctx context.Context, page model.Page) ([]model.Post, error)
	ListByUser(ctx context.Context, userID int64, page model.Page) ([]model.Post, error)
	FindByID(ctx context.Context, id int64) (model.Post, error)
	Create(ctx context.Context, userID int64, content string) (model.Post, error)
	Update(ctx context.Context, id int64, content string) (model.Post, error)
	Delete(ctx context.Context, id int64) error
}

type PostService struct {
	posts PostStore
}

func NewPostService(posts PostStore) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) List(ctx context.Context, page model.Page) ([]model.Post, error) {
	return s.posts.List(ctx, page)
}

func (s *PostService) ListByUser(ctx context.Context, userID int64, page model.Page) ([]model.Post, error) {
	return s.posts.ListByUser(ctx, userID, page)
}

func (s *PostService) Create(ctx context.Context, userID int64, content string) (model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return model.Post{}, apierror.Validation("Content is required")
	}
	return s.posts.Create(ctx, userID, content)
}

func (s *PostService) Update(ctx context.Context, postID int64, userID int64, content string) (model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return model.Post{}, apierror.Validation("Content is required")
	}

	if _, err := requireOwner(ctx, postKind, s.posts.FindByID, postID, userID); err != nil {
		return model.Post{}, err
	}

	post, err := s.posts.Update(ctx, postID, content)
	if err != nil {
		return model.Post{}, postKind.translate(err)
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, postID int64, userID int64) (model.MessageData, error) {
	if _, err := requireOwner(ctx, postKind, s.posts.FindByID, postID, userID); err != nil {
		return model.MessageData{}, err
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return model.MessageData{}, postKind.translate(err)
	}
	return model.MessageData{Message: "Post deleted"}, nil
}
