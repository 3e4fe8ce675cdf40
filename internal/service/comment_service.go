package service

import (
	"context"
	"strings"

	"go-content-api/internal/model"
	"go-content-api/pkg/apierror"
)

type CommentStore interface {
	ListByPost(ctx context.Context, postID int64, page model.Page) ([]model.Comment, error)
	FindByID(ctx context.Context, id int64) (model.Comment, error)
	Create(ctx context.Context, postID int64, userID int64, content string) (model.Comment, error)
	Update(ctx context.Context, id int64, content string) (model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type postFinder interface {
	FindByID(ctx context.Context, id int64) (model.Post, error)
}

type CommentService struct {
	comments CommentStore
	posts    postFinder
}

func NewCommentService(comments CommentStore, posts postFinder) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64, page model.Page) ([]model.Comment, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID, page)
}

func (s *CommentService) Create(ctx context.Context, postID int64, userID int64, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, apierror.Validation("Content is required")
	}
	if err := s.ensurePost(ctx, postID); err != nil {
		return model.Comment{}, err
	}
	return s.comments.Create(ctx, postID, userID, content)
}

func (s *CommentService) Update(ctx context.Context, commentID int64, userID int64, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, apierror.Validation("Content is required")
	}

	if _, err := requireOwner(ctx, commentKind, s.comments.FindByID, commentID, userID); err != nil {
		return model.Comment{}, err
	}

	comment, err := s.comments.Update(ctx, commentID, content)
	if err != nil {
		return model.Comment{}, commentKind.translate(err)
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID int64, userID int64) (model.MessageData, error) {
	if _, err := requireOwner(ctx, commentKind, s.comments.FindByID, commentID, userID); err != nil {
		return model.MessageData{}, err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return model.MessageData{}, commentKind.translate(err)
	}
	return model.MessageData{Message: "Comment deleted"}, nil
}

func (s *CommentService) ensurePost(ctx context.Context, postID int64) error {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return postKind.translate(err)
	}
	return nil
}
