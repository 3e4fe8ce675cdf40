package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-content-api/internal/model"
	"go-content-api/internal/repository"
)

func newCommentFixture() (*CommentService, *repository.MockCommentRepository, *repository.MockPostRepository) {
	comments := new(repository.MockCommentRepository)
	posts := new(repository.MockPostRepository)
	return NewCommentService(comments, posts), comments, posts
}

func TestCommentService_Create(t *testing.T) {
	svc, comments, posts := newCommentFixture()

	posts.On("FindByID", mock.Anything, int64(10)).Return(model.Post{ID: 10, UserID: alice}, nil)
	comments.On("Create", mock.Anything, int64(10), bob, "nice").
		Return(model.Comment{ID: 5, PostID: 10, UserID: bob, Content: "nice"}, nil)

	comment, err := svc.Create(context.Background(), 10, bob, "nice")
	require.NoError(t, err)
	assert.Equal(t, int64(5), comment.ID)
	assert.Equal(t, bob, comment.UserID)
}

func TestCommentService_CreateOnMissingPost(t *testing.T) {
	svc, comments, posts := newCommentFixture()

	posts.On("FindByID", mock.Anything, int64(99)).Return(model.Post{}, model.ErrPostNotFound)

	_, err := svc.Create(context.Background(), 99, bob, "nice")
	assertAPIError(t, err, 404, "Post not found")

	_, err = svc.ListByPost(context.Background(), 99, model.Page{Limit: 10})
	assertAPIError(t, err, 404, "Post not found")

	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentService_CreateRequiresContent(t *testing.T) {
	svc, _, posts := newCommentFixture()

	_, err := svc.Create(context.Background(), 10, bob, "")
	assertAPIError(t, err, 400, "Content is required")

	posts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCommentService_ListByPost(t *testing.T) {
	svc, comments, posts := newCommentFixture()
	page := model.Page{Limit: 10, Offset: 10}

	posts.On("FindByID", mock.Anything, int64(10)).Return(model.Post{ID: 10}, nil)
	comments.On("ListByPost", mock.Anything, int64(10), page).Return([]model.Comment{{ID: 1}, {ID: 2}}, nil)

	list, err := svc.ListByPost(context.Background(), 10, page)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCommentService_OwnershipGate(t *testing.T) {
	tests := []struct {
		name    string
		found   model.Comment
		findErr error
		user    int64
		status  int
		message string
	}{
		{name: "missing", findErr: model.ErrCommentNotFound, user: alice, status: 404, message: "Comment not found"},
		{name: "stranger", found: model.Comment{ID: 5, UserID: bob}, user: alice, status: 403, message: "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, comments, _ := newCommentFixture()
			comments.On("FindByID", mock.Anything, int64(5)).Return(tt.found, tt.findErr)

			_, err := svc.Update(context.Background(), 5, tt.user, "edited")
			assertAPIError(t, err, tt.status, tt.message)

			_, err = svc.Delete(context.Background(), 5, tt.user)
			assertAPIError(t, err, tt.status, tt.message)

			comments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestCommentService_OwnerMutates(t *testing.T) {
	svc, comments, _ := newCommentFixture()

	comments.On("FindByID", mock.Anything, int64(5)).Return(model.Comment{ID: 5, UserID: bob, Content: "nice"}, nil)
	comments.On("Update", mock.Anything, int64(5), "great").Return(model.Comment{ID: 5, UserID: bob, Content: "great"}, nil)
	comments.On("Delete", mock.Anything, int64(5)).Return(nil)

	updated, err := svc.Update(context.Background(), 5, bob, "great")
	require.NoError(t, err)
	assert.Equal(t, "great", updated.Content)

	msg, err := svc.Delete(context.Background(), 5, bob)
	require.NoError(t, err)
	assert.Equal(t, "Comment deleted", msg.Message)
}
