package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-content-api/internal/model"
)

func TestRequireOwner(t *testing.T) {
	load := func(_ context.Context, id int64) (model.Post, error) {
		if id == 1 {
			return model.Post{ID: 1, UserID: alice}, nil
		}
		return model.Post{}, model.ErrPostNotFound
	}

	post, err := requireOwner(context.Background(), postKind, load, 1, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)

	_, err = requireOwner(context.Background(), postKind, load, 1, bob)
	assertAPIError(t, err, 403, "Unauthorized")

	_, err = requireOwner(context.Background(), postKind, load, 2, bob)
	assertAPIError(t, err, 404, "Post not found")
}

func TestRequireOwnerPassesThroughStoreErrors(t *testing.T) {
	boom := errors.New("timeout")
	load := func(context.Context, int64) (model.Comment, error) { return model.Comment{}, boom }

	_, err := requireOwner(context.Background(), commentKind, load, 1, alice)
	assert.ErrorIs(t, err, boom)
}
