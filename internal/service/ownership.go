package service

import (
	"context"
	"errors"

	"go-content-api/internal/model"
	"go-content-api/pkg/apierror"
)

// resourceKind names an owned resource for client-facing messages and ties it
// to the sentinel its store returns when a row is absent.
type resourceKind struct {
	name     string
	notFound error
}

var (
	postKind    = resourceKind{name: "Post", notFound: model.ErrPostNotFound}
	commentKind = resourceKind{name: "Comment", notFound: model.ErrCommentNotFound}
)

// requireOwner is the single gate for every update and delete. Existence is
// checked first (404), then ownership (403). Callers mutate only after it
// returns nil.
func requireOwner[T model.Owned](ctx context.Context, kind resourceKind, load func(context.Context, int64) (T, error), id int64, userID int64) (T, error) {
	var zero T

	resource, err := load(ctx, id)
	if err != nil {
		return zero, kind.translate(err)
	}

	if resource.OwnerID() != userID {
		return zero, apierror.Authorization("Unauthorized")
	}

	return resource, nil
}

func (k resourceKind) translate(err error) error {
	if errors.Is(err, k.notFound) {
		return apierror.NotFound(k.name + " not found")
	}
	return err
}
