package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"go-content-api/internal/model"
)

type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) List(ctx context.Context, page model.Page) ([]model.Post, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, content, created_at
		 FROM posts
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return collectPosts(rows)
}

func (r *PostRepository) ListByUser(ctx context.Context, userID int64, page model.Page) ([]model.Post, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, content, created_at
		 FROM posts
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list posts by user: %w", err)
	}
	return collectPosts(rows)
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (model.Post, error) {
	var p model.Post
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, content, created_at
		 FROM posts WHERE id = $1`, id).
		Scan(&p.ID, &p.UserID, &p.Content, &p.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Post{}, model.ErrPostNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("find post: %w", err)
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, userID int64, content string) (model.Post, error) {
	var p model.Post
	err := r.db.QueryRow(ctx,
		`INSERT INTO posts (user_id, content)
		 VALUES ($1, $2)
		 RETURNING id, user_id, content, created_at`,
		userID, content).
		Scan(&p.ID, &p.UserID, &p.Content, &p.CreatedAt)
	if err != nil {
		return model.Post{}, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// Update rewrites the content only; user_id is never part of the SET list.
func (r *PostRepository) Update(ctx context.Context, id int64, content string) (model.Post, error) {
	var p model.Post
	err := r.db.QueryRow(ctx,
		`UPDATE posts SET content = $2
		 WHERE id = $1
		 RETURNING id, user_id, content, created_at`,
		id, content).
		Scan(&p.ID, &p.UserID, &p.Content, &p.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Post{}, model.ErrPostNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func collectPosts(rows pgx.Rows) ([]model.Post, error) {
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
