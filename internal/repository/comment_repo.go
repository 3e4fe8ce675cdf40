package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"go-content-api/internal/model"
)

type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64, page model.Page) ([]model.Comment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, post_id, content, created_at
		 FROM comments
		 WHERE post_id = $1
		 ORDER BY id
		 LIMIT $2 OFFSET $3`, postID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, post_id, content, created_at
		 FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Comment{}, model.ErrCommentNotFound
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("find comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Create(ctx context.Context, postID int64, userID int64, content string) (model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRow(ctx,
		`INSERT INTO comments (post_id, user_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, post_id, content, created_at`,
		postID, userID, content).
		Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt)
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Update(ctx context.Context, id int64, content string) (model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRow(ctx,
		`UPDATE comments SET content = $2
		 WHERE id = $1
		 RETURNING id, user_id, post_id, content, created_at`,
		id, content).
		Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Comment{}, model.ErrCommentNotFound
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
