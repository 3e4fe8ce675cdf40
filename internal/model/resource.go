package model

import "time"

// Owned is implemented by every resource whose mutations are restricted to
// the user that created it.
type Owned interface {
	OwnerID() int64
}

type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Post) OwnerID() int64 { return p.UserID }

type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Comment) OwnerID() int64 { return c.UserID }

type Page struct {
	Limit  int
	Offset int
}

type MessageData struct {
	Message string `json:"message"`
}
