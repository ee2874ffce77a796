package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for blog posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]Post, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Post represents a blog post written by an identity.
type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Detail    string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostParams contains user supplied post fields.
type PostParams struct {
	Title    string
	Detail   string
	Category string
}
