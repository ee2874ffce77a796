package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

// Posts manages blog posts. Only the author may change or delete a post.
type Posts struct {
	store  model.PostStore
	logger *logger.Logger
}

func NewPosts(store model.PostStore, logger *logger.Logger) *Posts {
	return &Posts{store: store, logger: logger}
}

func validatePost(params model.PostParams) error {
	if params.Title == "" || params.Detail == "" {
		return model.NewRequestError("title and detail are required")
	}
	return nil
}

func (p *Posts) Create(ctx context.Context, authorID uuid.UUID, params model.PostParams) (model.Post, error) {
	if err := validatePost(params); err != nil {
		return model.Post{}, err
	}

	now := time.Now()
	post, err := p.store.Create(ctx, model.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     params.Title,
		Detail:    params.Detail,
		Category:  params.Category,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		p.logger.Error("Posts service: failed to create post",
			"author_id", authorID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	p.logger.Debug("Posts service: post created",
		"post_id", post.ID,
		"author_id", authorID)

	return post, nil
}

// ListByAuthor returns the author's posts, newest first. ErrNotFound means there are none.
func (p *Posts) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Post, error) {
	posts, err := p.store.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if len(posts) == 0 {
		return nil, model.ErrNotFound
	}
	return posts, nil
}

func (p *Posts) Get(ctx context.Context, id uuid.UUID) (model.Post, error) {
	post, err := p.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, err
		}
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (p *Posts) ownedPost(ctx context.Context, callerID, id uuid.UUID) (model.Post, error) {
	post, err := p.Get(ctx, id)
	if err != nil {
		return model.Post{}, err
	}
	if post.AuthorID != callerID {
		p.logger.Info("Posts service: caller is not the author",
			"post_id", id,
			"caller_id", callerID)
		return model.Post{}, model.ErrForbidden
	}
	return post, nil
}

func (p *Posts) Update(ctx context.Context, callerID, id uuid.UUID, params model.PostParams) (model.Post, error) {
	if err := validatePost(params); err != nil {
		return model.Post{}, err
	}

	post, err := p.ownedPost(ctx, callerID, id)
	if err != nil {
		return model.Post{}, err
	}

	post.Title = params.Title
	post.Detail = params.Detail
	post.Category = params.Category
	updated, err := p.store.Update(ctx, post)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, err
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

func (p *Posts) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := p.ownedPost(ctx, callerID, id); err != nil {
		return err
	}

	if err := p.store.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
