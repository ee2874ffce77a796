package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	s *Store
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	defer r.s.lock(false)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.identities[post.AuthorID]; !ok {
		return model.Post{}, fmt.Errorf("failed to create post: no identity %s", post.AuthorID)
	}
	r.s.posts[post.ID] = post
	return post, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	defer r.s.lock(false)()
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return model.Post{}, model.ErrNotFound
	}
	return post, nil
}

func (r *PostRepository) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]model.Post, error) {
	defer r.s.lock(false)()
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var posts []model.Post
	for _, post := range r.s.posts {
		if post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	slices.SortFunc(posts, func(a, b model.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	defer r.s.lock(false)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.posts[post.ID]
	if !ok {
		return model.Post{}, model.ErrNotFound
	}
	existing.Title = post.Title
	existing.Detail = post.Detail
	existing.Category = post.Category
	existing.UpdatedAt = time.Now()
	r.s.posts[post.ID] = existing
	return existing, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock(false)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.s.posts, id)
	return nil
}
