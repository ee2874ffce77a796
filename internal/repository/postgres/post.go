package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/staffhub-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

const postColumns = `id, author_id, title, detail, category, created_at, updated_at`

type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func scanPost(row pgx.Row) (model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Detail, &post.Category,
		&post.CreatedAt, &post.UpdatedAt,
	)
	return post, err
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO blog_posts (id, author_id, title, detail, category, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRow(ctx, query,
		post.ID, post.AuthorID, post.Title, post.Detail, post.Category, post.CreatedAt, post.UpdatedAt,
	))
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *PostRepository) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE author_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	query := `UPDATE blog_posts SET title = $2, detail = $3, category = $4, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRow(ctx, query, post.ID, post.Title, post.Detail, post.Category))
	if err != nil {
		if isNoRows(err) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM blog_posts WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
