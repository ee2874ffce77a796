package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/api/http/response"
	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

// PostService defines blog post operations.
type PostService interface {
	Create(ctx context.Context, authorID uuid.UUID, params model.PostParams) (model.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (model.Post, error)
	Update(ctx context.Context, callerID, id uuid.UUID, params model.PostParams) (model.Post, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

// Posts handles blog post endpoints.
type Posts struct {
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPosts creates a new Posts handler.
func NewPosts(postService PostService, contextManager model.ContextManager, logger *logger.Logger) *Posts {
	return &Posts{postService: postService, contextManager: contextManager, logger: logger}
}

type postRequest struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Category string `json:"category"`
}

type postResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userid"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type createdPostResponse struct {
	Message string    `json:"message"`
	PostID  uuid.UUID `json:"postId"`
}

func toPostResponse(p model.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		UserID:    p.AuthorID,
		Title:     p.Title,
		Detail:    p.Detail,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r postRequest) params() model.PostParams {
	return model.PostParams{Title: r.Title, Detail: r.Detail, Category: r.Category}
}

func (h *Posts) callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "authorization token is missing")
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// Create handles POST /create-post.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req postRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	post, err := h.postService.Create(r.Context(), userID, req.params())
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, createdPostResponse{Message: "post created", PostID: post.ID})
}

// ListOwn handles GET /read-post.
func (h *Posts) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	posts, err := h.postService.ListByAuthor(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toPostResponse(p))
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /post/{id}.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toPostResponse(post))
}

// Update handles PUT /post/{id}.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req postRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	post, err := h.postService.Update(r.Context(), userID, id, req.params())
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /post/{id}.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.postService.Delete(r.Context(), userID, id); err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "post deleted"})
}
