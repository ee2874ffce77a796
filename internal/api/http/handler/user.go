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

// notAvailable replaces missing profile names in user listings.
const notAvailable = "N/A"

// UserService defines user management operations.
type UserService interface {
	List(ctx context.Context) ([]model.UserDetails, error)
	Get(ctx context.Context, id uuid.UUID) (model.UserDetails, error)
	Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (model.UserDetails, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Users handles user management endpoints.
type Users struct {
	userService UserService
	logger      *logger.Logger
}

// NewUsers creates a new Users handler.
func NewUsers(userService UserService, logger *logger.Logger) *Users {
	return &Users{userService: userService, logger: logger}
}

type userListItem struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  *string   `json:"name"`
	Role  string    `json:"role"`
	FName string    `json:"fname"`
	LName string    `json:"lname"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	FName     *string   `json:"fname"`
	LName     *string   `json:"lname"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	FName *string `json:"fname"`
	LName *string `json:"lname"`
}

func toUserResponse(d model.UserDetails) userResponse {
	resp := userResponse{
		ID:        d.Identity.ID,
		Email:     d.Identity.Email,
		Name:      d.Identity.Name,
		Role:      string(d.Identity.Role),
		CreatedAt: d.Identity.CreatedAt,
	}
	if d.Profile != nil {
		resp.FName = &d.Profile.FName
		resp.LName = &d.Profile.LName
	}
	return resp
}

// List handles GET /users.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	items := make([]userListItem, 0, len(users))
	for _, d := range users {
		item := userListItem{
			ID:    d.Identity.ID,
			Email: d.Identity.Email,
			Name:  d.Identity.Name,
			Role:  string(d.Identity.Role),
			FName: notAvailable,
			LName: notAvailable,
		}
		if d.Profile != nil {
			item.FName = d.Profile.FName
			item.LName = d.Profile.LName
		}
		items = append(items, item)
	}

	response.JSON(w, http.StatusOK, items)
}

// Get handles GET /users/{id}.
func (h *Users) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	details, err := h.userService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toUserResponse(details))
}

// Update handles PUT /users/{id}.
func (h *Users) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	details, err := h.userService.Update(r.Context(), id, model.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
		FName: req.FName,
		LName: req.LName,
	})
	if err != nil {
		h.logger.Debug("Users handler: update rejected",
			"user_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toUserResponse(details))
}

// Delete handles DELETE /users/{id}.
func (h *Users) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "user deleted"})
}
