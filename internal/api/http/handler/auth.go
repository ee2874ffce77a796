package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/api/http/response"
	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

// AuthService defines registration, login and provisioning operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (uuid.UUID, error)
	Authenticate(ctx context.Context, email, password string) (model.Session, error)
	Provision(ctx context.Context, params model.ProvisionParams) (uuid.UUID, error)
}

// Auth handles the public account endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type provisionRequest struct {
	Email    string `json:"email"`
	FName    string `json:"fname"`
	LName    string `json:"lname"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type createdUserResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

type loginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

// Register handles POST /register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	id, err := h.authService.Register(r.Context(), model.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.logger.Debug("Auth handler: registration rejected",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, createdUserResponse{Message: "user registered", UserID: id})
}

// Login handles POST /login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	session, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login rejected",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, loginResponse{Token: session.Token, IsAdmin: session.IsAdmin})
}

// Provision handles POST /addnew.
func (h *Auth) Provision(w http.ResponseWriter, r *http.Request) {
	var req provisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	id, err := h.authService.Provision(r.Context(), model.ProvisionParams{
		Email:    req.Email,
		FName:    req.FName,
		LName:    req.LName,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		h.logger.Debug("Auth handler: provisioning rejected",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, createdUserResponse{Message: "user added", UserID: id})
}
