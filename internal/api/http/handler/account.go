package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/api/http/response"
	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

// multipartMemory is the part of a multipart body kept in memory; the rest spills to disk.
const multipartMemory = 1 << 20

// AccountService defines self-service account operations.
type AccountService interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (model.Identity, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, update model.AccountUpdate) (model.Identity, error)
	OpenPicture(ctx context.Context, key string) (io.ReadCloser, model.ObjectInfo, error)
}

// Account handles endpoints of the authenticated caller's own account.
type Account struct {
	accountService AccountService
	contextManager model.ContextManager
	maxUploadBytes int64
	logger         *logger.Logger
}

// NewAccount creates a new Account handler. Request bodies of account
// updates are limited to maxUploadBytes.
func NewAccount(accountService AccountService, contextManager model.ContextManager, maxUploadBytes int64, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		contextManager: contextManager,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

type accountResponse struct {
	Email   string  `json:"email"`
	Name    *string `json:"name"`
	Picture *string `json:"picture"`
}

type updateAccountResponse struct {
	Message string `json:"message"`
	accountResponse
}

func toAccountResponse(identity model.Identity) accountResponse {
	return accountResponse{
		Email:   identity.Email,
		Name:    identity.Name,
		Picture: identity.PictureRef,
	}
}

func (h *Account) callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "authorization token is missing")
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// GetAccount handles GET /account.
func (h *Account) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	identity, err := h.accountService.GetAccount(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toAccountResponse(identity))
}

// UpdateAccount handles POST /account/update with multipart fields name, email and picture.
func (h *Account) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, err)
			return
		}
		handleError(w, model.NewRequestError("request body is not a valid form"))
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	update := model.AccountUpdate{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
	}

	file, header, err := r.FormFile("picture")
	switch {
	case err == nil:
		defer func() { _ = file.Close() }()
		update.Picture = &model.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		handleError(w, model.NewRequestError("picture upload is not readable"))
		return
	}

	identity, err := h.accountService.UpdateAccount(r.Context(), userID, update)
	if err != nil {
		h.logger.Debug("Account handler: update rejected",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updateAccountResponse{
		Message:         "account updated",
		accountResponse: toAccountResponse(identity),
	})
}

// Picture handles GET /uploads/{key...}.
func (h *Account) Picture(w http.ResponseWriter, r *http.Request) {
	rc, info, err := h.accountService.OpenPicture(r.Context(), r.PathValue("key"))
	if err != nil {
		handleError(w, err)
		return
	}
	defer func() { _ = rc.Close() }()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	if info.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("Account handler: picture stream interrupted",
			"key", r.PathValue("key"),
			"error", err.Error())
	}
}
