package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/staffhub-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "request error carries its message",
			in:         model.NewRequestError("email and password are required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "email and password are required",
		},
		{
			name:       "wrapped request error",
			in:         fmt.Errorf("validate: %w", model.NewRequestError("title is required")),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "title is required",
		},
		{
			name:       "bare bad request",
			in:         model.ErrBadRequest,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "bad request",
		},
		{
			name:       "duplicate identity",
			in:         model.ErrDuplicateIdentity,
			wantStatus: http.StatusBadRequest,
			wantMsg:    model.ErrDuplicateIdentity.Error(),
		},
		{
			name:       "not found",
			in:         fmt.Errorf("failed to get user: %w", model.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "not found",
		},
		{
			name:       "invalid credentials",
			in:         model.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid credentials",
		},
		{
			name:       "forbidden",
			in:         model.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantMsg:    "forbidden",
		},
		{
			name:       "transaction failure hides detail",
			in:         fmt.Errorf("%w: %w", model.ErrTransactionFailure, errors.New("relation employees does not exist")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    msgInternal,
		},
		{
			name:       "body too large",
			in:         &http.MaxBytesError{Limit: 10},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "request body is too large",
		},
		{
			name:       "unknown error",
			in:         errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    msgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			handleError(rec, tt.in)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tt.wantMsg), rec.Body.String())
		})
	}
}
