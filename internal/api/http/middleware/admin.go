package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/api/http/response"
	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

// RoleChecker reports the current role of an identity.
type RoleChecker interface {
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

// RequireAdmin allows only identities that currently hold the admin role.
// It must run after Authenticate.
type RequireAdmin struct {
	roles          RoleChecker
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRequireAdmin creates a new RequireAdmin middleware instance.
func NewRequireAdmin(roles RoleChecker, contextManager model.ContextManager, logger *logger.Logger) *RequireAdmin {
	return &RequireAdmin{roles: roles, contextManager: contextManager, logger: logger}
}

// Handle re-reads the caller's role on every request.
func (m *RequireAdmin) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.contextManager.GetClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, http.StatusUnauthorized, "authorization token is missing")
			return
		}

		isAdmin, err := m.roles.IsAdmin(r.Context(), claims.UserID)
		switch {
		case err == nil && isAdmin:
			next.ServeHTTP(w, r)
		case err == nil, errors.Is(err, model.ErrNotFound):
			m.logger.Info("RequireAdmin middleware: access denied",
				"route", r.Pattern,
				"user_id", claims.UserID)
			response.Error(w, http.StatusForbidden, "forbidden")
		default:
			m.logger.Error("RequireAdmin middleware: failed to check role",
				"user_id", claims.UserID,
				"error", err.Error())
			response.Error(w, http.StatusInternalServerError, "internal server error")
		}
	})
}
