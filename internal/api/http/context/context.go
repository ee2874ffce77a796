package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/model"
)

type claimsKey struct{}

// Manager keeps verified token claims in request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClaimsToContext returns a copy of ctx carrying claims.
func (m *Manager) SetClaimsToContext(ctx context.Context, claims model.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext returns the claims stored by SetClaimsToContext.
// Claims without a user ID are reported as absent.
func (m *Manager) GetClaimsFromContext(ctx context.Context) (model.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(model.Claims)
	if !ok || claims.UserID == uuid.Nil {
		return model.Claims{}, false
	}
	return claims, true
}
