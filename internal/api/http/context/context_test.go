package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/staffhub-server/internal/model"
)

func TestManager_SetAndGetClaims(t *testing.T) {
	m := NewManager()
	claims := model.Claims{UserID: uuid.New(), Email: "ann@example.com"}
	ctx := m.SetClaimsToContext(stdctx.Background(), claims)

	got, ok := m.GetClaimsFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, claims, got)
}

func TestManager_GetClaims_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetClaimsFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetClaims_NilUserID(t *testing.T) {
	m := NewManager()
	ctx := m.SetClaimsToContext(stdctx.Background(), model.Claims{Email: "ann@example.com"})
	_, ok := m.GetClaimsFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetClaims_Overrides(t *testing.T) {
	m := NewManager()
	first := model.Claims{UserID: uuid.New(), Email: "a@example.com"}
	second := model.Claims{UserID: uuid.New(), Email: "b@example.com"}

	ctx := m.SetClaimsToContext(m.SetClaimsToContext(stdctx.Background(), first), second)
	got, ok := m.GetClaimsFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second, got)
}
