package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/staffhub-server/internal/mocks"
	"github.com/dtroode/staffhub-server/internal/model"
	"github.com/dtroode/staffhub-server/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	identity := model.Identity{ID: uuid.New(), Email: "a@x.com", Role: model.RoleAdmin}
	manager.On("GenerateAccessToken", model.Claims{UserID: identity.ID, Email: identity.Email}).Return("tok", nil)

	s := NewTokenService(manager, testutil.MakeNoopLogger())
	tok, err := s.Issue(identity)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}

func TestTokenService_Verify(t *testing.T) {
	claims := model.Claims{UserID: uuid.New(), Email: "a@x.com"}

	tests := []struct {
		name     string
		token    string
		parseErr error
		wantErr  error
	}{
		{name: "valid", token: "good"},
		{name: "missing", token: "", wantErr: model.ErrTokenMissing},
		{name: "expired", token: "old", parseErr: model.ErrTokenExpired, wantErr: model.ErrTokenExpired},
		{name: "bad signature", token: "forged", parseErr: model.ErrTokenBadSignature, wantErr: model.ErrTokenBadSignature},
		{name: "unclassified failure", token: "odd", parseErr: errors.New("weird"), wantErr: model.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := servermocks.NewTokenManager(t)
			if tt.token != "" {
				if tt.parseErr != nil {
					manager.On("ParseAccessToken", tt.token).Return(model.Claims{}, tt.parseErr)
				} else {
					manager.On("ParseAccessToken", tt.token).Return(claims, nil)
				}
			}

			s := NewTokenService(manager, testutil.MakeNoopLogger())
			got, err := s.Verify(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, claims, got)
		})
	}
}
