package service

import (
	"errors"
	"fmt"

	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

// TokenService issues session tokens for authenticated identities and
// verifies tokens presented on protected requests.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue signs a token carrying the identity's ID and email.
func (s *TokenService) Issue(identity model.Identity) (string, error) {
	token, err := s.manager.GenerateAccessToken(model.Claims{UserID: identity.ID, Email: identity.Email})
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return token, nil
}

// Verify returns the claims of a valid token. Failures are one of
// ErrTokenMissing, ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired.
func (s *TokenService) Verify(token string) (model.Claims, error) {
	if token == "" {
		return model.Claims{}, model.ErrTokenMissing
	}

	claims, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected token", "error", err.Error())
		if errors.Is(err, model.ErrTokenExpired) || errors.Is(err, model.ErrTokenBadSignature) || errors.Is(err, model.ErrTokenMalformed) {
			return model.Claims{}, err
		}
		return model.Claims{}, fmt.Errorf("%w: %w", model.ErrTokenMalformed, err)
	}

	return claims, nil
}
