package model

import "github.com/google/uuid"

// Claims are the identity attributes carried by a session token.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

// TokenManager issues and verifies signed session tokens.
//
// ParseAccessToken returns ErrTokenMalformed, ErrTokenBadSignature or
// ErrTokenExpired when the token is not acceptable.
type TokenManager interface {
	GenerateAccessToken(claims Claims) (string, error)
	ParseAccessToken(token string) (Claims, error)
}
