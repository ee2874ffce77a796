package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest marks missing or malformed input.
	ErrBadRequest = errors.New("bad request")
	// ErrDuplicateIdentity is returned when an email is already used by an identity or profile.
	ErrDuplicateIdentity = errors.New("email is already registered")
	// ErrInvalidCredentials is returned when a password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden is returned when an authenticated caller may not perform an operation.
	ErrForbidden = errors.New("forbidden")
	// ErrTransactionFailure wraps unexpected errors of a rolled back unit of work.
	ErrTransactionFailure = errors.New("transaction failed")
)

// Session token failures.
var (
	ErrTokenMissing      = errors.New("authorization token is missing")
	ErrTokenMalformed    = errors.New("authorization token is malformed")
	ErrTokenBadSignature = errors.New("authorization token signature is invalid")
	ErrTokenExpired      = errors.New("authorization token is expired")
)

// RequestError describes client input that cannot be processed.
// Msg is safe to return to the client.
type RequestError struct {
	Msg string
}

// NewRequestError creates a RequestError with the given message.
func NewRequestError(msg string) *RequestError {
	return &RequestError{Msg: msg}
}

func (e *RequestError) Error() string {
	return "bad request: " + e.Msg
}

func (e *RequestError) Unwrap() error {
	return ErrBadRequest
}
