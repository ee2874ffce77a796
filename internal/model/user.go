package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is an identity's authorization role.
type Role string

const (
	// RoleUser is the default role.
	RoleUser Role = "user"
	// RoleAdmin grants access to user management.
	RoleAdmin Role = "admin"
)

// ParseRole converts raw input to a Role. Empty input yields RoleUser.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case "":
		return RoleUser, true
	case RoleUser, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Identity is the authoritative account record stored in the users table.
type Identity struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         *string
	Role         Role
	PictureRef   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the identity currently holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IdentityUpdate lists identity fields to change. Nil fields are left untouched.
type IdentityUpdate struct {
	Name       *string
	Email      *string
	PictureRef *string
}

// Profile holds employee attributes joined to an Identity by email.
type Profile struct {
	Email string
	FName string
	LName string
}

// UserDetails is an identity together with its optional profile.
type UserDetails struct {
	Identity Identity
	Profile  *Profile
}

// IdentityStore persists identities.
//
// Email lookups are exact matches; no normalization is applied.
// Create and Update return ErrDuplicateIdentity when the email is taken.
type IdentityStore interface {
	GetByEmail(ctx context.Context, email string) (Identity, error)
	GetByID(ctx context.Context, id uuid.UUID) (Identity, error)
	Create(ctx context.Context, identity Identity) (Identity, error)
	Update(ctx context.Context, id uuid.UUID, update IdentityUpdate) (Identity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetDetails(ctx context.Context, id uuid.UUID) (UserDetails, error)
	ListDetails(ctx context.Context) ([]UserDetails, error)
}

// ProfileStore persists employee profiles keyed by email.
type ProfileStore interface {
	GetByEmail(ctx context.Context, email string) (Profile, error)
	Create(ctx context.Context, profile Profile) error
	Update(ctx context.Context, profile Profile) error
	// Upsert inserts the profile or replaces fname/lname of an existing one.
	Upsert(ctx context.Context, profile Profile) error
	DeleteByEmail(ctx context.Context, email string) error
}

// Repositories groups stores bound to one unit of work.
type Repositories struct {
	Identities IdentityStore
	Profiles   ProfileStore
}

// Transactor runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back when it returns an error or panics.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
