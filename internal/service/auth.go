package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

type Auth struct {
	identities   model.IdentityStore
	transactor   model.Transactor
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	identities model.IdentityStore,
	transactor model.Transactor,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		identities:   identities,
		transactor:   transactor,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Register creates an identity without a profile.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (uuid.UUID, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if params.Email == "" || params.Password == "" {
		return uuid.Nil, model.NewRequestError("email and password are required")
	}

	_, err := a.identities.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return uuid.Nil, model.ErrDuplicateIdentity
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if errors.Is(err, model.ErrBadRequest) {
		return uuid.Nil, err
	}
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	identity, err := a.identities.Create(ctx, model.Identity{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: hash,
		Name:         optional(params.Name),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateIdentity) {
			a.logger.Info("Auth service: user already exists",
				"email", params.Email)
			return uuid.Nil, err
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", identity.Email,
		"user_id", identity.ID)

	return identity.ID, nil
}

// Authenticate verifies the password of the identity with the given email and
// issues a session token. NotFound and InvalidCredentials are reported separately.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (model.Session, error) {
	if email == "" || password == "" {
		return model.Session{}, model.NewRequestError("email and password are required")
	}

	identity, err := a.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: login for unknown user",
				"email", email)
			return model.Session{}, err
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, identity.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"email", email,
			"user_id", identity.ID)
		return model.Session{}, model.ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(identity)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", identity.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"user_id", identity.ID)

	return model.Session{Token: token, IsAdmin: identity.IsAdmin()}, nil
}

// Provision creates an identity together with its profile. Either both rows are
// written or neither is.
func (a *Auth) Provision(ctx context.Context, params model.ProvisionParams) (uuid.UUID, error) {
	a.logger.Debug("Auth service: starting account provisioning",
		"email", params.Email)

	if params.Email == "" || params.FName == "" || params.LName == "" || params.Password == "" {
		return uuid.Nil, model.NewRequestError("email, fname, lname and password are required")
	}
	role, ok := model.ParseRole(params.Role)
	if !ok {
		return uuid.Nil, model.NewRequestError(fmt.Sprintf("unknown role %q", params.Role))
	}

	var id uuid.UUID
	err := a.transactor.WithinTx(ctx, func(ctx context.Context, repos model.Repositories) error {
		if err := ensureEmailFree(ctx, repos, params.Email); err != nil {
			return err
		}

		hash, err := a.hasher.Hash(params.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		now := time.Now()
		identity, err := repos.Identities.Create(ctx, model.Identity{
			ID:           uuid.New(),
			Email:        params.Email,
			PasswordHash: hash,
			Name:         optional(params.Name),
			Role:         role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		err = repos.Profiles.Create(ctx, model.Profile{
			Email: identity.Email,
			FName: params.FName,
			LName: params.LName,
		})
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		id = identity.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateIdentity) {
			a.logger.Info("Auth service: user already exists",
				"email", params.Email)
			return uuid.Nil, model.ErrDuplicateIdentity
		}
		var reqErr *model.RequestError
		if errors.As(err, &reqErr) {
			return uuid.Nil, reqErr
		}
		a.logger.Error("Auth service: account provisioning rolled back",
			"email", params.Email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("%w: %w", model.ErrTransactionFailure, err)
	}

	a.logger.Info("Auth service: account provisioned successfully",
		"email", params.Email,
		"user_id", id)

	return id, nil
}

// ensureEmailFree fails with ErrDuplicateIdentity when either store already holds email.
func ensureEmailFree(ctx context.Context, repos model.Repositories, email string) error {
	_, err := repos.Identities.GetByEmail(ctx, email)
	if err == nil {
		return model.ErrDuplicateIdentity
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	_, err = repos.Profiles.GetByEmail(ctx, email)
	if err == nil {
		return model.ErrDuplicateIdentity
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get profile by email: %w", err)
	}

	return nil
}
