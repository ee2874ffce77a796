package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

// Users serves user management operations across identities and profiles.
type Users struct {
	identities model.IdentityStore
	transactor model.Transactor
	storage    model.Storage
	logger     *logger.Logger
}

func NewUsers(identities model.IdentityStore, transactor model.Transactor, storage model.Storage, logger *logger.Logger) *Users {
	return &Users{
		identities: identities,
		transactor: transactor,
		storage:    storage,
		logger:     logger,
	}
}

// List returns all identities with their profiles. ErrNotFound means there are none.
func (u *Users) List(ctx context.Context) ([]model.UserDetails, error) {
	users, err := u.identities.ListDetails(ctx)
	if err != nil {
		u.logger.Error("Users service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, model.ErrNotFound
	}
	return users, nil
}

func (u *Users) Get(ctx context.Context, id uuid.UUID) (model.UserDetails, error) {
	details, err := u.identities.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.UserDetails{}, err
		}
		return model.UserDetails{}, fmt.Errorf("failed to get user: %w", err)
	}
	return details, nil
}

// IsAdmin reports whether the identity currently holds the admin role.
func (u *Users) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	identity, err := u.identities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to get user: %w", err)
	}
	return identity.IsAdmin(), nil
}

// Update changes identity fields and upserts the profile in one transaction.
// Missing profile names keep their current value; creating a profile needs both.
func (u *Users) Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (model.UserDetails, error) {
	if update.Email != nil && *update.Email == "" {
		return model.UserDetails{}, model.NewRequestError("email must not be empty")
	}

	var details model.UserDetails
	err := u.transactor.WithinTx(ctx, func(ctx context.Context, repos model.Repositories) error {
		identity, err := repos.Identities.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if update.Name != nil || update.Email != nil {
			identity, err = repos.Identities.Update(ctx, id, model.IdentityUpdate{
				Name:  update.Name,
				Email: update.Email,
			})
			if err != nil {
				return err
			}
		}

		if update.FName != nil || update.LName != nil {
			profile, err := mergeProfile(ctx, repos.Profiles, identity.Email, update)
			if err != nil {
				return err
			}
			if err := repos.Profiles.Upsert(ctx, profile); err != nil {
				return err
			}
		}

		details, err = repos.Identities.GetDetails(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrBadRequest) || errors.Is(err, model.ErrDuplicateIdentity) {
			return model.UserDetails{}, err
		}
		u.logger.Error("Users service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return model.UserDetails{}, fmt.Errorf("failed to update user: %w", err)
	}

	u.logger.Info("Users service: user updated",
		"user_id", id)

	return details, nil
}

func mergeProfile(ctx context.Context, profiles model.ProfileStore, email string, update model.UserUpdate) (model.Profile, error) {
	profile, err := profiles.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, model.ErrNotFound):
		if update.FName == nil || update.LName == nil || *update.FName == "" || *update.LName == "" {
			return model.Profile{}, model.NewRequestError("fname and lname are required to create a profile")
		}
		profile = model.Profile{Email: email}
	case err != nil:
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	if update.FName != nil {
		profile.FName = *update.FName
	}
	if update.LName != nil {
		profile.LName = *update.LName
	}
	return profile, nil
}

// Delete removes the identity and its profile. The identity's picture is
// removed from storage afterwards.
func (u *Users) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted model.Identity
	err := u.transactor.WithinTx(ctx, func(ctx context.Context, repos model.Repositories) error {
		identity, err := repos.Identities.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := repos.Profiles.DeleteByEmail(ctx, identity.Email); err != nil && !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		if err := repos.Identities.Delete(ctx, id); err != nil {
			return err
		}

		deleted = identity
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		u.logger.Error("Users service: failed to delete user",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if deleted.PictureRef != nil {
		if key, ok := PictureKeyFromRef(*deleted.PictureRef); ok {
			if err := u.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
				u.logger.Warn("Users service: failed to delete picture",
					"user_id", id,
					"key", key,
					"error", err.Error())
			}
		}
	}

	u.logger.Info("Users service: user deleted",
		"user_id", id)

	return nil
}
