package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
)

const (
	// PictureURLPrefix is the public path pictures are served under.
	PictureURLPrefix = "/uploads/"
	picturePrefix    = "pictures/"
)

// Account serves self-service operations of an authenticated identity.
type Account struct {
	identities model.IdentityStore
	storage    model.Storage
	logger     *logger.Logger
}

func NewAccount(identities model.IdentityStore, storage model.Storage, logger *logger.Logger) *Account {
	return &Account{
		identities: identities,
		storage:    storage,
		logger:     logger,
	}
}

func (a *Account) GetAccount(ctx context.Context, userID uuid.UUID) (model.Identity, error) {
	identity, err := a.identities.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, err
		}
		a.logger.Error("Account service: failed to get user",
			"user_id", userID,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to get user: %w", err)
	}
	return identity, nil
}

// UpdateAccount changes the supplied fields of the caller's identity.
// A new picture replaces the previous one, which is then removed from storage.
func (a *Account) UpdateAccount(ctx context.Context, userID uuid.UUID, update model.AccountUpdate) (model.Identity, error) {
	current, err := a.GetAccount(ctx, userID)
	if err != nil {
		return model.Identity{}, err
	}

	change := model.IdentityUpdate{
		Name:  optional(update.Name),
		Email: optional(update.Email),
	}

	var uploadedKey string
	if update.Picture != nil {
		uploadedKey = pictureKey(update.Picture.Filename)
		err := a.storage.Upload(ctx, uploadedKey, update.Picture.Reader, update.Picture.Size, update.Picture.ContentType)
		if err != nil {
			a.logger.Error("Account service: failed to upload picture",
				"user_id", userID,
				"error", err.Error())
			return model.Identity{}, fmt.Errorf("failed to upload picture: %w", err)
		}
		ref := PictureURLPrefix + uploadedKey
		change.PictureRef = &ref
	}

	if change.Name == nil && change.Email == nil && change.PictureRef == nil {
		return current, nil
	}

	updated, err := a.identities.Update(ctx, userID, change)
	if err != nil {
		if uploadedKey != "" {
			a.removeObject(ctx, uploadedKey)
		}
		if errors.Is(err, model.ErrDuplicateIdentity) || errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, err
		}
		a.logger.Error("Account service: failed to update user",
			"user_id", userID,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to update user: %w", err)
	}

	if uploadedKey != "" && current.PictureRef != nil {
		if key, ok := PictureKeyFromRef(*current.PictureRef); ok {
			a.removeObject(ctx, key)
		}
	}

	a.logger.Info("Account service: user updated",
		"user_id", userID)

	return updated, nil
}

// OpenPicture streams a stored picture. Missing pictures yield ErrNotFound.
func (a *Account) OpenPicture(ctx context.Context, key string) (io.ReadCloser, model.ObjectInfo, error) {
	if !strings.HasPrefix(key, picturePrefix) || path.Clean(key) != key {
		return nil, model.ObjectInfo{}, model.ErrNotFound
	}

	exists, err := a.storage.Exists(ctx, key)
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to stat picture: %w", err)
	}
	if !exists {
		return nil, model.ObjectInfo{}, model.ErrNotFound
	}

	rc, info, err := a.storage.Download(ctx, key)
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to download picture: %w", err)
	}
	return rc, info, nil
}

// removeObject deletes key from storage, logging instead of failing.
func (a *Account) removeObject(ctx context.Context, key string) {
	if err := a.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
		a.logger.Warn("Account service: failed to delete picture",
			"key", key,
			"error", err.Error())
	}
}

func pictureKey(filename string) string {
	return picturePrefix + uuid.NewString() + strings.ToLower(path.Ext(filename))
}

// PictureKeyFromRef converts a stored picture reference back to its object key.
func PictureKeyFromRef(ref string) (string, bool) {
	key, ok := strings.CutPrefix(ref, PictureURLPrefix)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
