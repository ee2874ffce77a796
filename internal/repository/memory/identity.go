package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/model"
)

var _ model.IdentityStore = (*IdentityRepository)(nil)

type IdentityRepository struct {
	s    *Store
	inTx bool
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (model.Identity, error) {
	defer r.s.lock(r.inTx)()
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return model.Identity{}, model.ErrNotFound
	}
	return r.s.identities[id], nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Identity, error) {
	defer r.s.lock(r.inTx)()
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	identity, ok := r.s.identities[id]
	if !ok {
		return model.Identity{}, model.ErrNotFound
	}
	return identity, nil
}

func (r *IdentityRepository) Create(ctx context.Context, identity model.Identity) (model.Identity, error) {
	defer r.s.lock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.emails[identity.Email]; ok {
		return model.Identity{}, model.ErrDuplicateIdentity
	}
	if _, ok := r.s.identities[identity.ID]; ok {
		return model.Identity{}, fmt.Errorf("failed to create identity: id %s already exists", identity.ID)
	}

	r.s.identities[identity.ID] = identity
	r.s.emails[identity.Email] = identity.ID
	return identity, nil
}

func (r *IdentityRepository) Update(ctx context.Context, id uuid.UUID, update model.IdentityUpdate) (model.Identity, error) {
	defer r.s.lock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	identity, ok := r.s.identities[id]
	if !ok {
		return model.Identity{}, model.ErrNotFound
	}

	if update.Email != nil && *update.Email != identity.Email {
		newEmail := *update.Email
		if _, taken := r.s.emails[newEmail]; taken {
			return model.Identity{}, model.ErrDuplicateIdentity
		}
		delete(r.s.emails, identity.Email)
		r.s.emails[newEmail] = id
		if profile, ok := r.s.profiles[identity.Email]; ok {
			delete(r.s.profiles, identity.Email)
			profile.Email = newEmail
			r.s.profiles[newEmail] = profile
		}
		identity.Email = newEmail
	}
	if update.Name != nil {
		identity.Name = update.Name
	}
	if update.PictureRef != nil {
		identity.PictureRef = update.PictureRef
	}
	identity.UpdatedAt = time.Now()

	r.s.identities[id] = identity
	return identity, nil
}

func (r *IdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	identity, ok := r.s.identities[id]
	if !ok {
		return model.ErrNotFound
	}
	if _, ok := r.s.profiles[identity.Email]; ok {
		return fmt.Errorf("failed to delete identity: profile %s still references it", identity.Email)
	}

	delete(r.s.identities, id)
	delete(r.s.emails, identity.Email)
	for postID, post := range r.s.posts {
		if post.AuthorID == id {
			delete(r.s.posts, postID)
		}
	}
	return nil
}

func (r *IdentityRepository) details(identity model.Identity) model.UserDetails {
	details := model.UserDetails{Identity: identity}
	if profile, ok := r.s.profiles[identity.Email]; ok {
		details.Profile = &profile
	}
	return details
}

func (r *IdentityRepository) GetDetails(ctx context.Context, id uuid.UUID) (model.UserDetails, error) {
	defer r.s.lock(r.inTx)()
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	identity, ok := r.s.identities[id]
	if !ok {
		return model.UserDetails{}, model.ErrNotFound
	}
	return r.details(identity), nil
}

func (r *IdentityRepository) ListDetails(ctx context.Context) ([]model.UserDetails, error) {
	defer r.s.lock(r.inTx)()
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.UserDetails, 0, len(r.s.identities))
	for _, identity := range r.s.identities {
		out = append(out, r.details(identity))
	}
	slices.SortFunc(out, func(a, b model.UserDetails) int {
		return cmp.Or(
			a.Identity.CreatedAt.Compare(b.Identity.CreatedAt),
			cmp.Compare(a.Identity.Email, b.Identity.Email),
		)
	})
	return out, nil
}
