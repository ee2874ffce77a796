package memory

import (
	"context"
	"fmt"

	"github.com/dtroode/staffhub-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	s    *Store
	inTx bool
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (model.Profile, error) {
	defer r.s.lock(r.inTx)()
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	profile, ok := r.s.profiles[email]
	if !ok {
		return model.Profile{}, model.ErrNotFound
	}
	return profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) error {
	defer r.s.lock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[profile.Email]; ok {
		return model.ErrDuplicateIdentity
	}
	return r.put(profile)
}

func (r *ProfileRepository) Update(ctx context.Context, profile model.Profile) error {
	defer r.s.lock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[profile.Email]; !ok {
		return model.ErrNotFound
	}
	r.s.profiles[profile.Email] = profile
	return nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile model.Profile) error {
	defer r.s.lock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.put(profile)
}

// put requires s.mu to be held.
func (r *ProfileRepository) put(profile model.Profile) error {
	if _, ok := r.s.emails[profile.Email]; !ok {
		return fmt.Errorf("failed to store profile: no identity with email %s", profile.Email)
	}
	r.s.profiles[profile.Email] = profile
	return nil
}

func (r *ProfileRepository) DeleteByEmail(ctx context.Context, email string) error {
	defer r.s.lock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[email]; !ok {
		return model.ErrNotFound
	}
	delete(r.s.profiles, email)
	return nil
}
