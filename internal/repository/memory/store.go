// Package memory is a process-local backend with the same constraints as the
// PostgreSQL schema: unique identity emails, profiles keyed by an existing
// identity email, and posts removed together with their author.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/model"
)

// Store keeps all tables in memory. Transactions are serialized and isolated
// from standalone access.
type Store struct {
	txMu sync.Mutex

	mu         sync.RWMutex
	identities map[uuid.UUID]model.Identity
	emails     map[string]uuid.UUID
	profiles   map[string]model.Profile
	posts      map[uuid.UUID]model.Post
}

func NewStore() *Store {
	return &Store{
		identities: make(map[uuid.UUID]model.Identity),
		emails:     make(map[string]uuid.UUID),
		profiles:   make(map[string]model.Profile),
		posts:      make(map[uuid.UUID]model.Post),
	}
}

// Identities returns an identity store operating outside of any transaction.
func (s *Store) Identities() *IdentityRepository {
	return &IdentityRepository{s: s}
}

// Profiles returns a profile store operating outside of any transaction.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{s: s}
}

// Posts returns the post store.
func (s *Store) Posts() *PostRepository {
	return &PostRepository{s: s}
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() error { return nil }

type snapshot struct {
	identities map[uuid.UUID]model.Identity
	emails     map[string]uuid.UUID
	profiles   map[string]model.Profile
	posts      map[uuid.UUID]model.Post
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		identities: maps.Clone(s.identities),
		emails:     maps.Clone(s.emails),
		profiles:   maps.Clone(s.profiles),
		posts:      maps.Clone(s.posts),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities = snap.identities
	s.emails = snap.emails
	s.profiles = snap.profiles
	s.posts = snap.posts
}

// lock serializes standalone reads and writes against running transactions,
// so uncommitted rows are never visible outside the transaction.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

var _ model.Transactor = (*Store)(nil)

// WithinTx runs fn against the store and restores the previous state when fn
// returns an error or panics.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos model.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	committed := false
	defer func() {
		if !committed {
			s.restore(snap)
		}
	}()

	repos := model.Repositories{
		Identities: &IdentityRepository{s: s, inTx: true},
		Profiles:   &ProfileRepository{s: s, inTx: true},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}

	committed = true
	return nil
}
