package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/staffhub-server/internal/mocks"
	"github.com/dtroode/staffhub-server/internal/model"
	"github.com/dtroode/staffhub-server/internal/testutil"
)

type authDeps struct {
	identities *servermocks.IdentityStore
	profiles   *servermocks.ProfileStore
	transactor *servermocks.Transactor
	hasher     *servermocks.PasswordHasher
	tokens     *servermocks.TokenManager
}

func newAuthWithMocks(t *testing.T) (*Auth, authDeps) {
	deps := authDeps{
		identities: servermocks.NewIdentityStore(t),
		profiles:   servermocks.NewProfileStore(t),
		transactor: servermocks.NewTransactor(t),
		hasher:     servermocks.NewPasswordHasher(t),
		tokens:     servermocks.NewTokenManager(t),
	}
	log := testutil.MakeNoopLogger()
	a := NewAuth(deps.identities, deps.transactor, deps.hasher, NewTokenService(deps.tokens, log), log)
	return a, deps
}

func (d authDeps) repos() model.Repositories {
	return model.Repositories{Identities: d.identities, Profiles: d.profiles}
}

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.identities.On("GetByEmail", mock.Anything, "a@x.com").Return(model.Identity{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw1").Return("hashed", nil)
		d.identities.On("Create", mock.Anything, mock.MatchedBy(func(i model.Identity) bool {
			return i.Email == "a@x.com" && i.PasswordHash == "hashed" && i.Role == model.RoleUser && i.Name == nil
		})).Return(func(ctx context.Context, i model.Identity) model.Identity { return i }, nil)

		id, err := a.Register(ctx, model.RegisterParams{Email: "a@x.com", Password: "pw1"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("existing email", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.identities.On("GetByEmail", mock.Anything, "a@x.com").Return(model.Identity{ID: uuid.New()}, nil)

		_, err := a.Register(ctx, model.RegisterParams{Email: "a@x.com", Password: "pw1"})
		assert.ErrorIs(t, err, model.ErrDuplicateIdentity)
	})

	t.Run("constraint violation on insert", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.identities.On("GetByEmail", mock.Anything, "a@x.com").Return(model.Identity{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw1").Return("hashed", nil)
		d.identities.On("Create", mock.Anything, mock.Anything).Return(model.Identity{}, model.ErrDuplicateIdentity)

		_, err := a.Register(ctx, model.RegisterParams{Email: "a@x.com", Password: "pw1"})
		assert.ErrorIs(t, err, model.ErrDuplicateIdentity)
	})

	t.Run("missing fields", func(t *testing.T) {
		a, _ := newAuthWithMocks(t)

		_, err := a.Register(ctx, model.RegisterParams{Email: "a@x.com"})
		assert.ErrorIs(t, err, model.ErrBadRequest)
	})

	t.Run("store failure", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.identities.On("GetByEmail", mock.Anything, "a@x.com").Return(model.Identity{}, errors.New("db down"))

		_, err := a.Register(ctx, model.RegisterParams{Email: "a@x.com", Password: "pw1"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrDuplicateIdentity)
	})
}

func TestAuth_Authenticate(t *testing.T) {
	ctx := context.Background()
	identity := model.Identity{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed", Role: model.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.identities.On("GetByEmail", mock.Anything, "a@x.com").Return(identity, nil)
		d.hasher.On("Verify", "pw1", "hashed").Return(true)
		d.tokens.On("GenerateAccessToken", model.Claims{UserID: identity.ID, Email: identity.Email}).Return("token", nil)

		session, err := a.Authenticate(ctx, "a@x.com", "pw1")
		require.NoError(t, err)
		assert.Equal(t, model.Session{Token: "token", IsAdmin: true}, session)
	})

	t.Run("unknown email", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.identities.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Identity{}, model.ErrNotFound)

		_, err := a.Authenticate(ctx, "b@x.com", "pw1")
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.identities.On("GetByEmail", mock.Anything, "a@x.com").Return(identity, nil)
		d.hasher.On("Verify", "bad", "hashed").Return(false)

		_, err := a.Authenticate(ctx, "a@x.com", "bad")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		a, _ := newAuthWithMocks(t)

		_, err := a.Authenticate(ctx, "", "pw1")
		assert.ErrorIs(t, err, model.ErrBadRequest)
		_, err = a.Authenticate(ctx, "a@x.com", "")
		assert.ErrorIs(t, err, model.ErrBadRequest)
	})

	t.Run("signing failure", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.identities.On("GetByEmail", mock.Anything, "a@x.com").Return(identity, nil)
		d.hasher.On("Verify", "pw1", "hashed").Return(true)
		d.tokens.On("GenerateAccessToken", mock.Anything).Return("", errors.New("no key"))

		_, err := a.Authenticate(ctx, "a@x.com", "pw1")
		assert.Error(t, err)
	})
}

func TestAuth_Provision(t *testing.T) {
	ctx := context.Background()
	params := model.ProvisionParams{Email: "b@x.com", FName: "Jo", LName: "Li", Password: "pw"}

	t.Run("success", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.transactor.On("WithinTx", mock.Anything, mock.Anything).Return(d.repos())
		d.identities.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Identity{}, model.ErrNotFound)
		d.profiles.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Profile{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw").Return("hashed", nil)
		d.identities.On("Create", mock.Anything, mock.MatchedBy(func(i model.Identity) bool {
			return i.Email == "b@x.com" && i.Role == model.RoleUser
		})).Return(func(ctx context.Context, i model.Identity) model.Identity { return i }, nil)
		d.profiles.On("Create", mock.Anything, model.Profile{Email: "b@x.com", FName: "Jo", LName: "Li"}).Return(nil)

		id, err := a.Provision(ctx, params)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("email held by identity", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.transactor.On("WithinTx", mock.Anything, mock.Anything).Return(d.repos())
		d.identities.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Identity{ID: uuid.New()}, nil)

		_, err := a.Provision(ctx, params)
		assert.ErrorIs(t, err, model.ErrDuplicateIdentity)
		assert.NotErrorIs(t, err, model.ErrTransactionFailure)
	})

	t.Run("email held by orphan profile", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.transactor.On("WithinTx", mock.Anything, mock.Anything).Return(d.repos())
		d.identities.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Identity{}, model.ErrNotFound)
		d.profiles.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Profile{Email: "b@x.com"}, nil)

		_, err := a.Provision(ctx, params)
		assert.ErrorIs(t, err, model.ErrDuplicateIdentity)
	})

	t.Run("constraint violation on profile insert", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.transactor.On("WithinTx", mock.Anything, mock.Anything).Return(d.repos())
		d.identities.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Identity{}, model.ErrNotFound)
		d.profiles.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Profile{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw").Return("hashed", nil)
		d.identities.On("Create", mock.Anything, mock.Anything).Return(func(ctx context.Context, i model.Identity) model.Identity { return i }, nil)
		d.profiles.On("Create", mock.Anything, mock.Anything).Return(model.ErrDuplicateIdentity)

		_, err := a.Provision(ctx, params)
		assert.ErrorIs(t, err, model.ErrDuplicateIdentity)
	})

	t.Run("unexpected failure is a transaction failure", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.transactor.On("WithinTx", mock.Anything, mock.Anything).Return(d.repos())
		d.identities.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Identity{}, model.ErrNotFound)
		d.profiles.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Profile{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw").Return("hashed", nil)
		d.identities.On("Create", mock.Anything, mock.Anything).Return(func(ctx context.Context, i model.Identity) model.Identity { return i }, nil)
		d.profiles.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := a.Provision(ctx, params)
		assert.ErrorIs(t, err, model.ErrTransactionFailure)
	})

	t.Run("password rejected by hasher", func(t *testing.T) {
		a, d := newAuthWithMocks(t)
		d.transactor.On("WithinTx", mock.Anything, mock.Anything).Return(d.repos())
		d.identities.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Identity{}, model.ErrNotFound)
		d.profiles.On("GetByEmail", mock.Anything, "b@x.com").Return(model.Profile{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw").Return("", model.NewRequestError("password must be at most 72 bytes"))

		_, err := a.Provision(ctx, params)
		assert.ErrorIs(t, err, model.ErrBadRequest)
		assert.NotErrorIs(t, err, model.ErrTransactionFailure)
	})

	t.Run("missing fields", func(t *testing.T) {
		a, _ := newAuthWithMocks(t)

		_, err := a.Provision(ctx, model.ProvisionParams{Email: "b@x.com", FName: "Jo", Password: "pw"})
		assert.ErrorIs(t, err, model.ErrBadRequest)
	})

	t.Run("unknown role", func(t *testing.T) {
		a, _ := newAuthWithMocks(t)
		p := params
		p.Role = "root"

		_, err := a.Provision(ctx, p)
		assert.ErrorIs(t, err, model.ErrBadRequest)
	})
}
