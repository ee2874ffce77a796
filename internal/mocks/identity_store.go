package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// IdentityStore is a mock type for the IdentityStore type
type IdentityStore struct {
	mock.Mock
}

func (m *IdentityStore) GetByEmail(ctx context.Context, email string) (model.Identity, error) {
	ret := m.Called(ctx, email)
	return ret.Get(0).(model.Identity), ret.Error(1)
}

func (m *IdentityStore) GetByID(ctx context.Context, id uuid.UUID) (model.Identity, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.Identity), ret.Error(1)
}

func (m *IdentityStore) Create(ctx context.Context, identity model.Identity) (model.Identity, error) {
	ret := m.Called(ctx, identity)

	var r0 model.Identity
	if rf, ok := ret.Get(0).(func(context.Context, model.Identity) model.Identity); ok {
		r0 = rf(ctx, identity)
	} else {
		r0 = ret.Get(0).(model.Identity)
	}

	return r0, ret.Error(1)
}

func (m *IdentityStore) Update(ctx context.Context, id uuid.UUID, update model.IdentityUpdate) (model.Identity, error) {
	ret := m.Called(ctx, id, update)
	return ret.Get(0).(model.Identity), ret.Error(1)
}

func (m *IdentityStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *IdentityStore) GetDetails(ctx context.Context, id uuid.UUID) (model.UserDetails, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.UserDetails), ret.Error(1)
}

func (m *IdentityStore) ListDetails(ctx context.Context) ([]model.UserDetails, error) {
	ret := m.Called(ctx)
	var out []model.UserDetails
	if v := ret.Get(0); v != nil {
		out = v.([]model.UserDetails)
	}
	return out, ret.Error(1)
}

// NewIdentityStore creates a new instance of IdentityStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewIdentityStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdentityStore {
	m := &IdentityStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
