package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// ProfileStore is a mock type for the ProfileStore type
type ProfileStore struct {
	mock.Mock
}

func (m *ProfileStore) GetByEmail(ctx context.Context, email string) (model.Profile, error) {
	ret := m.Called(ctx, email)
	return ret.Get(0).(model.Profile), ret.Error(1)
}

func (m *ProfileStore) Create(ctx context.Context, profile model.Profile) error {
	ret := m.Called(ctx, profile)
	return ret.Error(0)
}

func (m *ProfileStore) Update(ctx context.Context, profile model.Profile) error {
	ret := m.Called(ctx, profile)
	return ret.Error(0)
}

func (m *ProfileStore) Upsert(ctx context.Context, profile model.Profile) error {
	ret := m.Called(ctx, profile)
	return ret.Error(0)
}

func (m *ProfileStore) DeleteByEmail(ctx context.Context, email string) error {
	ret := m.Called(ctx, email)
	return ret.Error(0)
}

// NewProfileStore creates a new instance of ProfileStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProfileStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProfileStore {
	m := &ProfileStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
