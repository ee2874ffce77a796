package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// UserService is a mock type for the UserService type
type UserService struct {
	mock.Mock
}

func (m *UserService) List(ctx context.Context) ([]model.UserDetails, error) {
	ret := m.Called(ctx)
	var users []model.UserDetails
	if v := ret.Get(0); v != nil {
		users = v.([]model.UserDetails)
	}
	return users, ret.Error(1)
}

func (m *UserService) Get(ctx context.Context, id uuid.UUID) (model.UserDetails, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.UserDetails), ret.Error(1)
}

func (m *UserService) Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (model.UserDetails, error) {
	ret := m.Called(ctx, id, update)
	return ret.Get(0).(model.UserDetails), ret.Error(1)
}

func (m *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *UserService) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	ret := m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
