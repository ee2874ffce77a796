package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// AuthService is a mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, params model.RegisterParams) (uuid.UUID, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

func (m *AuthService) Authenticate(ctx context.Context, email, password string) (model.Session, error) {
	ret := m.Called(ctx, email, password)
	return ret.Get(0).(model.Session), ret.Error(1)
}

func (m *AuthService) Provision(ctx context.Context, params model.ProvisionParams) (uuid.UUID, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

// NewAuthService creates a new instance of AuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
