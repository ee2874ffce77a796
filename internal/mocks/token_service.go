package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// TokenService is a mock type for the TokenService type
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Verify(token string) (model.Claims, error) {
	ret := m.Called(token)
	return ret.Get(0).(model.Claims), ret.Error(1)
}

// NewTokenService creates a new instance of TokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
