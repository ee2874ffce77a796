package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// TokenManager is a mock type for the TokenManager type
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateAccessToken(claims model.Claims) (string, error) {
	ret := m.Called(claims)
	return ret.String(0), ret.Error(1)
}

func (m *TokenManager) ParseAccessToken(token string) (model.Claims, error) {
	ret := m.Called(token)
	return ret.Get(0).(model.Claims), ret.Error(1)
}

// NewTokenManager creates a new instance of TokenManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
