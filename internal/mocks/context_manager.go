package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// ContextManager is a mock type for the ContextManager type
type ContextManager struct {
	mock.Mock
}

func (m *ContextManager) SetClaimsToContext(ctx context.Context, claims model.Claims) context.Context {
	ret := m.Called(ctx, claims)
	if rf, ok := ret.Get(0).(func(context.Context, model.Claims) context.Context); ok {
		return rf(ctx, claims)
	}
	return ret.Get(0).(context.Context)
}

func (m *ContextManager) GetClaimsFromContext(ctx context.Context) (model.Claims, bool) {
	ret := m.Called(ctx)
	return ret.Get(0).(model.Claims), ret.Bool(1)
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
