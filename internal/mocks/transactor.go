package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// Transactor is a mock type for the Transactor type.
// WithinTx invokes fn with the Repositories passed to Return, or returns the given error.
type Transactor struct {
	mock.Mock
}

func (m *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos model.Repositories) error) error {
	ret := m.Called(ctx, fn)
	if repos, ok := ret.Get(0).(model.Repositories); ok {
		return fn(ctx, repos)
	}
	return ret.Error(0)
}

// NewTransactor creates a new instance of Transactor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTransactor(t interface {
	mock.TestingT
	Cleanup(func())
}) *Transactor {
	m := &Transactor{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
