package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// AccountService is a mock type for the AccountService type
type AccountService struct {
	mock.Mock
}

func (m *AccountService) GetAccount(ctx context.Context, userID uuid.UUID) (model.Identity, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(model.Identity), ret.Error(1)
}

func (m *AccountService) UpdateAccount(ctx context.Context, userID uuid.UUID, update model.AccountUpdate) (model.Identity, error) {
	ret := m.Called(ctx, userID, update)
	return ret.Get(0).(model.Identity), ret.Error(1)
}

func (m *AccountService) OpenPicture(ctx context.Context, key string) (io.ReadCloser, model.ObjectInfo, error) {
	ret := m.Called(ctx, key)
	var rc io.ReadCloser
	if v := ret.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	return rc, ret.Get(1).(model.ObjectInfo), ret.Error(2)
}

// NewAccountService creates a new instance of AccountService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAccountService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountService {
	m := &AccountService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
