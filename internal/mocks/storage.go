package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// Storage is a mock type for the Storage type
type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	ret := m.Called(ctx, key, reader, size, contentType)
	return ret.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, model.ObjectInfo, error) {
	ret := m.Called(ctx, key)
	var rc io.ReadCloser
	if v := ret.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	return rc, ret.Get(1).(model.ObjectInfo), ret.Error(2)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	ret := m.Called(ctx, key)
	return ret.Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	ret := m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

// NewStorage creates a new instance of Storage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *Storage {
	m := &Storage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
