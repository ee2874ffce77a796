package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// PostStore is a mock type for the PostStore type
type PostStore struct {
	mock.Mock
}

func (m *PostStore) Create(ctx context.Context, post model.Post) (model.Post, error) {
	ret := m.Called(ctx, post)

	var r0 model.Post
	if rf, ok := ret.Get(0).(func(context.Context, model.Post) model.Post); ok {
		r0 = rf(ctx, post)
	} else {
		r0 = ret.Get(0).(model.Post)
	}

	return r0, ret.Error(1)
}

func (m *PostStore) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.Post), ret.Error(1)
}

func (m *PostStore) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]model.Post, error) {
	ret := m.Called(ctx, authorID)
	var out []model.Post
	if v := ret.Get(0); v != nil {
		out = v.([]model.Post)
	}
	return out, ret.Error(1)
}

func (m *PostStore) Update(ctx context.Context, post model.Post) (model.Post, error) {
	ret := m.Called(ctx, post)

	var r0 model.Post
	if rf, ok := ret.Get(0).(func(context.Context, model.Post) model.Post); ok {
		r0 = rf(ctx, post)
	} else {
		r0 = ret.Get(0).(model.Post)
	}

	return r0, ret.Error(1)
}

func (m *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

// NewPostStore creates a new instance of PostStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPostStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *PostStore {
	m := &PostStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
