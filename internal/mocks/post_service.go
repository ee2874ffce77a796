package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/staffhub-server/internal/model"
)

// PostService is a mock type for the PostService type
type PostService struct {
	mock.Mock
}

func (m *PostService) Create(ctx context.Context, authorID uuid.UUID, params model.PostParams) (model.Post, error) {
	ret := m.Called(ctx, authorID, params)
	return ret.Get(0).(model.Post), ret.Error(1)
}

func (m *PostService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Post, error) {
	ret := m.Called(ctx, authorID)
	var posts []model.Post
	if v := ret.Get(0); v != nil {
		posts = v.([]model.Post)
	}
	return posts, ret.Error(1)
}

func (m *PostService) Get(ctx context.Context, id uuid.UUID) (model.Post, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.Post), ret.Error(1)
}

func (m *PostService) Update(ctx context.Context, callerID, id uuid.UUID, params model.PostParams) (model.Post, error) {
	ret := m.Called(ctx, callerID, id, params)
	return ret.Get(0).(model.Post), ret.Error(1)
}

func (m *PostService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	ret := m.Called(ctx, callerID, id)
	return ret.Error(0)
}

// NewPostService creates a new instance of PostService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPostService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PostService {
	m := &PostService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
