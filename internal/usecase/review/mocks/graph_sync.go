package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type GraphSync struct {
	mock.Mock
}

func (_m *GraphSync) SyncRating(ctx context.Context, userID string, m model.Movie, rating int) {
	_m.Called(ctx, userID, m, rating)
}

func NewGraphSync(t interface {
	mock.TestingT
	Cleanup(func())
}) *GraphSync {
	m := &GraphSync{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
