package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type GraphSync struct {
	mock.Mock
}

func (_m *GraphSync) SyncMovie(ctx context.Context, m model.Movie) {
	_m.Called(ctx, m)
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
