package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type Sessions struct {
	mock.Mock
}

func (_m *Sessions) Open(ctx context.Context, userID string) (model.Session, error) {
	ret := _m.Called(ctx, userID)
	if len(ret) == 0 {
		panic("no return value specified for Open")
	}
	return ret.Get(0).(model.Session), ret.Error(1)
}

func (_m *Sessions) Close(ctx context.Context, userID string) {
	_m.Called(ctx, userID)
}

func NewSessions(t interface {
	mock.TestingT
	Cleanup(func())
}) *Sessions {
	m := &Sessions{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type GraphSync struct {
	mock.Mock
}

func (_m *GraphSync) SyncUser(ctx context.Context, u model.User) {
	_m.Called(ctx, u)
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
