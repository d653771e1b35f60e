package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type SessionCache struct {
	mock.Mock
}

func (_m *SessionCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	ret := _m.Called(ctx, key, value, ttl)
	if len(ret) == 0 {
		panic("no return value specified for Set")
	}
	return ret.Bool(0)
}

func (_m *SessionCache) Get(ctx context.Context, key string) (any, bool) {
	ret := _m.Called(ctx, key)
	if len(ret) == 0 {
		panic("no return value specified for Get")
	}
	return ret.Get(0), ret.Bool(1)
}

func (_m *SessionCache) Delete(ctx context.Context, key string) bool {
	ret := _m.Called(ctx, key)
	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}
	return ret.Bool(0)
}

func NewSessionCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionCache {
	m := &SessionCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
