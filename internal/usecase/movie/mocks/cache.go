package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

func (_m *Cache) Load(ctx context.Context, key string, dst any) bool {
	ret := _m.Called(ctx, key, dst)
	if len(ret) == 0 {
		panic("no return value specified for Load")
	}
	return ret.Bool(0)
}

func (_m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	ret := _m.Called(ctx, key, value, ttl)
	if len(ret) == 0 {
		panic("no return value specified for Set")
	}
	return ret.Bool(0)
}

func NewCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *Cache {
	m := &Cache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
