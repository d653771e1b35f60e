package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

func (_m *Cache) Delete(ctx context.Context, key string) bool {
	ret := _m.Called(ctx, key)
	if len(ret) == 0 {
		panic("no return value specified for Delete")
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
