package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type MovieRepository struct {
	mock.Mock
}

func (_m *MovieRepository) LoadByID(ctx context.Context, id string) (model.Movie, error) {
	ret := _m.Called(ctx, id)
	if len(ret) == 0 {
		panic("no return value specified for LoadByID")
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) (model.Movie, error)); ok {
		return rf(ctx, id)
	}
	return ret.Get(0).(model.Movie), ret.Error(1)
}

func (_m *MovieRepository) LoadByIDs(ctx context.Context, ids []string) ([]model.Movie, error) {
	ret := _m.Called(ctx, ids)
	if len(ret) == 0 {
		panic("no return value specified for LoadByIDs")
	}
	if rf, ok := ret.Get(0).(func(context.Context, []string) ([]model.Movie, error)); ok {
		return rf(ctx, ids)
	}
	var r0 []model.Movie
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Movie)
	}
	return r0, ret.Error(1)
}

func (_m *MovieRepository) IDs(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for IDs")
	}
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

func (_m *MovieRepository) Popular(ctx context.Context, minReviews int, limit int64) ([]model.Movie, error) {
	ret := _m.Called(ctx, minReviews, limit)
	if len(ret) == 0 {
		panic("no return value specified for Popular")
	}
	var r0 []model.Movie
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Movie)
	}
	return r0, ret.Error(1)
}

func (_m *MovieRepository) ByGenre(ctx context.Context, genre string, limit int64) ([]model.Movie, error) {
	ret := _m.Called(ctx, genre, limit)
	if len(ret) == 0 {
		panic("no return value specified for ByGenre")
	}
	var r0 []model.Movie
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Movie)
	}
	return r0, ret.Error(1)
}

func (_m *MovieRepository) Similar(ctx context.Context, target model.Movie, limit int64) ([]model.Movie, error) {
	ret := _m.Called(ctx, target, limit)
	if len(ret) == 0 {
		panic("no return value specified for Similar")
	}
	var r0 []model.Movie
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Movie)
	}
	return r0, ret.Error(1)
}

// NewMovieRepository registers a cleanup that asserts every expectation.
func NewMovieRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MovieRepository {
	m := &MovieRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
