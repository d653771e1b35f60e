package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (_m *Repository) Store(ctx context.Context, r model.Review) (string, error) {
	ret := _m.Called(ctx, r)
	if len(ret) == 0 {
		panic("no return value specified for Store")
	}
	return ret.String(0), ret.Error(1)
}

func (_m *Repository) List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error) {
	ret := _m.Called(ctx, f)
	if len(ret) == 0 {
		panic("no return value specified for List")
	}
	var r0 []model.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Review)
	}
	return r0, ret.Error(1)
}

func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	m := &Repository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MovieRepository struct {
	mock.Mock
}

func (_m *MovieRepository) LoadByID(ctx context.Context, id string) (model.Movie, error) {
	ret := _m.Called(ctx, id)
	if len(ret) == 0 {
		panic("no return value specified for LoadByID")
	}
	return ret.Get(0).(model.Movie), ret.Error(1)
}

func (_m *MovieRepository) FoldRating(ctx context.Context, id string, rating int) error {
	ret := _m.Called(ctx, id, rating)
	if len(ret) == 0 {
		panic("no return value specified for FoldRating")
	}
	return ret.Error(0)
}

func NewMovieRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MovieRepository {
	m := &MovieRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
