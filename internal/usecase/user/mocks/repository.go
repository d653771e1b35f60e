package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (_m *Repository) Store(ctx context.Context, u model.User) (string, error) {
	ret := _m.Called(ctx, u)
	if len(ret) == 0 {
		panic("no return value specified for Store")
	}
	return ret.String(0), ret.Error(1)
}

func (_m *Repository) List(ctx context.Context, skip, limit int64) ([]model.User, error) {
	ret := _m.Called(ctx, skip, limit)
	if len(ret) == 0 {
		panic("no return value specified for List")
	}
	var r0 []model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.User)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) LoadByUsername(ctx context.Context, username string) (model.User, error) {
	ret := _m.Called(ctx, username)
	if len(ret) == 0 {
		panic("no return value specified for LoadByUsername")
	}
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *Repository) AddBookmark(ctx context.Context, userID, movieID string) error {
	ret := _m.Called(ctx, userID, movieID)
	if len(ret) == 0 {
		panic("no return value specified for AddBookmark")
	}
	return ret.Error(0)
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

func NewMovieRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MovieRepository {
	m := &MovieRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
