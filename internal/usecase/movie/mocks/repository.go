package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (_m *Repository) Store(ctx context.Context, m model.Movie) (string, error) {
	ret := _m.Called(ctx, m)
	if len(ret) == 0 {
		panic("no return value specified for Store")
	}
	return ret.String(0), ret.Error(1)
}

func (_m *Repository) Load(ctx context.Context, skip, limit int64) ([]model.Movie, error) {
	ret := _m.Called(ctx, skip, limit)
	if len(ret) == 0 {
		panic("no return value specified for Load")
	}
	var r0 []model.Movie
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Movie)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for Count")
	}
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *Repository) LoadByID(ctx context.Context, id string) (model.Movie, error) {
	ret := _m.Called(ctx, id)
	if len(ret) == 0 {
		panic("no return value specified for LoadByID")
	}
	return ret.Get(0).(model.Movie), ret.Error(1)
}

func (_m *Repository) Search(ctx context.Context, term string, limit int64) ([]model.Movie, error) {
	ret := _m.Called(ctx, term, limit)
	if len(ret) == 0 {
		panic("no return value specified for Search")
	}
	var r0 []model.Movie
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Movie)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) Genres(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for Genres")
	}
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) GenreStats(ctx context.Context) ([]model.GenreStats, error) {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for GenreStats")
	}
	var r0 []model.GenreStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.GenreStats)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) YearlyTrends(ctx context.Context) ([]model.YearTrend, error) {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for YearlyTrends")
	}
	var r0 []model.YearTrend
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.YearTrend)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) TopRatedByDecade(ctx context.Context) ([]model.DecadeTop, error) {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for TopRatedByDecade")
	}
	var r0 []model.DecadeTop
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.DecadeTop)
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
