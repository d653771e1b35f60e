package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type MovieRepository struct {
	mock.Mock
}

func (_m *MovieRepository) Load(ctx context.Context, skip, limit int64) ([]model.Movie, error) {
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

func (_m *MovieRepository) SetRatingStats(ctx context.Context, stats model.RatingStats) error {
	ret := _m.Called(ctx, stats)
	if len(ret) == 0 {
		panic("no return value specified for SetRatingStats")
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

type ReviewRepository struct {
	mock.Mock
}

func (_m *ReviewRepository) RatingStats(ctx context.Context) ([]model.RatingStats, error) {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for RatingStats")
	}
	var r0 []model.RatingStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.RatingStats)
	}
	return r0, ret.Error(1)
}

func NewReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewRepository {
	m := &ReviewRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
