package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type Graph struct {
	mock.Mock
}

func (_m *Graph) SimilarMovies(ctx context.Context, movieID string, limit int64) ([]model.GraphMovie, error) {
	ret := _m.Called(ctx, movieID, limit)
	if len(ret) == 0 {
		panic("no return value specified for SimilarMovies")
	}
	var r0 []model.GraphMovie
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.GraphMovie)
	}
	return r0, ret.Error(1)
}

func (_m *Graph) UserRecommendations(ctx context.Context, userID string, limit int64) ([]model.GraphMovie, error) {
	ret := _m.Called(ctx, userID, limit)
	if len(ret) == 0 {
		panic("no return value specified for UserRecommendations")
	}
	var r0 []model.GraphMovie
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.GraphMovie)
	}
	return r0, ret.Error(1)
}

func (_m *Graph) PopularGenres(ctx context.Context, limit int64) ([]model.GenrePopularity, error) {
	ret := _m.Called(ctx, limit)
	if len(ret) == 0 {
		panic("no return value specified for PopularGenres")
	}
	var r0 []model.GenrePopularity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.GenrePopularity)
	}
	return r0, ret.Error(1)
}

func (_m *Graph) ShortestPath(ctx context.Context, fromID, toID string) (model.Path, error) {
	ret := _m.Called(ctx, fromID, toID)
	if len(ret) == 0 {
		panic("no return value specified for ShortestPath")
	}
	return ret.Get(0).(model.Path), ret.Error(1)
}

func NewGraph(t interface {
	mock.TestingT
	Cleanup(func())
}) *Graph {
	m := &Graph{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
