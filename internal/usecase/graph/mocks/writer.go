package mocks

import (
	"context"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/mock"
)

type Writer struct {
	mock.Mock
}

func (_m *Writer) UpsertMovie(ctx context.Context, m model.GraphMovie) error {
	ret := _m.Called(ctx, m)
	if len(ret) == 0 {
		panic("no return value specified for UpsertMovie")
	}
	return ret.Error(0)
}

func (_m *Writer) UpsertGenres(ctx context.Context, movieID string, genres []string) error {
	ret := _m.Called(ctx, movieID, genres)
	if len(ret) == 0 {
		panic("no return value specified for UpsertGenres")
	}
	return ret.Error(0)
}

func (_m *Writer) UpsertUser(ctx context.Context, id, username string) error {
	ret := _m.Called(ctx, id, username)
	if len(ret) == 0 {
		panic("no return value specified for UpsertUser")
	}
	return ret.Error(0)
}

func (_m *Writer) UpsertRating(ctx context.Context, userID, movieID string, rating float64) error {
	ret := _m.Called(ctx, userID, movieID, rating)
	if len(ret) == 0 {
		panic("no return value specified for UpsertRating")
	}
	return ret.Error(0)
}

func NewWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *Writer {
	m := &Writer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
