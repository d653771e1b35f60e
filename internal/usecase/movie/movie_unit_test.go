//go:build !integration
// +build !integration

package usecase_movie

import (
	"context"
	"errors"
	"strings"
	"testing"

	infra_redis_cache "github.com/humanbelnik/cinemate/internal/infra/redis/cache"
	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	movie_mocks "github.com/humanbelnik/cinemate/internal/usecase/movie/mocks"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseMovieUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *movie_mocks.Repository
	cache      *movie_mocks.Cache
	graphSync  *movie_mocks.GraphSync
	ctx        context.Context
}

type MovieBuilder struct {
	m model.Movie
}

func NewMovieBuilder() *MovieBuilder {
	return &MovieBuilder{
		m: model.Movie{
			Title:       "Test Movie",
			Year:        2024,
			Genres:      []string{"Drama", "Comedy"},
			Description: "Test overview",
		},
	}
}

func (b *MovieBuilder) WithID(id string) *MovieBuilder {
	b.m.ID = id
	return b
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.m.Title = title
	return b
}

func (b *MovieBuilder) WithRating(avg float64, n int) *MovieBuilder {
	b.m.AvgRating = avg
	b.m.NumReviews = n
	return b
}

func (b *MovieBuilder) Build() model.Movie {
	return b.m
}

func initResources(t provider.T) *resources {
	repository := movie_mocks.NewRepository(t)
	cache := movie_mocks.NewCache(t)
	graphSync := movie_mocks.NewGraphSync(t)

	return &resources{
		usecase:    New(repository, cache, graphSync),
		repository: repository,
		cache:      cache,
		graphSync:  graphSync,
		ctx:        context.Background(),
	}
}

func (s *UsecaseMovieUnitSuite) TestList(t provider.T) {
	t.Parallel()

	page := []model.Movie{
		NewMovieBuilder().WithID("m1").Build(),
		NewMovieBuilder().WithID("m2").Build(),
	}

	testCases := []struct {
		name        string
		skip, limit int64
		setupMocks  func(r *resources)
		expectMore  bool
		expectError error
	}{
		{
			name:        "Should reject zero limit",
			limit:       0,
			setupMocks:  func(r *resources) {},
			expectError: ErrInvalidInput,
		},
		{
			name:        "Should reject negative skip",
			skip:        -1,
			limit:       10,
			setupMocks:  func(r *resources) {},
			expectError: ErrInvalidInput,
		},
		{
			name:  "Should report more pages when the total is larger",
			skip:  0,
			limit: 2,
			setupMocks: func(r *resources) {
				r.repository.On("Load", r.ctx, int64(0), int64(2)).Return(page, nil).Once()
				r.repository.On("Count", r.ctx).Return(int64(5), nil).Once()
			},
			expectMore: true,
		},
		{
			name:  "Should report last page",
			skip:  3,
			limit: 2,
			setupMocks: func(r *resources) {
				r.repository.On("Load", r.ctx, int64(3), int64(2)).Return(page, nil).Once()
				r.repository.On("Count", r.ctx).Return(int64(5), nil).Once()
			},
			expectMore: false,
		},
		{
			name:  "Should report store failure",
			limit: 2,
			setupMocks: func(r *resources) {
				r.repository.On("Load", r.ctx, int64(0), int64(2)).Return(nil, model.ErrStore).Once()
			},
			expectError: ErrFailedToLoadMeta,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.List(r.ctx, tc.skip, tc.limit)

			if tc.expectError != nil {
				assert.True(t, errors.Is(err, tc.expectError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), got.Total)
			assert.Equal(t, tc.limit, got.Limit)
			assert.Equal(t, tc.skip, got.Skip)
			assert.Equal(t, tc.expectMore, got.HasMore)
		})
	}
}

func (s *UsecaseMovieUnitSuite) TestGet(t provider.T) {
	t.Parallel()

	stored := NewMovieBuilder().WithID("m1").WithRating(4.2, 10).Build()

	t.Run("Should answer from cache", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.cache.On("Load", r.ctx, infra_redis_cache.MovieKey("m1"), mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(2).(*model.Movie) = stored
			}).Return(true).Once()

		got, err := r.usecase.Get(r.ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("Should load and cache on miss", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.cache.On("Load", r.ctx, infra_redis_cache.MovieKey("m1"), mock.Anything).Return(false).Once()
		r.repository.On("LoadByID", r.ctx, "m1").Return(stored, nil).Once()
		r.cache.On("Set", r.ctx, infra_redis_cache.MovieKey("m1"), stored, infra_redis_cache.MovieTTL).Return(true).Once()

		got, err := r.usecase.Get(r.ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("Should share one cache entry across id spellings", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		const id = "65f0a1b2c3d4e5f6a7b8c9d0"
		r.cache.On("Load", r.ctx, infra_redis_cache.MovieKey(id), mock.Anything).Return(false).Once()
		r.repository.On("LoadByID", r.ctx, id).Return(stored, nil).Once()
		r.cache.On("Set", r.ctx, infra_redis_cache.MovieKey(id), stored, infra_redis_cache.MovieTTL).Return(true).Once()

		_, err := r.usecase.Get(r.ctx, strings.ToUpper(id))
		require.NoError(t, err)
	})

	t.Run("Should keep not found visible", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.cache.On("Load", r.ctx, infra_redis_cache.MovieKey("nope"), mock.Anything).Return(false).Once()
		r.repository.On("LoadByID", r.ctx, "nope").Return(model.Movie{}, model.ErrNotFound).Once()

		_, err := r.usecase.Get(r.ctx, "nope")
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})

	t.Run("Should reject empty id", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.Get(r.ctx, " ")
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func (s *UsecaseMovieUnitSuite) TestSearch(t provider.T) {
	t.Parallel()

	t.Run("Should reject empty term", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.Search(r.ctx, "", 10)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("Should cache results under the term and limit", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		found := []model.Movie{NewMovieBuilder().WithID("m1").WithTitle("The Matrix").Build()}
		key := infra_redis_cache.SearchKey("Matrix", 10)

		r.cache.On("Load", r.ctx, key, mock.Anything).Return(false).Once()
		r.repository.On("Search", r.ctx, "Matrix", int64(10)).Return(found, nil).Once()
		r.cache.On("Set", r.ctx, key, found, infra_redis_cache.SearchTTL).Return(true).Once()

		got, err := r.usecase.Search(r.ctx, " Matrix ", 10)
		require.NoError(t, err)
		assert.Equal(t, found, got)
	})
}

func (s *UsecaseMovieUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		movie       model.Movie
		setupMocks  func(r *resources, m model.Movie)
		expectError error
	}{
		{
			name:        "Should reject empty title",
			movie:       NewMovieBuilder().WithTitle("   ").Build(),
			setupMocks:  func(r *resources, m model.Movie) {},
			expectError: ErrInvalidInput,
		},
		{
			name:  "Should store with empty ratings and sync the graph",
			movie: NewMovieBuilder().WithRating(5, 999).Build(),
			setupMocks: func(r *resources, m model.Movie) {
				m.AvgRating, m.NumReviews = 0, 0
				r.repository.On("Store", r.ctx, m).Return("m1", nil).Once()

				m.ID = "m1"
				r.graphSync.On("SyncMovie", r.ctx, m).Once()
			},
		},
		{
			name:  "Should not sync the graph when the store fails",
			movie: NewMovieBuilder().Build(),
			setupMocks: func(r *resources, m model.Movie) {
				r.repository.On("Store", r.ctx, m).Return("", model.ErrStore).Once()
			},
			expectError: ErrFailedToStoreMeta,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r, tc.movie)

			got, err := r.usecase.Create(r.ctx, tc.movie)

			if tc.expectError != nil {
				assert.True(t, errors.Is(err, tc.expectError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "m1", got.ID)
			assert.Zero(t, got.AvgRating)
			assert.Zero(t, got.NumReviews)
		})
	}
}

func (s *UsecaseMovieUnitSuite) TestAnalytics(t provider.T) {
	t.Parallel()
	r := initResources(t)

	stats := []model.GenreStats{{Genre: "Drama", Count: 3}}
	trends := []model.YearTrend{{Year: 1999, MovieCount: 2}}
	decades := []model.DecadeTop{{Decade: "1990s", Movies: []model.TopMovie{{Title: "Heat", Year: 1995}}}}

	r.repository.On("GenreStats", r.ctx).Return(stats, nil).Once()
	r.repository.On("YearlyTrends", r.ctx).Return(trends, nil).Once()
	r.repository.On("TopRatedByDecade", r.ctx).Return(decades, nil).Once()
	r.repository.On("Genres", r.ctx).Return(nil, model.ErrStore).Once()

	gotStats, err := r.usecase.GenreStats(r.ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, gotStats)

	gotTrends, err := r.usecase.YearlyTrends(r.ctx)
	require.NoError(t, err)
	assert.Equal(t, trends, gotTrends)

	gotDecades, err := r.usecase.TopRatedByDecade(r.ctx)
	require.NoError(t, err)
	assert.Equal(t, decades, gotDecades)

	_, err = r.usecase.Genres(r.ctx)
	assert.True(t, errors.Is(err, ErrFailedToLoadMeta))
}

func TestUsecaseMovieUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMovieUnitSuite))
}
