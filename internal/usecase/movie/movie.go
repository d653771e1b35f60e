package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	infra_redis_cache "github.com/humanbelnik/cinemate/internal/infra/redis/cache"
	"github.com/humanbelnik/cinemate/internal/model"
)

var (
	ErrInvalidInput      = model.ErrInvalidInput
	ErrFailedToLoadMeta  = errors.New("failed to load movie")
	ErrFailedToStoreMeta = errors.New("failed to store movie")
	ErrFailedToAggregate = errors.New("failed to aggregate movies")
)

const DefaultLimit int64 = 10

type Repository interface {
	Store(ctx context.Context, m model.Movie) (string, error)
	Load(ctx context.Context, skip, limit int64) ([]model.Movie, error)
	Count(ctx context.Context) (int64, error)
	LoadByID(ctx context.Context, id string) (model.Movie, error)
	Search(ctx context.Context, term string, limit int64) ([]model.Movie, error)
	Genres(ctx context.Context) ([]string, error)
	GenreStats(ctx context.Context) ([]model.GenreStats, error)
	YearlyTrends(ctx context.Context) ([]model.YearTrend, error)
	TopRatedByDecade(ctx context.Context) ([]model.DecadeTop, error)
}

type Cache interface {
	Load(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
}

// GraphSync mirrors catalog writes into the graph store. Failures are its
// own concern and never fail the catalog write.
type GraphSync interface {
	SyncMovie(ctx context.Context, m model.Movie)
}

type Page struct {
	Movies  []model.Movie
	Total   int64
	Limit   int64
	Skip    int64
	HasMore bool
}

type Usecase struct {
	repository Repository
	cache      Cache
	graphSync  GraphSync
}

func New(
	repository Repository,
	cache Cache,
	graphSync GraphSync,
) *Usecase {
	return &Usecase{
		repository: repository,
		cache:      cache,
		graphSync:  graphSync,
	}
}

func (u *Usecase) List(ctx context.Context, skip, limit int64) (Page, error) {
	if limit <= 0 {
		return Page{}, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	if skip < 0 {
		return Page{}, fmt.Errorf("%w: skip cannot be negative", ErrInvalidInput)
	}

	movies, err := u.repository.Load(ctx, skip, limit)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}

	total, err := u.repository.Count(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}

	return Page{
		Movies:  movies,
		Total:   total,
		Limit:   limit,
		Skip:    skip,
		HasMore: skip+int64(len(movies)) < total,
	}, nil
}

func (u *Usecase) Count(ctx context.Context) (int64, error) {
	n, err := u.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}
	return n, nil
}

// Get serves a movie from cache when present and fills the cache otherwise.
func (u *Usecase) Get(ctx context.Context, id string) (model.Movie, error) {
	id = model.CanonicalID(id)
	if id == "" {
		return model.Movie{}, fmt.Errorf("%w: movie id cannot be empty", ErrInvalidInput)
	}

	// Reviews invalidate the canonical key only.
	key := infra_redis_cache.MovieKey(id)
	var cached model.Movie
	if u.cache.Load(ctx, key, &cached) {
		return cached, nil
	}

	m, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}

	u.cache.Set(ctx, key, m, infra_redis_cache.MovieTTL)
	return m, nil
}

func (u *Usecase) Search(ctx context.Context, term string, limit int64) ([]model.Movie, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term cannot be empty", ErrInvalidInput)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}

	key := infra_redis_cache.SearchKey(term, limit)
	var cached []model.Movie
	if u.cache.Load(ctx, key, &cached) {
		return cached, nil
	}

	movies, err := u.repository.Search(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}

	u.cache.Set(ctx, key, movies, infra_redis_cache.SearchTTL)
	return movies, nil
}

func (u *Usecase) Genres(ctx context.Context) ([]string, error) {
	genres, err := u.repository.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMeta, err)
	}
	return genres, nil
}

// Create stores a new movie. Ratings always start empty; only reviews move them.
func (u *Usecase) Create(ctx context.Context, m model.Movie) (model.Movie, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == model.EmptyTitle {
		return model.Movie{}, fmt.Errorf("%w: movie title cannot be empty", ErrInvalidInput)
	}
	if m.Year < 0 {
		return model.Movie{}, fmt.Errorf("%w: year cannot be negative", ErrInvalidInput)
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}
	m.AvgRating = 0
	m.NumReviews = 0

	id, err := u.repository.Store(ctx, m)
	if err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToStoreMeta, err)
	}
	m.ID = id

	u.graphSync.SyncMovie(ctx, m)
	return m, nil
}

func (u *Usecase) GenreStats(ctx context.Context) ([]model.GenreStats, error) {
	stats, err := u.repository.GenreStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToAggregate, err)
	}
	return stats, nil
}

func (u *Usecase) YearlyTrends(ctx context.Context) ([]model.YearTrend, error) {
	trends, err := u.repository.YearlyTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToAggregate, err)
	}
	return trends, nil
}

func (u *Usecase) TopRatedByDecade(ctx context.Context) ([]model.DecadeTop, error) {
	decades, err := u.repository.TopRatedByDecade(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToAggregate, err)
	}
	return decades, nil
}
