package usecase_recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	infra_redis_cache "github.com/humanbelnik/cinemate/internal/infra/redis/cache"
	"github.com/humanbelnik/cinemate/internal/model"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidInput       = model.ErrInvalidInput
	ErrFailedToQueryStore = errors.New("failed to query document store")
	ErrFailedToQueryGraph = errors.New("failed to query graph store")
)

const (
	DefaultLimit        int64 = 10
	DefaultSimilarLimit int64 = 5

	DefaultSharedTimeout = 10 * time.Second
)

type MovieRepository interface {
	LoadByID(ctx context.Context, id string) (model.Movie, error)
	LoadByIDs(ctx context.Context, ids []string) ([]model.Movie, error)
	IDs(ctx context.Context) ([]string, error)
	Popular(ctx context.Context, minReviews int, limit int64) ([]model.Movie, error)
	ByGenre(ctx context.Context, genre string, limit int64) ([]model.Movie, error)
	Similar(ctx context.Context, target model.Movie, limit int64) ([]model.Movie, error)
}

type Graph interface {
	SimilarMovies(ctx context.Context, movieID string, limit int64) ([]model.GraphMovie, error)
	UserRecommendations(ctx context.Context, userID string, limit int64) ([]model.GraphMovie, error)
	PopularGenres(ctx context.Context, limit int64) ([]model.GenrePopularity, error)
	ShortestPath(ctx context.Context, fromID, toID string) (model.Path, error)
}

type Cache interface {
	Load(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
}

// Usecase routes each recommendation kind to the store that answers it and
// normalizes the result into model.MovieRecord.
type Usecase struct {
	movies MovieRepository
	graph  Graph
	cache  Cache

	minReviews    int
	shuffle       func([]string)
	group         singleflight.Group
	sharedTimeout time.Duration

	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// WithSharedTimeout bounds a store query whose result is shared by every
// request waiting on the same cache key.
func WithSharedTimeout(d time.Duration) Option {
	return func(u *Usecase) {
		if d > 0 {
			u.sharedTimeout = d
		}
	}
}

func WithPopularMinReviews(n int) Option {
	return func(u *Usecase) {
		u.minReviews = n
	}
}

// WithShuffle replaces the uniform shuffle used for random sampling.
func WithShuffle(shuffle func([]string)) Option {
	return func(u *Usecase) {
		u.shuffle = shuffle
	}
}

func New(
	movies MovieRepository,
	graph Graph,
	cache Cache,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		movies:     movies,
		graph:      graph,
		cache:      cache,
		minReviews: 100,
		shuffle: func(ids []string) {
			rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		},
		sharedTimeout: DefaultSharedTimeout,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Popular answers the best rated movies with enough reviews. Served from
// cache when present.
func (u *Usecase) Popular(ctx context.Context, limit int64) ([]model.MovieRecord, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	key := infra_redis_cache.PopularKey(limit)
	var cached []model.MovieRecord
	if u.cache.Load(ctx, key, &cached) {
		return cached, nil
	}

	v, err, _ := u.group.Do(key, func() (any, error) {
		ctx, cancel := u.sharedContext(ctx)
		defer cancel()

		movies, err := u.movies.Popular(ctx, u.minReviews, limit)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToQueryStore, err)
		}

		records := toRecords(movies)
		u.cache.Set(ctx, key, records, infra_redis_cache.PopularTTL)
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.MovieRecord), nil
}

func (u *Usecase) ByGenre(ctx context.Context, genre string, limit int64) ([]model.MovieRecord, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, fmt.Errorf("%w: genre cannot be empty", ErrInvalidInput)
	}

	movies, err := u.movies.ByGenre(ctx, genre, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQueryStore, err)
	}
	return toRecords(movies), nil
}

// SimilarByGenreAndRating is the document store notion of similarity: at
// least one shared genre and a rating close to the target's.
func (u *Usecase) SimilarByGenreAndRating(ctx context.Context, movieID string, limit int64) ([]model.MovieRecord, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	target, err := u.movies.LoadByID(ctx, movieID)
	if err != nil {
		return nil, wrapStore(err)
	}

	movies, err := u.movies.Similar(ctx, target, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQueryStore, err)
	}
	return toRecords(movies), nil
}

// Random samples uniformly over the whole catalog.
func (u *Usecase) Random(ctx context.Context, limit int64) ([]model.MovieRecord, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	ids, err := u.movies.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQueryStore, err)
	}

	u.shuffle(ids)
	if int64(len(ids)) > limit {
		ids = ids[:limit]
	}

	movies, err := u.movies.LoadByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQueryStore, err)
	}
	return toRecords(movies), nil
}

// GraphSimilar is the graph notion of similarity: ranked by the number of
// shared genres.
func (u *Usecase) GraphSimilar(ctx context.Context, movieID string, limit int64) ([]model.MovieRecord, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if movieID == "" {
		return nil, fmt.Errorf("%w: movie id cannot be empty", ErrInvalidInput)
	}

	found, err := u.graph.SimilarMovies(ctx, movieID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQueryGraph, err)
	}
	return u.hydrate(ctx, found), nil
}

func (u *Usecase) UserRecommendations(ctx context.Context, userID string, limit int64) ([]model.MovieRecord, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id cannot be empty", ErrInvalidInput)
	}

	found, err := u.graph.UserRecommendations(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQueryGraph, err)
	}
	return u.hydrate(ctx, found), nil
}

func (u *Usecase) PopularGenres(ctx context.Context, limit int64) ([]model.GenrePopularity, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	key := infra_redis_cache.PopularGenresKey(limit)
	var cached []model.GenrePopularity
	if u.cache.Load(ctx, key, &cached) {
		return cached, nil
	}

	v, err, _ := u.group.Do(key, func() (any, error) {
		ctx, cancel := u.sharedContext(ctx)
		defer cancel()

		genres, err := u.graph.PopularGenres(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToQueryGraph, err)
		}

		u.cache.Set(ctx, key, genres, infra_redis_cache.PopularGenresTTL)
		return genres, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.GenrePopularity), nil
}

func (u *Usecase) ShortestPath(ctx context.Context, fromID, toID string) (model.Path, error) {
	if fromID == "" || toID == "" {
		return model.Path{}, fmt.Errorf("%w: both movie ids are required", ErrInvalidInput)
	}
	if fromID == toID {
		return model.Path{}, fmt.Errorf("%w: path endpoints must differ", ErrInvalidInput)
	}

	path, err := u.graph.ShortestPath(ctx, fromID, toID)
	if err != nil {
		return model.Path{}, fmt.Errorf("%w: %w", ErrFailedToQueryGraph, err)
	}
	return path, nil
}

// hydrate fills graph records with the document store's current view of
// each movie. Records whose document cannot be loaded keep the graph view.
func (u *Usecase) hydrate(ctx context.Context, found []model.GraphMovie) []model.MovieRecord {
	records := make([]model.MovieRecord, 0, len(found))
	if len(found) == 0 {
		return records
	}

	ids := make([]string, 0, len(found))
	for _, g := range found {
		ids = append(ids, g.ID)
	}

	byID := map[string]model.Movie{}
	movies, err := u.movies.LoadByIDs(ctx, ids)
	if err != nil {
		u.logger.Warn("graph records left unhydrated",
			slog.Int("records", len(ids)),
			slog.String("error", err.Error()),
		)
	}
	for _, m := range movies {
		byID[m.ID] = m
	}

	for _, g := range found {
		rec := g.Record()
		if m, ok := byID[g.ID]; ok {
			doc := model.RecordFromMovie(m)
			doc.Match = rec.Match
			rec = doc
		}
		records = append(records, rec)
	}
	return records
}

// sharedContext detaches a singleflight call from the request that happened
// to start it, so one cancelled caller does not fail every waiter.
func (u *Usecase) sharedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), u.sharedTimeout)
}

func validateLimit(limit int64) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	return nil
}

func toRecords(movies []model.Movie) []model.MovieRecord {
	records := make([]model.MovieRecord, 0, len(movies))
	for _, m := range movies {
		records = append(records, model.RecordFromMovie(m))
	}
	return records
}

// wrapStore keeps not-found and invalid-input visible to callers.
func wrapStore(err error) error {
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFailedToQueryStore, err)
}
