package infra_neo4j_graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/humanbelnik/cinemate/internal/metrics"
	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	breakerName = "neo4j"

	// Seeds of user recommendations are the movies the user rated at least this.
	MinSeedRating = 4.0

	defaultTimeout = 5 * time.Second
)

var ErrSameMovie = errors.New("path endpoints must differ")

// Store is the graph side of the system. Each call opens a session, runs one
// managed transaction and closes the session. Calls fail fast with
// model.ErrStore while the breaker is open.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
	cb       *gobreaker.CircuitBreaker[any]

	logger *slog.Logger
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithDatabase(name string) Option {
	return func(s *Store) {
		s.database = name
	}
}

func New(driver neo4j.DriverWithContext, timeout time.Duration, opts ...Option) *Store {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	s := &Store{
		driver:  driver,
		timeout: timeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	s.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return s
}

func (s *Store) UpsertMovie(ctx context.Context, m model.GraphMovie) error {
	return s.write(ctx, upsertMovieCypher, map[string]any{
		"id":          m.ID,
		"title":       m.Title,
		"year":        int64(m.Year),
		"avg_rating":  m.AvgRating,
		"num_reviews": int64(m.NumReviews),
	})
}

func (s *Store) UpsertGenres(ctx context.Context, movieID string, genres []string) error {
	return s.write(ctx, upsertGenresCypher, map[string]any{
		"id":     movieID,
		"genres": genres,
	})
}

func (s *Store) UpsertUser(ctx context.Context, id, username string) error {
	return s.write(ctx, upsertUserCypher, map[string]any{
		"id":       id,
		"username": username,
	})
}

func (s *Store) UpsertRating(ctx context.Context, userID, movieID string, rating float64) error {
	return s.write(ctx, upsertRatingCypher, map[string]any{
		"user_id":  userID,
		"movie_id": movieID,
		"rating":   rating,
	})
}

// SimilarMovies ranks movies sharing at least one genre with the target by
// shared genre count, then by rating.
func (s *Store) SimilarMovies(ctx context.Context, movieID string, limit int64) ([]model.GraphMovie, error) {
	records, err := s.read(ctx, similarMoviesCypher, map[string]any{
		"id":    movieID,
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	movies := make([]model.GraphMovie, 0, len(records))
	for _, rec := range records {
		movies = append(movies, toGraphMovie(rec))
	}
	return movies, nil
}

// UserRecommendations ranks unrated movies sharing genres with the movies
// the user rated at least MinSeedRating.
func (s *Store) UserRecommendations(ctx context.Context, userID string, limit int64) ([]model.GraphMovie, error) {
	records, err := s.read(ctx, userRecommendationsCypher, map[string]any{
		"id":         userID,
		"min_rating": MinSeedRating,
		"limit":      limit,
	})
	if err != nil {
		return nil, err
	}

	movies := make([]model.GraphMovie, 0, len(records))
	for _, rec := range records {
		movies = append(movies, toGraphMovie(rec))
	}
	return movies, nil
}

func (s *Store) PopularGenres(ctx context.Context, limit int64) ([]model.GenrePopularity, error) {
	records, err := s.read(ctx, popularGenresCypher, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	genres := make([]model.GenrePopularity, 0, len(records))
	for _, rec := range records {
		genres = append(genres, toGenrePopularity(rec))
	}
	return genres, nil
}

// ShortestPath walks genre membership edges in either direction. Movies that
// are not connected, or unknown, give an empty path.
func (s *Store) ShortestPath(ctx context.Context, fromID, toID string) (model.Path, error) {
	if fromID == toID {
		return model.Path{}, fmt.Errorf("%w: %w", model.ErrInvalidInput, ErrSameMovie)
	}

	records, err := s.read(ctx, shortestPathCypher, map[string]any{
		"from": fromID,
		"to":   toID,
	})
	if err != nil {
		return model.Path{}, err
	}
	if len(records) == 0 {
		return emptyPath(), nil
	}

	path, err := toPath(records[0])
	if err != nil {
		return model.Path{}, fmt.Errorf("%w: %w", model.ErrStore, err)
	}
	return path, nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("neo4j ping: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *Store) write(ctx context.Context, cypher string, params map[string]any) error {
	_, err := s.execute(ctx, neo4j.AccessModeWrite, cypher, params)
	return err
}

func (s *Store) read(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	return s.execute(ctx, neo4j.AccessModeRead, cypher, params)
}

func (s *Store) execute(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	res, err := s.cb.Execute(func() (any, error) {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		session := s.driver.NewSession(ctx, neo4j.SessionConfig{
			AccessMode:   mode,
			DatabaseName: s.database,
		})
		defer session.Close(ctx)

		work := func(tx neo4j.ManagedTransaction) (any, error) {
			result, err := tx.Run(ctx, cypher, params)
			if err != nil {
				return nil, err
			}
			return result.Collect(ctx)
		}

		if mode == neo4j.AccessModeWrite {
			return session.ExecuteWrite(ctx, work, neo4j.WithTxTimeout(s.timeout))
		}
		return session.ExecuteRead(ctx, work, neo4j.WithTxTimeout(s.timeout))
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues(breakerName).Inc()
		return nil, fmt.Errorf("%w: graph: %w", model.ErrStore, err)
	}

	records, _ := res.([]*neo4j.Record)
	return records, nil
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
