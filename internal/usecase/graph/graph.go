package usecase_graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/humanbelnik/cinemate/internal/metrics"
	"github.com/humanbelnik/cinemate/internal/model"
)

var (
	ErrInvalidInput      = model.ErrInvalidInput
	ErrFailedToWrite     = errors.New("failed to write graph")
	ErrFailedToResync    = errors.New("failed to resync graph")
	ErrFailedToLoadMovie = errors.New("failed to load movies for resync")
)

const ResyncBatch int64 = 200

type Writer interface {
	UpsertMovie(ctx context.Context, m model.GraphMovie) error
	UpsertGenres(ctx context.Context, movieID string, genres []string) error
	UpsertUser(ctx context.Context, id, username string) error
	UpsertRating(ctx context.Context, userID, movieID string, rating float64) error
}

type MovieRepository interface {
	Load(ctx context.Context, skip, limit int64) ([]model.Movie, error)
	SetRatingStats(ctx context.Context, stats model.RatingStats) error
}

type ReviewRepository interface {
	RatingStats(ctx context.Context) ([]model.RatingStats, error)
}

// Usecase keeps the graph store in step with the document store. The Sync
// hooks are best-effort write-through: a failure is logged and counted, and
// Resync is the repair path.
type Usecase struct {
	graph   Writer
	movies  MovieRepository
	reviews ReviewRepository
	logger  *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	graph Writer,
	movies MovieRepository,
	reviews ReviewRepository,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		graph:   graph,
		movies:  movies,
		reviews: reviews,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) SyncMovie(ctx context.Context, m model.Movie) {
	if err := u.writeMovie(ctx, m); err != nil {
		u.syncFailed("movie", m.ID, err)
	}
}

func (u *Usecase) SyncUser(ctx context.Context, user model.User) {
	if err := u.graph.UpsertUser(ctx, user.ID, user.Username); err != nil {
		u.syncFailed("user", user.ID, err)
	}
}

// SyncRating refreshes the movie's aggregate on the graph side and records
// the user's rating edge.
func (u *Usecase) SyncRating(ctx context.Context, userID string, m model.Movie, rating int) {
	if err := u.graph.UpsertMovie(ctx, graphMovie(m)); err != nil {
		u.syncFailed("movie", m.ID, err)
	}
	if err := u.graph.UpsertRating(ctx, userID, m.ID, float64(rating)); err != nil {
		u.syncFailed("rating", m.ID, err)
	}
}

func (u *Usecase) AddMovie(ctx context.Context, m model.GraphMovie) error {
	m.ID = strings.TrimSpace(m.ID)
	if m.ID == "" {
		return fmt.Errorf("%w: movie id is required", ErrInvalidInput)
	}
	if m.NumReviews < 0 || m.AvgRating < 0 {
		return fmt.Errorf("%w: rating aggregates cannot be negative", ErrInvalidInput)
	}

	if err := u.graph.UpsertMovie(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	return nil
}

func (u *Usecase) LinkGenres(ctx context.Context, movieID string, genres []string) error {
	if strings.TrimSpace(movieID) == "" {
		return fmt.Errorf("%w: movie id is required", ErrInvalidInput)
	}
	clean := compact(genres)
	if len(clean) == 0 {
		return fmt.Errorf("%w: at least one genre is required", ErrInvalidInput)
	}

	if err := u.graph.UpsertGenres(ctx, movieID, clean); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	return nil
}

func (u *Usecase) AddUser(ctx context.Context, id, username string) error {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: user id and username are required", ErrInvalidInput)
	}

	if err := u.graph.UpsertUser(ctx, id, username); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	return nil
}

func (u *Usecase) AddRating(ctx context.Context, userID, movieID string, rating int) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(movieID) == "" {
		return fmt.Errorf("%w: user id and movie id are required", ErrInvalidInput)
	}
	if rating < model.MinRating || rating > model.MaxRating {
		return fmt.Errorf("%w: rating must be in [%d, %d]", ErrInvalidInput, model.MinRating, model.MaxRating)
	}

	if err := u.graph.UpsertRating(ctx, userID, movieID, float64(rating)); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	return nil
}

type ResyncReport struct {
	Movies       int `json:"movies"`
	Failed       int `json:"failed"`
	StatsUpdated int `json:"stats_updated"`
}

// Resync rebuilds rating aggregates from reviews when recompute is set, then
// pushes every movie and its genres into the graph. A movie that fails to
// sync is counted and skipped.
func (u *Usecase) Resync(ctx context.Context, recompute bool) (ResyncReport, error) {
	var report ResyncReport

	if recompute {
		n, err := u.recomputeStats(ctx)
		if err != nil {
			return report, err
		}
		report.StatsUpdated = n
	}

	for skip := int64(0); ; skip += ResyncBatch {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%w: %w", ErrFailedToResync, err)
		}

		batch, err := u.movies.Load(ctx, skip, ResyncBatch)
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrFailedToLoadMovie, err)
		}

		for _, m := range batch {
			if err := u.writeMovie(ctx, m); err != nil {
				report.Failed++
				u.syncFailed("movie", m.ID, err)
				continue
			}
			report.Movies++
		}

		if int64(len(batch)) < ResyncBatch {
			break
		}
	}

	u.logger.Info("graph resync finished",
		slog.Int("movies", report.Movies),
		slog.Int("failed", report.Failed),
		slog.Int("stats_updated", report.StatsUpdated),
	)
	return report, nil
}

func (u *Usecase) recomputeStats(ctx context.Context) (int, error) {
	stats, err := u.reviews.RatingStats(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToResync, err)
	}

	updated := 0
	for _, st := range stats {
		if err := u.movies.SetRatingStats(ctx, st); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				u.logger.Warn("reviews reference a missing movie", slog.String("movie_id", st.MovieID))
				continue
			}
			return updated, fmt.Errorf("%w: %w", ErrFailedToResync, err)
		}
		updated++
	}
	return updated, nil
}

func (u *Usecase) writeMovie(ctx context.Context, m model.Movie) error {
	if err := u.graph.UpsertMovie(ctx, graphMovie(m)); err != nil {
		return err
	}
	genres := compact(m.Genres)
	if len(genres) == 0 {
		return nil
	}
	return u.graph.UpsertGenres(ctx, m.ID, genres)
}

func (u *Usecase) syncFailed(entity, id string, err error) {
	metrics.GraphSyncFailures.WithLabelValues(entity).Inc()
	u.logger.Warn("graph sync failed",
		slog.String("entity", entity),
		slog.String("id", id),
		slog.Any("error", err),
	)
}

func graphMovie(m model.Movie) model.GraphMovie {
	return model.GraphMovie{
		ID:         m.ID,
		Title:      m.Title,
		Year:       m.Year,
		AvgRating:  m.AvgRating,
		NumReviews: m.NumReviews,
	}
}

func compact(genres []string) []string {
	out := make([]string, 0, len(genres))
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
