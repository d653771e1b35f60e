package usecase_review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	infra_redis_cache "github.com/humanbelnik/cinemate/internal/infra/redis/cache"
	"github.com/humanbelnik/cinemate/internal/model"
)

var (
	ErrInvalidInput         = model.ErrInvalidInput
	ErrAlreadyReviewed      = errors.New("user already reviewed this movie")
	ErrFailedToStoreReview  = errors.New("failed to store review")
	ErrFailedToLoadReviews  = errors.New("failed to load reviews")
	ErrFailedToUpdateRating = errors.New("failed to update movie rating")
)

type Repository interface {
	Store(ctx context.Context, r model.Review) (string, error)
	List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error)
}

type MovieRepository interface {
	LoadByID(ctx context.Context, id string) (model.Movie, error)
	FoldRating(ctx context.Context, id string, rating int) error
}

type Cache interface {
	Delete(ctx context.Context, key string) bool
}

type GraphSync interface {
	SyncRating(ctx context.Context, userID string, m model.Movie, rating int)
}

type Usecase struct {
	reviews   Repository
	movies    MovieRepository
	cache     Cache
	graphSync GraphSync

	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	reviews Repository,
	movies MovieRepository,
	cache Cache,
	graphSync GraphSync,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		reviews:   reviews,
		movies:    movies,
		cache:     cache,
		graphSync: graphSync,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Add stores a review and folds its rating into the movie's aggregate.
// One review per user and movie is enforced by the store itself.
func (u *Usecase) Add(ctx context.Context, r model.Review) (model.Review, error) {
	r.UserID = model.CanonicalID(r.UserID)
	r.MovieID = model.CanonicalID(r.MovieID)
	if r.UserID == "" || r.MovieID == "" {
		return model.Review{}, fmt.Errorf("%w: user_id and movie_id are required", ErrInvalidInput)
	}
	if r.Rating < model.MinRating || r.Rating > model.MaxRating {
		return model.Review{}, fmt.Errorf("%w: rating must be in [%d, %d]", ErrInvalidInput, model.MinRating, model.MaxRating)
	}

	movie, err := u.movies.LoadByID(ctx, r.MovieID)
	if err != nil {
		return model.Review{}, fmt.Errorf("%w: %w", ErrFailedToStoreReview, err)
	}
	// The unique index compares raw strings, so reviews carry the stored id.
	if movie.ID != "" {
		r.MovieID = movie.ID
	}

	r.CreatedAt = u.now().UTC()
	id, err := u.reviews.Store(ctx, r)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.Review{}, fmt.Errorf("%w: %w", ErrAlreadyReviewed, err)
		}
		return model.Review{}, fmt.Errorf("%w: %w", ErrFailedToStoreReview, err)
	}
	r.ID = id

	if err := u.movies.FoldRating(ctx, r.MovieID, r.Rating); err != nil {
		// The review is kept; resync with recompute repairs the aggregate.
		u.logger.Error("review stored but rating not folded",
			slog.String("review_id", id),
			slog.String("movie_id", r.MovieID),
			slog.String("error", err.Error()),
		)
		return model.Review{}, fmt.Errorf("%w: %w", ErrFailedToUpdateRating, err)
	}
	u.cache.Delete(ctx, infra_redis_cache.MovieKey(r.MovieID))

	if fresh, err := u.movies.LoadByID(ctx, r.MovieID); err == nil {
		movie = fresh
	}
	u.graphSync.SyncRating(ctx, r.UserID, movie, r.Rating)

	return r, nil
}

func (u *Usecase) List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error) {
	if f.Skip < 0 || f.Limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit cannot be negative", ErrInvalidInput)
	}
	f.MovieID = model.CanonicalID(f.MovieID)
	f.UserID = model.CanonicalID(f.UserID)

	reviews, err := u.reviews.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadReviews, err)
	}
	return reviews, nil
}
