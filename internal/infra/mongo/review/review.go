package infra_mongo_review

import (
	"context"
	"fmt"
	"time"

	query "github.com/humanbelnik/cinemate/internal/infra/mongo/query"
	store "github.com/humanbelnik/cinemate/internal/infra/mongo/store"
	"github.com/humanbelnik/cinemate/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewDB struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	MovieID   string             `bson:"movie_id"`
	Rating    int                `bson:"rating"`
	Text      string             `bson:"review,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *ReviewDB) ToDomain() model.Review {
	return model.Review{
		ID:        r.ID.Hex(),
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

func FromDomain(r model.Review) ReviewDB {
	return ReviewDB{
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

type ratingStatsDB struct {
	MovieID    string  `bson:"_id"`
	AvgRating  float64 `bson:"avg_rating"`
	NumReviews int     `bson:"num_reviews"`
}

type Repository struct {
	store *store.Store
}

func New(s *store.Store) *Repository {
	return &Repository{store: s}
}

// Store inserts the review. A second review by the same user of the same
// movie is rejected by the unique index with model.ErrConflict.
func (r *Repository) Store(ctx context.Context, review model.Review) (string, error) {
	id, err := r.store.InsertOne(ctx, query.Reviews, FromDomain(review))
	if err != nil {
		return "", fmt.Errorf("failed to store review: %w", err)
	}
	return id, nil
}

func (r *Repository) List(ctx context.Context, f model.ReviewFilter) ([]model.Review, error) {
	var docs []ReviewDB
	if err := r.store.Find(ctx, query.ReviewsFor(f.MovieID, f.UserID, f.Skip, f.Limit), &docs); err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	reviews := make([]model.Review, 0, len(docs))
	for i := range docs {
		reviews = append(reviews, docs[i].ToDomain())
	}
	return reviews, nil
}

func (r *Repository) RatingStats(ctx context.Context) ([]model.RatingStats, error) {
	var docs []ratingStatsDB
	if err := r.store.Aggregate(ctx, query.RatingStats(), &docs); err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	stats := make([]model.RatingStats, 0, len(docs))
	for _, d := range docs {
		stats = append(stats, model.RatingStats{
			MovieID:    d.MovieID,
			AvgRating:  d.AvgRating,
			NumReviews: d.NumReviews,
		})
	}
	return stats, nil
}
