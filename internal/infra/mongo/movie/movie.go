package infra_mongo_movie

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	query "github.com/humanbelnik/cinemate/internal/infra/mongo/query"
	store "github.com/humanbelnik/cinemate/internal/infra/mongo/store"
	"github.com/humanbelnik/cinemate/internal/model"
)

type Repository struct {
	store *store.Store
}

func New(s *store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) Store(ctx context.Context, m model.Movie) (string, error) {
	id, err := r.store.InsertOne(ctx, query.Movies, FromDomain(m))
	if err != nil {
		return "", fmt.Errorf("failed to store movie: %w", err)
	}
	return id, nil
}

func (r *Repository) StoreMany(ctx context.Context, mm []model.Movie) ([]string, error) {
	docs := make([]any, 0, len(mm))
	for _, m := range mm {
		docs = append(docs, FromDomain(m))
	}

	ids, err := r.store.InsertMany(ctx, query.Movies, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to store movies: %w", err)
	}
	return ids, nil
}

func (r *Repository) Load(ctx context.Context, skip, limit int64) ([]model.Movie, error) {
	return r.find(ctx, query.List(skip, limit))
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	n, err := r.store.Count(ctx, query.CountAll(query.Movies))
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}

func (r *Repository) LoadByID(ctx context.Context, id string) (model.Movie, error) {
	oid, err := store.ObjectID(id)
	if err != nil {
		return model.Movie{}, err
	}

	var movieDB MovieDB
	if err := r.store.FindOne(ctx, query.ByID(query.Movies, oid), &movieDB); err != nil {
		return model.Movie{}, fmt.Errorf("failed to load movie %s: %w", id, err)
	}
	return movieDB.ToDomain(), nil
}

// LoadByIDs returns the movies in the order of ids. Unknown ids are skipped.
func (r *Repository) LoadByIDs(ctx context.Context, ids []string) ([]model.Movie, error) {
	if len(ids) == 0 {
		return []model.Movie{}, nil
	}

	// An id that is not an object id names no document; it is absent, not an error.
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := store.ObjectID(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []model.Movie{}, nil
	}

	found, err := r.find(ctx, query.ByIDs(oids))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Movie, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	movies := make([]model.Movie, 0, len(found))
	for _, id := range ids {
		if m, ok := byID[model.CanonicalID(id)]; ok {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

func (r *Repository) IDs(ctx context.Context) ([]string, error) {
	var docs []idDB
	if err := r.store.Find(ctx, query.AllIDs(), &docs); err != nil {
		return nil, fmt.Errorf("failed to load movie ids: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID.Hex())
	}
	return ids, nil
}

func (r *Repository) Search(ctx context.Context, term string, limit int64) ([]model.Movie, error) {
	return r.find(ctx, query.SearchTitle(term, limit))
}

func (r *Repository) Popular(ctx context.Context, minReviews int, limit int64) ([]model.Movie, error) {
	var docs []MovieDB
	if err := r.store.Aggregate(ctx, query.Popular(minReviews, limit), &docs); err != nil {
		return nil, fmt.Errorf("failed to load popular movies: %w", err)
	}
	return toDomain(docs), nil
}

func (r *Repository) ByGenre(ctx context.Context, genre string, limit int64) ([]model.Movie, error) {
	return r.find(ctx, query.ByGenre(genre, limit))
}

func (r *Repository) Similar(ctx context.Context, target model.Movie, limit int64) ([]model.Movie, error) {
	oid, err := store.ObjectID(target.ID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, query.Similar(oid, target.Genres, target.AvgRating, limit))
}

func (r *Repository) Genres(ctx context.Context) ([]string, error) {
	var docs []genreDB
	if err := r.store.Aggregate(ctx, query.GenreList(), &docs); err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}

	genres := make([]string, 0, len(docs))
	for _, g := range docs {
		if g.Name != "" {
			genres = append(genres, g.Name)
		}
	}
	return genres, nil
}

func (r *Repository) GenreStats(ctx context.Context) ([]model.GenreStats, error) {
	var docs []genreStatsDB
	if err := r.store.Aggregate(ctx, query.GenreStats(), &docs); err != nil {
		return nil, fmt.Errorf("failed to aggregate genre stats: %w", err)
	}

	stats := make([]model.GenreStats, 0, len(docs))
	for _, d := range docs {
		stats = append(stats, d.ToDomain())
	}
	return stats, nil
}

func (r *Repository) YearlyTrends(ctx context.Context) ([]model.YearTrend, error) {
	var docs []yearTrendDB
	if err := r.store.Aggregate(ctx, query.YearlyTrends(), &docs); err != nil {
		return nil, fmt.Errorf("failed to aggregate yearly trends: %w", err)
	}

	trends := make([]model.YearTrend, 0, len(docs))
	for _, d := range docs {
		trends = append(trends, d.ToDomain())
	}
	return trends, nil
}

func (r *Repository) TopRatedByDecade(ctx context.Context) ([]model.DecadeTop, error) {
	var docs []decadeTopDB
	if err := r.store.Aggregate(ctx, query.TopRatedByDecade(), &docs); err != nil {
		return nil, fmt.Errorf("failed to aggregate top rated movies: %w", err)
	}

	decades := make([]model.DecadeTop, 0, len(docs))
	for _, d := range docs {
		decades = append(decades, d.ToDomain())
	}
	return decades, nil
}

func (r *Repository) FoldRating(ctx context.Context, id string, rating int) error {
	oid, err := store.ObjectID(id)
	if err != nil {
		return err
	}
	if err := r.store.UpdateOne(ctx, query.FoldRating(oid, rating)); err != nil {
		return fmt.Errorf("failed to fold rating into movie %s: %w", id, err)
	}
	return nil
}

func (r *Repository) SetRatingStats(ctx context.Context, stats model.RatingStats) error {
	oid, err := store.ObjectID(stats.MovieID)
	if err != nil {
		return err
	}
	if err := r.store.UpdateOne(ctx, query.SetRatingStats(oid, stats.AvgRating, stats.NumReviews)); err != nil {
		return fmt.Errorf("failed to set rating stats of movie %s: %w", stats.MovieID, err)
	}
	return nil
}

func (r *Repository) find(ctx context.Context, q query.Find) ([]model.Movie, error) {
	var docs []MovieDB
	if err := r.store.Find(ctx, q, &docs); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	return toDomain(docs), nil
}

func toDomain(docs []MovieDB) []model.Movie {
	movies := make([]model.Movie, 0, len(docs))
	for i := range docs {
		movies = append(movies, docs[i].ToDomain())
	}
	return movies
}
