package infra_mongo_store

import (
	"context"
	"fmt"

	query "github.com/humanbelnik/cinemate/internal/infra/mongo/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes uniqueness relies on. It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	reviews := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "movie_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_movie"),
		},
		{
			Keys: bson.D{{Key: "movie_id", Value: 1}},
		},
	}

	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: uniqueFolded("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: uniqueFolded("uniq_email"),
		},
	}

	movies := []mongo.IndexModel{
		{Keys: bson.D{{Key: "genres", Value: 1}}},
		{Keys: bson.D{{Key: "avg_rating", Value: -1}, {Key: "num_reviews", Value: -1}}},
	}

	for collection, models := range map[string][]mongo.IndexModel{
		query.Reviews: reviews,
		query.Users:   users,
		query.Movies:  movies,
	} {
		if err := s.createIndexes(ctx, collection, models); err != nil {
			return err
		}
	}
	return nil
}

// uniqueFolded makes "Alice" and "alice" collide.
func uniqueFolded(name string) *options.IndexOptions {
	return options.Index().SetUnique(true).SetName(name).SetCollation(query.CaseInsensitive())
}

func (s *Store) createIndexes(ctx context.Context, collection string, models []mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
		return wrap("create indexes on "+collection, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.db.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}
