package infra_mongo_store

import (
	"context"
	"errors"
	"fmt"
	"time"

	query "github.com/humanbelnik/cinemate/internal/infra/mongo/query"
	"github.com/humanbelnik/cinemate/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultTimeout = 5 * time.Second

// Store runs validated queries against one database. Every call is bounded
// by the store timeout.
type Store struct {
	db      *mongo.Database
	timeout time.Duration
}

func New(db *mongo.Database, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Store{
		db:      db,
		timeout: timeout,
	}
}

func (s *Store) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", wrap("insert into "+collection, err)
	}
	return Hex(res.InsertedID), nil
}

func (s *Store) InsertMany(ctx context.Context, collection string, docs []any) ([]string, error) {
	if len(docs) == 0 {
		return []string{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return nil, wrap("insert many into "+collection, err)
	}

	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, Hex(id))
	}
	return ids, nil
}

// FindOne decodes the first match into dst. No match is model.ErrNotFound.
func (s *Store) FindOne(ctx context.Context, q query.Find, dst any) error {
	if err := query.Validate(q); err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.Collection(q.Collection).FindOne(ctx, q.Filter, q.OneOptions()).Decode(dst)
	if err != nil {
		return wrap("find one in "+q.Collection, err)
	}
	return nil
}

// Find decodes every match into dst, which must be a pointer to a slice.
func (s *Store) Find(ctx context.Context, q query.Find, dst any) error {
	if err := query.Validate(q); err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.db.Collection(q.Collection).Find(ctx, q.Filter, q.Options())
	if err != nil {
		return wrap("find in "+q.Collection, err)
	}
	if err := cur.All(ctx, dst); err != nil {
		return wrap("decode "+q.Collection, err)
	}
	return nil
}

func (s *Store) Count(ctx context.Context, q query.Find) (int64, error) {
	if err := query.Validate(q); err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.db.Collection(q.Collection).CountDocuments(ctx, q.Filter)
	if err != nil {
		return 0, wrap("count "+q.Collection, err)
	}
	return n, nil
}

// UpdateOne applies the change to the first match. A filter matching nothing
// is model.ErrNotFound.
func (s *Store) UpdateOne(ctx context.Context, q query.Update) error {
	if err := query.Validate(q); err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.Collection(q.Collection).UpdateOne(ctx, q.Filter, q.Change)
	if err != nil {
		return wrap("update "+q.Collection, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) Aggregate(ctx context.Context, p query.Pipeline, dst any) error {
	if err := query.Validate(p); err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.db.Collection(p.Collection).Aggregate(ctx, p.Stages)
	if err != nil {
		return wrap("aggregate "+p.Collection, err)
	}
	if err := cur.All(ctx, dst); err != nil {
		return wrap("decode "+p.Collection, err)
	}
	return nil
}

func wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return model.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %s: %w", model.ErrDuplicateKey, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", model.ErrStore, op, err)
	}
}

// ObjectID parses a hex id coming from a caller.
func ObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", model.ErrInvalidInput, hex)
	}
	return id, nil
}

func Hex(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(v)
	}
}
