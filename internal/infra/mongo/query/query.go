package infra_mongo_query

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	Movies  = "movies"
	Users   = "users"
	Reviews = "reviews"
)

var ErrInvalidQuery = errors.New("invalid query")

// Find is a filtered, sorted and paged read of one collection.
type Find struct {
	Collection string `validate:"required,oneof=movies users reviews"`
	Filter     bson.D `validate:"required"`
	Sort       bson.D
	Projection bson.D
	Skip       int64              `validate:"gte=0"`
	Limit      int64              `validate:"gte=0"`
	Collation  *options.Collation `validate:"-"`
}

type Pipeline struct {
	Collection string         `validate:"required,oneof=movies users reviews"`
	Stages     mongo.Pipeline `validate:"required,min=1"`
}

type Update struct {
	Collection string `validate:"required,oneof=movies users reviews"`
	Filter     bson.D `validate:"required,min=1"`
	Change     any    `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Validate(q any) error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return nil
}

func (f Find) Options() *options.FindOptions {
	opts := options.Find()
	if len(f.Sort) > 0 {
		opts.SetSort(f.Sort)
	}
	if len(f.Projection) > 0 {
		opts.SetProjection(f.Projection)
	}
	if f.Skip > 0 {
		opts.SetSkip(f.Skip)
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	if f.Collation != nil {
		opts.SetCollation(f.Collation)
	}
	return opts
}

func (f Find) OneOptions() *options.FindOneOptions {
	opts := options.FindOne()
	if len(f.Sort) > 0 {
		opts.SetSort(f.Sort)
	}
	if len(f.Projection) > 0 {
		opts.SetProjection(f.Projection)
	}
	if f.Collation != nil {
		opts.SetCollation(f.Collation)
	}
	return opts
}

// CaseInsensitive compares strings ignoring case and diacritics.
func CaseInsensitive() *options.Collation {
	return &options.Collation{Locale: "en", Strength: 2}
}
