//go:build !integration
// +build !integration

package infra_mongo_query

import (
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QueryUnitSuite struct {
	suite.Suite
}

func lookup(d bson.D, key string) any {
	for _, e := range d {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

func (s *QueryUnitSuite) TestValidate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		query       any
		expectError bool
	}{
		{name: "list is valid", query: List(0, 10)},
		{name: "popular is valid", query: Popular(100, 10)},
		{name: "fold rating is valid", query: FoldRating(primitive.NewObjectID(), 4)},
		{name: "unknown collection", query: Find{Collection: "posters", Filter: bson.D{}}, expectError: true},
		{name: "missing filter", query: Find{Collection: Movies}, expectError: true},
		{name: "negative skip", query: List(-1, 10), expectError: true},
		{name: "empty pipeline", query: Pipeline{Collection: Movies}, expectError: true},
		{name: "update without filter", query: Update{Collection: Movies, Filter: bson.D{}, Change: bson.D{}}, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			err := Validate(tc.query)
			if tc.expectError {
				assert.True(t, errors.Is(err, ErrInvalidQuery))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func (s *QueryUnitSuite) TestSimilarWindow(t provider.T) {
	t.Parallel()

	id := primitive.NewObjectID()

	testCases := []struct {
		name   string
		rating float64
		lower  float64
		upper  float64
	}{
		{name: "window around mid rating", rating: 7.5, lower: 6.5, upper: 8.5},
		{name: "lower bound clamped at zero", rating: 0.4, lower: 0, upper: 1.4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			q := Similar(id, []string{"Drama"}, tc.rating, 5)

			assert.Equal(t, bson.D{{Key: "$ne", Value: id}}, lookup(q.Filter, "_id"))
			assert.Equal(t, bson.D{{Key: "$in", Value: []string{"Drama"}}}, lookup(q.Filter, "genres"))

			window := lookup(q.Filter, "avg_rating").(bson.D)
			assert.InDelta(t, tc.lower, window[0].Value.(float64), 1e-9)
			assert.InDelta(t, tc.upper, window[1].Value.(float64), 1e-9)
			assert.Equal(t, int64(5), q.Limit)
			assert.Equal(t, "avg_rating", q.Sort[0].Key)
			assert.Equal(t, -1, q.Sort[0].Value)
		})
	}
}

func (s *QueryUnitSuite) TestSearchTitleIsLiteral(t provider.T) {
	t.Parallel()

	q := SearchTitle("Mad Max: Fury Road (2015)", 10)
	re := lookup(q.Filter, "title").(primitive.Regex)

	assert.Equal(t, `Mad Max: Fury Road \(2015\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func (s *QueryUnitSuite) TestByGenreSubstring(t provider.T) {
	t.Parallel()

	q := ByGenre("Sci", 10)
	re := lookup(q.Filter, "genres").(primitive.Regex)

	assert.Equal(t, `Sci`, re.Pattern)
	assert.Equal(t, "i", re.Options)
	assert.Regexp(t, "(?i)"+re.Pattern, "Science Fiction")

	literal := lookup(ByGenre("Sci.Fi (new)", 10).Filter, "genres").(primitive.Regex)
	assert.Equal(t, `Sci\.Fi \(new\)`, literal.Pattern)
	assert.NotRegexp(t, "(?i)"+literal.Pattern, "SciXFi (new)")
}

func (s *QueryUnitSuite) TestPopularStages(t provider.T) {
	t.Parallel()

	q := Popular(100, 7)
	assert.Len(t, q.Stages, 3)

	match := lookup(q.Stages[0], "$match").(bson.D)
	assert.Equal(t, bson.D{{Key: "$gte", Value: 100}}, lookup(match, "num_reviews"))

	sort := lookup(q.Stages[1], "$sort").(bson.D)
	assert.Equal(t, bson.D{{Key: "avg_rating", Value: -1}, {Key: "num_reviews", Value: -1}}, sort)
	assert.Equal(t, int64(7), lookup(q.Stages[2], "$limit"))
}

func (s *QueryUnitSuite) TestReviewsForFilters(t provider.T) {
	t.Parallel()

	assert.Empty(t, ReviewsFor("", "", 0, 0).Filter)
	assert.Equal(t, "m1", lookup(ReviewsFor("m1", "", 0, 0).Filter, "movie_id"))

	both := ReviewsFor("m1", "u1", 0, 0).Filter
	assert.Equal(t, "m1", lookup(both, "movie_id"))
	assert.Equal(t, "u1", lookup(both, "user_id"))
}

func (s *QueryUnitSuite) TestUsersPublicHidesHash(t provider.T) {
	t.Parallel()

	q := UsersPublic(0, 0)
	assert.Equal(t, 0, lookup(q.Projection, "password_hash"))
}

func TestQueryUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(QueryUnitSuite))
}
