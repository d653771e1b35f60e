package infra_mongo_query

import (
	"math"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	SimilarRatingWindow = 1.0

	trendsFromYear  = 1990
	trendsToYear    = 2020
	genreStatsLimit = 10
	yearTrendsLimit = 20
	topPerDecade    = 5
)

func List(skip, limit int64) Find {
	return Find{
		Collection: Movies,
		Filter:     bson.D{},
		Sort:       bson.D{{Key: "_id", Value: 1}},
		Skip:       skip,
		Limit:      limit,
	}
}

func CountAll(collection string) Find {
	return Find{Collection: collection, Filter: bson.D{}}
}

func ByID(collection string, id primitive.ObjectID) Find {
	return Find{
		Collection: collection,
		Filter:     bson.D{{Key: "_id", Value: id}},
	}
}

func ByIDs(ids []primitive.ObjectID) Find {
	return Find{
		Collection: Movies,
		Filter:     bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}},
	}
}

// AllIDs projects the id of every movie.
func AllIDs() Find {
	return Find{
		Collection: Movies,
		Filter:     bson.D{},
		Projection: bson.D{{Key: "_id", Value: 1}},
	}
}

// SearchTitle matches the term as a literal, case-insensitive substring.
func SearchTitle(term string, limit int64) Find {
	return Find{
		Collection: Movies,
		Filter: bson.D{{Key: "title", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(term),
			Options: "i",
		}}},
		Limit: limit,
	}
}

func Popular(minReviews int, limit int64) Pipeline {
	return Pipeline{
		Collection: Movies,
		Stages: mongo.Pipeline{
			{{Key: "$match", Value: bson.D{{Key: "num_reviews", Value: bson.D{{Key: "$gte", Value: minReviews}}}}}},
			{{Key: "$sort", Value: bson.D{{Key: "avg_rating", Value: -1}, {Key: "num_reviews", Value: -1}}}},
			{{Key: "$limit", Value: limit}},
		},
	}
}

// ByGenre matches movies with a genre containing the term, ignoring case,
// so "sci" finds "Science Fiction". The term is matched literally.
func ByGenre(genre string, limit int64) Find {
	return Find{
		Collection: Movies,
		Filter: bson.D{{Key: "genres", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(genre),
			Options: "i",
		}}},
		Sort:  bson.D{{Key: "avg_rating", Value: -1}, {Key: "_id", Value: 1}},
		Limit: limit,
	}
}

// Similar finds movies sharing a genre with the target whose rating lies
// within SimilarRatingWindow of the target's. The target itself is excluded.
func Similar(id primitive.ObjectID, genres []string, rating float64, limit int64) Find {
	if genres == nil {
		genres = []string{}
	}
	return Find{
		Collection: Movies,
		Filter: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$ne", Value: id}}},
			{Key: "genres", Value: bson.D{{Key: "$in", Value: genres}}},
			{Key: "avg_rating", Value: bson.D{
				{Key: "$gte", Value: math.Max(0, rating-SimilarRatingWindow)},
				{Key: "$lte", Value: rating + SimilarRatingWindow},
			}},
		},
		Sort:  bson.D{{Key: "avg_rating", Value: -1}, {Key: "_id", Value: 1}},
		Limit: limit,
	}
}

func GenreList() Pipeline {
	return Pipeline{
		Collection: Movies,
		Stages: mongo.Pipeline{
			{{Key: "$unwind", Value: "$genres"}},
			{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$genres"}}}},
			{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		},
	}
}

func GenreStats() Pipeline {
	return Pipeline{
		Collection: Movies,
		Stages: mongo.Pipeline{
			{{Key: "$unwind", Value: "$genres"}},
			{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$genres"},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$avg_rating"}}},
				{Key: "total_reviews", Value: bson.D{{Key: "$sum", Value: "$num_reviews"}}},
				{Key: "avg_budget", Value: bson.D{{Key: "$avg", Value: "$budget"}}},
				{Key: "avg_revenue", Value: bson.D{{Key: "$avg", Value: "$revenue"}}},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
			{{Key: "$limit", Value: genreStatsLimit}},
		},
	}
}

func YearlyTrends() Pipeline {
	return Pipeline{
		Collection: Movies,
		Stages: mongo.Pipeline{
			{{Key: "$match", Value: yearRange()}},
			{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$year"},
				{Key: "movie_count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$avg_rating"}}},
				{Key: "total_budget", Value: bson.D{{Key: "$sum", Value: "$budget"}}},
				{Key: "total_revenue", Value: bson.D{{Key: "$sum", Value: "$revenue"}}},
				{Key: "avg_runtime", Value: bson.D{{Key: "$avg", Value: "$runtime"}}},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
			{{Key: "$limit", Value: yearTrendsLimit}},
		},
	}
}

// TopRatedByDecade groups movies into "1990s"-style decades and keeps the
// best rated few of each.
func TopRatedByDecade() Pipeline {
	decade := bson.D{{Key: "$concat", Value: bson.A{
		bson.D{{Key: "$toString", Value: bson.D{{Key: "$floor", Value: bson.D{{Key: "$divide", Value: bson.A{"$year", 10}}}}}}},
		"0s",
	}}}
	return Pipeline{
		Collection: Movies,
		Stages: mongo.Pipeline{
			{{Key: "$match", Value: yearRange()}},
			{{Key: "$addFields", Value: bson.D{{Key: "decade", Value: decade}}}},
			{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$decade"},
				{Key: "top_movies", Value: bson.D{{Key: "$push", Value: bson.D{
					{Key: "title", Value: "$title"},
					{Key: "year", Value: "$year"},
					{Key: "avg_rating", Value: "$avg_rating"},
					{Key: "num_reviews", Value: "$num_reviews"},
				}}}},
			}}},
			{{Key: "$addFields", Value: bson.D{{Key: "top_movies", Value: bson.D{{Key: "$slice", Value: bson.A{
				bson.D{{Key: "$sortArray", Value: bson.D{
					{Key: "input", Value: "$top_movies"},
					{Key: "sortBy", Value: bson.D{{Key: "avg_rating", Value: -1}}},
				}}},
				topPerDecade,
			}}}}}}},
			{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		},
	}
}

// FoldRating folds one new rating into the running average in a single
// update, so concurrent reviews of the same movie never lose a count.
func FoldRating(id primitive.ObjectID, rating int) Update {
	n := bson.D{{Key: "$ifNull", Value: bson.A{"$num_reviews", 0}}}
	avg := bson.D{{Key: "$ifNull", Value: bson.A{"$avg_rating", 0}}}
	return Update{
		Collection: Movies,
		Filter:     bson.D{{Key: "_id", Value: id}},
		Change: mongo.Pipeline{
			{{Key: "$set", Value: bson.D{
				{Key: "avg_rating", Value: bson.D{{Key: "$divide", Value: bson.A{
					bson.D{{Key: "$add", Value: bson.A{
						bson.D{{Key: "$multiply", Value: bson.A{avg, n}}},
						rating,
					}}},
					bson.D{{Key: "$add", Value: bson.A{n, 1}}},
				}}}},
				{Key: "num_reviews", Value: bson.D{{Key: "$add", Value: bson.A{n, 1}}}},
			}}},
		},
	}
}

func SetRatingStats(id primitive.ObjectID, avg float64, count int) Update {
	return Update{
		Collection: Movies,
		Filter:     bson.D{{Key: "_id", Value: id}},
		Change: bson.D{{Key: "$set", Value: bson.D{
			{Key: "avg_rating", Value: avg},
			{Key: "num_reviews", Value: count},
		}}},
	}
}

func yearRange() bson.D {
	return bson.D{{Key: "year", Value: bson.D{
		{Key: "$gte", Value: trendsFromYear},
		{Key: "$lte", Value: trendsToYear},
	}}}
}
