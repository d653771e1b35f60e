package infra_mongo_query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewsFor filters by movie and/or user. Empty ids are not filtered on.
func ReviewsFor(movieID, userID string, skip, limit int64) Find {
	filter := bson.D{}
	if movieID != "" {
		filter = append(filter, bson.E{Key: "movie_id", Value: movieID})
	}
	if userID != "" {
		filter = append(filter, bson.E{Key: "user_id", Value: userID})
	}
	return Find{
		Collection: Reviews,
		Filter:     filter,
		Sort:       bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}},
		Skip:       skip,
		Limit:      limit,
	}
}

// RatingStats recomputes average rating and count per movie from reviews.
func RatingStats() Pipeline {
	return Pipeline{
		Collection: Reviews,
		Stages: mongo.Pipeline{
			{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$movie_id"},
				{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
				{Key: "num_reviews", Value: bson.D{{Key: "$sum", Value: 1}}},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		},
	}
}
