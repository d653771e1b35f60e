package infra_mongo_query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsersPublic lists users without their password hashes.
func UsersPublic(skip, limit int64) Find {
	return Find{
		Collection: Users,
		Filter:     bson.D{},
		Sort:       bson.D{{Key: "_id", Value: 1}},
		Projection: bson.D{{Key: "password_hash", Value: 0}},
		Skip:       skip,
		Limit:      limit,
	}
}

func UserByUsername(username string) Find {
	return Find{
		Collection: Users,
		Filter:     bson.D{{Key: "username", Value: username}},
		Collation:  CaseInsensitive(),
	}
}

func AddBookmark(userID primitive.ObjectID, movieID string) Update {
	return Update{
		Collection: Users,
		Filter:     bson.D{{Key: "_id", Value: userID}},
		Change: bson.D{{Key: "$addToSet", Value: bson.D{
			{Key: "bookmarks", Value: movieID},
		}}},
	}
}
