package infra_redis_cache

import (
	"strconv"
	"strings"
	"time"
)

const (
	MovieTTL         = 30 * time.Minute
	PopularTTL       = time.Hour
	PopularGenresTTL = time.Hour
	SearchTTL        = 30 * time.Minute
	SessionTTL       = 2 * time.Hour
)

func MovieKey(id string) string {
	return "movie:" + id
}

// Listing keys carry the limit so a hit always answers the same question
// the store would.
func PopularKey(limit int64) string {
	return "popular_movies:" + strconv.FormatInt(limit, 10)
}

func PopularGenresKey(limit int64) string {
	return "popular_genres:" + strconv.FormatInt(limit, 10)
}

func SearchKey(term string, limit int64) string {
	return "search:" + strings.ToLower(term) + ":" + strconv.FormatInt(limit, 10)
}

func SessionKey(userID string) string {
	return "session:" + userID
}
