package model

const EmptyTitle string = ""

// Movie is a catalog entry. AvgRating and NumReviews are derived from reviews
// and only change through the review write path.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Genres      []string `json:"genres"`
	Description string   `json:"description,omitempty"`
	Director    string   `json:"director,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Tagline     string   `json:"tagline,omitempty"`
	AvgRating   float64  `json:"avg_rating"`
	NumReviews  int      `json:"num_reviews"`
	Popularity  float64  `json:"popularity,omitempty"`
	Budget      int64    `json:"budget,omitempty"`
	Revenue     int64    `json:"revenue,omitempty"`
	Runtime     int      `json:"runtime,omitempty"`
	TMDBID      int64    `json:"tmdb_id,omitempty"`
}

type GenreStats struct {
	Genre        string  `json:"genre"`
	Count        int     `json:"count"`
	AvgRating    float64 `json:"avg_rating"`
	TotalReviews int     `json:"total_reviews"`
	AvgBudget    float64 `json:"avg_budget"`
	AvgRevenue   float64 `json:"avg_revenue"`
}

type YearTrend struct {
	Year         int     `json:"year"`
	MovieCount   int     `json:"movie_count"`
	AvgRating    float64 `json:"avg_rating"`
	TotalBudget  float64 `json:"total_budget"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRuntime   float64 `json:"avg_runtime"`
}

type DecadeTop struct {
	Decade string     `json:"decade"`
	Movies []TopMovie `json:"top_movies"`
}

type TopMovie struct {
	Title      string  `json:"title"`
	Year       int     `json:"year"`
	AvgRating  float64 `json:"avg_rating"`
	NumReviews int     `json:"num_reviews"`
}

// RatingStats is the recomputed aggregate of every review of one movie.
type RatingStats struct {
	MovieID    string
	AvgRating  float64
	NumReviews int
}
