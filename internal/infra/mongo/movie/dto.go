package infra_mongo_movie

import (
	"math"

	"github.com/humanbelnik/cinemate/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Numeric catalog fields are floats on disk since the loaded dataset may
// carry NaN or fractional values for them.
type MovieDB struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Year        int                `bson:"year"`
	Genres      []string           `bson:"genres"`
	Description string             `bson:"description,omitempty"`
	Director    string             `bson:"director,omitempty"`
	Cast        []string           `bson:"cast,omitempty"`
	PosterURL   string             `bson:"poster_url,omitempty"`
	Tagline     string             `bson:"tagline,omitempty"`
	AvgRating   float64            `bson:"avg_rating"`
	NumReviews  int                `bson:"num_reviews"`
	Popularity  float64            `bson:"popularity,omitempty"`
	Budget      float64            `bson:"budget,omitempty"`
	Revenue     float64            `bson:"revenue,omitempty"`
	Runtime     float64            `bson:"runtime,omitempty"`
	TMDBID      int64              `bson:"tmdb_id,omitempty"`
}

func (m *MovieDB) ToDomain() model.Movie {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	return model.Movie{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Year:        m.Year,
		Genres:      genres,
		Description: m.Description,
		Director:    m.Director,
		Cast:        m.Cast,
		PosterURL:   m.PosterURL,
		Tagline:     m.Tagline,
		AvgRating:   finite(m.AvgRating),
		NumReviews:  m.NumReviews,
		Popularity:  finite(m.Popularity),
		Budget:      int64(finite(m.Budget)),
		Revenue:     int64(finite(m.Revenue)),
		Runtime:     int(finite(m.Runtime)),
		TMDBID:      m.TMDBID,
	}
}

// FromDomain drops the id; the store assigns one on insert.
func FromDomain(m model.Movie) MovieDB {
	return MovieDB{
		Title:       m.Title,
		Year:        m.Year,
		Genres:      m.Genres,
		Description: m.Description,
		Director:    m.Director,
		Cast:        m.Cast,
		PosterURL:   m.PosterURL,
		Tagline:     m.Tagline,
		AvgRating:   m.AvgRating,
		NumReviews:  m.NumReviews,
		Popularity:  m.Popularity,
		Budget:      float64(m.Budget),
		Revenue:     float64(m.Revenue),
		Runtime:     float64(m.Runtime),
		TMDBID:      m.TMDBID,
	}
}

type idDB struct {
	ID primitive.ObjectID `bson:"_id"`
}

type genreDB struct {
	Name string `bson:"_id"`
}

type genreStatsDB struct {
	Genre        string  `bson:"_id"`
	Count        int     `bson:"count"`
	AvgRating    float64 `bson:"avg_rating"`
	TotalReviews int     `bson:"total_reviews"`
	AvgBudget    float64 `bson:"avg_budget"`
	AvgRevenue   float64 `bson:"avg_revenue"`
}

func (g genreStatsDB) ToDomain() model.GenreStats {
	return model.GenreStats{
		Genre:        g.Genre,
		Count:        g.Count,
		AvgRating:    finite(g.AvgRating),
		TotalReviews: g.TotalReviews,
		AvgBudget:    finite(g.AvgBudget),
		AvgRevenue:   finite(g.AvgRevenue),
	}
}

type yearTrendDB struct {
	Year         int     `bson:"_id"`
	MovieCount   int     `bson:"movie_count"`
	AvgRating    float64 `bson:"avg_rating"`
	TotalBudget  float64 `bson:"total_budget"`
	TotalRevenue float64 `bson:"total_revenue"`
	AvgRuntime   float64 `bson:"avg_runtime"`
}

func (y yearTrendDB) ToDomain() model.YearTrend {
	return model.YearTrend{
		Year:         y.Year,
		MovieCount:   y.MovieCount,
		AvgRating:    finite(y.AvgRating),
		TotalBudget:  finite(y.TotalBudget),
		TotalRevenue: finite(y.TotalRevenue),
		AvgRuntime:   finite(y.AvgRuntime),
	}
}

type topMovieDB struct {
	Title      string  `bson:"title"`
	Year       int     `bson:"year"`
	AvgRating  float64 `bson:"avg_rating"`
	NumReviews int     `bson:"num_reviews"`
}

type decadeTopDB struct {
	Decade string       `bson:"_id"`
	Movies []topMovieDB `bson:"top_movies"`
}

func (d decadeTopDB) ToDomain() model.DecadeTop {
	movies := make([]model.TopMovie, 0, len(d.Movies))
	for _, m := range d.Movies {
		movies = append(movies, model.TopMovie{
			Title:      m.Title,
			Year:       m.Year,
			AvgRating:  finite(m.AvgRating),
			NumReviews: m.NumReviews,
		})
	}
	return model.DecadeTop{Decade: d.Decade, Movies: movies}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
