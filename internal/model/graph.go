package model

// GraphMovie is a flat record read from the graph store. Ranking fields are
// filled only by the query that produced them.
type GraphMovie struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	AvgRating  float64  `json:"avg_rating"`
	NumReviews int      `json:"num_reviews"`
	Genres     []string `json:"genres"`

	SharedGenres  int     `json:"shared_genres,omitempty"`
	GenreMatches  int     `json:"genre_matches,omitempty"`
	AvgUserRating float64 `json:"avg_user_rating,omitempty"`
}

func (g GraphMovie) Record() MovieRecord {
	genres := g.Genres
	if genres == nil {
		genres = []string{}
	}
	return MovieRecord{
		ID:          g.ID,
		Title:       g.Title,
		Year:        g.Year,
		Genres:      genres,
		Rating:      g.AvgRating,
		ReviewCount: g.NumReviews,
		Match: &Match{
			SharedGenres:  g.SharedGenres,
			GenreMatches:  g.GenreMatches,
			AvgUserRating: g.AvgUserRating,
		},
	}
}

type GenrePopularity struct {
	Genre      string  `json:"genre"`
	MovieCount int     `json:"movie_count"`
	AvgRating  float64 `json:"avg_rating"`
}

const (
	PathNodeMovie = "Movie"
	PathNodeGenre = "Genre"
)

type PathStep struct {
	Kind  string `json:"kind"`
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Path is empty when the two movies are not connected.
type Path struct {
	Steps  []PathStep `json:"steps"`
	Length int        `json:"length"`
}
