package model

// MovieRecord is the single shape every recommendation kind answers with.
type MovieRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Genres      []string `json:"genres"`
	Description string   `json:"description,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Match       *Match   `json:"match,omitempty"`
}

// Match carries the graph ranking signals of a graph-produced record.
type Match struct {
	SharedGenres  int     `json:"shared_genres,omitempty"`
	GenreMatches  int     `json:"genre_matches,omitempty"`
	AvgUserRating float64 `json:"avg_user_rating,omitempty"`
}

func RecordFromMovie(m Movie) MovieRecord {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	return MovieRecord{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Genres:      genres,
		Description: m.Description,
		Rating:      m.AvgRating,
		ReviewCount: m.NumReviews,
	}
}
