package infra_neo4j_graph

import (
	"fmt"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

func toGraphMovie(rec *neo4j.Record) model.GraphMovie {
	return model.GraphMovie{
		ID:            str(rec, "id"),
		Title:         str(rec, "title"),
		Year:          int(integer(rec, "year")),
		AvgRating:     float(rec, "avg_rating"),
		NumReviews:    int(integer(rec, "num_reviews")),
		Genres:        strs(rec, "genres"),
		SharedGenres:  int(integer(rec, "shared_genres")),
		GenreMatches:  int(integer(rec, "genre_matches")),
		AvgUserRating: float(rec, "avg_user_rating"),
	}
}

func toGenrePopularity(rec *neo4j.Record) model.GenrePopularity {
	return model.GenrePopularity{
		Genre:      str(rec, "genre"),
		MovieCount: int(integer(rec, "movie_count")),
		AvgRating:  float(rec, "avg_rating"),
	}
}

func toPath(rec *neo4j.Record) (model.Path, error) {
	p, isNil, err := neo4j.GetRecordValue[neo4j.Path](rec, "p")
	if err != nil {
		return model.Path{}, fmt.Errorf("decode path: %w", err)
	}
	if isNil {
		return emptyPath(), nil
	}

	steps := make([]model.PathStep, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		steps = append(steps, toStep(n))
	}
	return model.Path{Steps: steps, Length: len(p.Relationships)}, nil
}

func toStep(n neo4j.Node) model.PathStep {
	for _, label := range n.Labels {
		switch label {
		case model.PathNodeMovie:
			id, _ := n.Props["id"].(string)
			title, _ := n.Props["title"].(string)
			return model.PathStep{Kind: model.PathNodeMovie, ID: id, Title: title}
		case model.PathNodeGenre:
			name, _ := n.Props["name"].(string)
			return model.PathStep{Kind: model.PathNodeGenre, Name: name}
		}
	}

	kind := ""
	if len(n.Labels) > 0 {
		kind = n.Labels[0]
	}
	return model.PathStep{Kind: kind}
}

func emptyPath() model.Path {
	return model.Path{Steps: []model.PathStep{}, Length: 0}
}

func str(rec *neo4j.Record, key string) string {
	v, _ := rec.Get(key)
	s, _ := v.(string)
	return s
}

func integer(rec *neo4j.Record, key string) int64 {
	v, _ := rec.Get(key)
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func float(rec *neo4j.Record, key string) float64 {
	v, _ := rec.Get(key)
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func strs(rec *neo4j.Record, key string) []string {
	v, _ := rec.Get(key)
	items, _ := v.([]any)

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
