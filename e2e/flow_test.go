//go:build e2e
// +build e2e

package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type E2EMovieFlowSuite struct {
	suite.Suite
	c *client
}

type movie struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Genres     []string `json:"genres"`
	AvgRating  float64  `json:"avg_rating"`
	NumReviews int      `json:"num_reviews"`
}

type session struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

func (s *E2EMovieFlowSuite) BeforeAll(t provider.T) {
	s.c = newClient()
	t.Require().True(s.c.waitForService(), "service did not start in time")
}

func (s *E2EMovieFlowSuite) register(t provider.T, name string) session {
	suffix := time.Now().Format("150405.000000")
	user := map[string]string{
		"username": name + suffix,
		"email":    name + suffix + "@cinemate.test",
		"password": "popcorn-and-soda",
	}

	code, err := s.c.do(http.MethodPost, "/users/register", user, "", nil)
	t.Require().NoError(err)
	t.Require().Equal(http.StatusCreated, code)

	var sess session
	code, err = s.c.do(http.MethodPost, "/users/login", map[string]string{
		"username": user["username"],
		"password": user["password"],
	}, "", &sess)
	t.Require().NoError(err)
	t.Require().Equal(http.StatusOK, code)
	t.Require().NotEmpty(sess.Token)
	return sess
}

func (s *E2EMovieFlowSuite) TestE2EReviewFlow(t provider.T) {
	var created movie
	code, err := s.c.do(http.MethodPost, "/movies/", map[string]any{
		"title":  "Inception " + time.Now().Format(time.RFC3339Nano),
		"year":   2010,
		"genres": []string{"Science Fiction", "Action", "Thriller"},
	}, "", &created)
	t.Require().NoError(err)
	t.Require().Equal(http.StatusCreated, code)
	t.Require().NotEmpty(created.ID)

	alice, bob := s.register(t, "alice"), s.register(t, "bob")

	for _, r := range []struct {
		user   session
		rating int
	}{{alice, 3}, {bob, 5}} {
		code, err = s.c.do(http.MethodPost, "/reviews/", map[string]any{
			"user_id":  r.user.UserID,
			"movie_id": created.ID,
			"rating":   r.rating,
		}, "", nil)
		t.Require().NoError(err)
		t.Require().Equal(http.StatusCreated, code)
	}

	code, err = s.c.do(http.MethodPost, "/reviews/", map[string]any{
		"user_id": alice.UserID, "movie_id": created.ID, "rating": 1,
	}, "", nil)
	t.Require().NoError(err)
	t.Assert().Equal(http.StatusConflict, code)

	var got movie
	code, err = s.c.do(http.MethodGet, "/movies/"+created.ID, nil, "", &got)
	t.Require().NoError(err)
	t.Require().Equal(http.StatusOK, code)
	t.Assert().InDelta(4.0, got.AvgRating, 1e-9)
	t.Assert().Equal(2, got.NumReviews)

	code, err = s.c.do(http.MethodPost, "/users/"+alice.UserID+"/bookmarks/"+created.ID, nil, "", nil)
	t.Require().NoError(err)
	t.Assert().Equal(http.StatusUnauthorized, code)

	code, err = s.c.do(http.MethodPost, "/users/"+alice.UserID+"/bookmarks/"+created.ID, nil, alice.Token, nil)
	t.Require().NoError(err)
	t.Assert().Equal(http.StatusOK, code)

	var recs struct {
		Recommendations []movie `json:"recommendations"`
	}
	code, err = s.c.do(http.MethodGet, "/graph/recommendations/"+bob.UserID, nil, "", &recs)
	t.Require().NoError(err)
	t.Assert().Equal(http.StatusOK, code)
	for _, m := range recs.Recommendations {
		t.Assert().NotEqual(created.ID, m.ID)
	}
}

func (s *E2EMovieFlowSuite) TestE2EHealth(t provider.T) {
	var health map[string]string
	code, err := s.c.do(http.MethodGet, "/health", nil, "", &health)
	t.Require().NoError(err)
	t.Assert().Equal(http.StatusOK, code)
	t.Assert().Equal("ok", health["status"])

	code, err = s.c.do(http.MethodGet, "/health/stores", nil, "", nil)
	t.Require().NoError(err)
	t.Assert().Equal(http.StatusOK, code)
}

func TestE2EMovieFlowSuite(t *testing.T) {
	suite.RunSuite(t, new(E2EMovieFlowSuite))
}
