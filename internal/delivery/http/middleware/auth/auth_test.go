package http_auth_middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type sessions map[string]string

func (s sessions) IsValid(_ context.Context, userID, token string) bool {
	t, ok := s[userID]
	return ok && t == token
}

func TestSessionRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := New(sessions{"u1": "tok"})
	r.POST("/users/:id/bookmarks", m.SessionRequired("id"), func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		name  string
		user  string
		token string
		code  int
	}{
		{"Should admit the owner", "u1", "tok", http.StatusOK},
		{"Should reject a missing header", "u1", "", http.StatusUnauthorized},
		{"Should reject a stale token", "u1", "old", http.StatusUnauthorized},
		{"Should reject another user's token", "u2", "tok", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users/"+tc.user+"/bookmarks", nil)
			if tc.token != "" {
				req.Header.Set(Header, tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"code":401`)
			}
		})
	}
}
