package http_user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	http_auth_middleware "github.com/humanbelnik/cinemate/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/cinemate/internal/model"
	usecase_user "github.com/humanbelnik/cinemate/internal/usecase/user"
	user_mocks "github.com/humanbelnik/cinemate/internal/usecase/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type validator func(userID, token string) bool

func (v validator) IsValid(_ context.Context, userID, token string) bool { return v(userID, token) }

type resources struct {
	router    *gin.Engine
	users     *user_mocks.Repository
	movies    *user_mocks.MovieRepository
	sessions  *user_mocks.Sessions
	graphSync *user_mocks.GraphSync
}

func initResources(t *testing.T) *resources {
	gin.SetMode(gin.TestMode)

	users := user_mocks.NewRepository(t)
	movies := user_mocks.NewMovieRepository(t)
	sessions := user_mocks.NewSessions(t)
	graphSync := user_mocks.NewGraphSync(t)

	uc := usecase_user.New(users, movies, sessions, graphSync, usecase_user.WithHashCost(bcrypt.MinCost))
	auth := http_auth_middleware.New(validator(func(userID, token string) bool {
		return userID == "u1" && token == "tok"
	}))

	router := gin.New()
	New(uc, auth).RegisterRoutes(router.Group(""))

	return &resources{
		router:    router,
		users:     users,
		movies:    movies,
		sessions:  sessions,
		graphSync: graphSync,
	}
}

func (r *resources) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(http_auth_middleware.Header, token)
	}
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r := initResources(t)
	r.users.On("Store", mock.Anything, mock.AnythingOfType("model.User")).Return("u1", nil).Once()
	r.graphSync.On("SyncUser", mock.Anything, mock.AnythingOfType("model.User")).Once()

	w := r.do(http.MethodPost, "/users/register", `{"username":"neo","email":"neo@matrix.io","password":"red-pill-42"}`, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterConflict(t *testing.T) {
	r := initResources(t)
	r.users.On("Store", mock.Anything, mock.Anything).Return("", model.ErrDuplicateKey).Once()

	w := r.do(http.MethodPost, "/users/register", `{"username":"neo","email":"neo@matrix.io","password":"red-pill-42"}`, "")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	r := initResources(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("red-pill-42"), bcrypt.MinCost)
	r.users.On("LoadByUsername", mock.Anything, "neo").Return(model.User{ID: "u1", PasswordHash: string(hash)}, nil).Twice()
	r.sessions.On("Open", mock.Anything, "u1").Return(model.Session{UserID: "u1", Token: "tok", TTL: 2 * time.Hour}, nil).Once()

	w := r.do(http.MethodPost, "/users/login", `{"username":"neo","password":"red-pill-42"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","token":"tok","expires_in":7200}`, w.Body.String())
	assert.Equal(t, "tok", w.Header().Get(http_auth_middleware.Header))

	w = r.do(http.MethodPost, "/users/login", `{"username":"neo","password":"wrong-password"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListHidesHashes(t *testing.T) {
	r := initResources(t)
	r.users.On("List", mock.Anything, int64(0), int64(100)).
		Return([]model.User{{ID: "u1", Username: "neo", PasswordHash: "$2a$x"}}, nil).Once()

	w := r.do(http.MethodGet, "/users/", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "$2a$x")
	assert.Contains(t, w.Body.String(), `"bookmarks":[]`)
}

func TestBookmarkRequiresSession(t *testing.T) {
	r := initResources(t)

	w := r.do(http.MethodPost, "/users/u1/bookmarks/m1", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = r.do(http.MethodPost, "/users/u2/bookmarks/m1", "", "tok")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookmark(t *testing.T) {
	r := initResources(t)
	r.movies.On("LoadByID", mock.Anything, "m1").Return(model.Movie{ID: "m1"}, nil).Once()
	r.users.On("AddBookmark", mock.Anything, "u1", "m1").Return(nil).Once()
	r.movies.On("LoadByID", mock.Anything, "m404").Return(model.Movie{}, model.ErrNotFound).Once()

	w := r.do(http.MethodPost, "/users/u1/bookmarks/m1", "", "tok")
	assert.Equal(t, http.StatusOK, w.Code)

	w = r.do(http.MethodPost, "/users/u1/bookmarks/m404", "", "tok")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogout(t *testing.T) {
	r := initResources(t)
	r.sessions.On("Close", mock.Anything, "u1").Once()

	w := r.do(http.MethodPost, "/users/u1/logout", "", "tok")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
