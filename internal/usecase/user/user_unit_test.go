//go:build !integration
// +build !integration

package usecase_user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/humanbelnik/cinemate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	user_mocks "github.com/humanbelnik/cinemate/internal/usecase/user/mocks"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseUserUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	users     *user_mocks.Repository
	movies    *user_mocks.MovieRepository
	sessions  *user_mocks.Sessions
	graphSync *user_mocks.GraphSync
	ctx       context.Context
}

var joined = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func initResources(t provider.T) *resources {
	users := user_mocks.NewRepository(t)
	movies := user_mocks.NewMovieRepository(t)
	sessions := user_mocks.NewSessions(t)
	graphSync := user_mocks.NewGraphSync(t)

	return &resources{
		usecase: New(users, movies, sessions, graphSync,
			WithHashCost(bcrypt.MinCost),
			WithClock(func() time.Time { return joined }),
		),
		users:     users,
		movies:    movies,
		sessions:  sessions,
		graphSync: graphSync,
		ctx:       context.Background(),
	}
}

func isUser(username, email string) any {
	return mock.MatchedBy(func(u model.User) bool {
		return u.Username == username && u.Email == email && u.PasswordHash != ""
	})
}

func (s *UsecaseUserUnitSuite) TestRegister(t provider.T) {
	t.Parallel()

	valid := model.Registration{Username: "neo", Email: "Neo@Matrix.io", Password: "red-pill-42"}

	testCases := []struct {
		name        string
		reg         model.Registration
		setupMocks  func(r *resources)
		expectError error
	}{
		{
			name:        "Should reject malformed email",
			reg:         model.Registration{Username: "neo", Email: "not-an-email", Password: "red-pill-42"},
			setupMocks:  func(r *resources) {},
			expectError: ErrInvalidInput,
		},
		{
			name:        "Should reject short password",
			reg:         model.Registration{Username: "neo", Email: "neo@matrix.io", Password: "short"},
			setupMocks:  func(r *resources) {},
			expectError: ErrInvalidInput,
		},
		{
			name:        "Should reject a password bcrypt would truncate",
			reg:         model.Registration{Username: "neo", Email: "neo@matrix.io", Password: strings.Repeat("é", 40)},
			setupMocks:  func(r *resources) {},
			expectError: ErrInvalidInput,
		},
		{
			name:        "Should reject missing username",
			reg:         model.Registration{Email: "neo@matrix.io", Password: "red-pill-42"},
			setupMocks:  func(r *resources) {},
			expectError: ErrInvalidInput,
		},
		{
			name: "Should map duplicate to user exists",
			reg:  valid,
			setupMocks: func(r *resources) {
				r.users.On("Store", r.ctx, isUser("neo", "neo@matrix.io")).Return("", model.ErrConflict).Once()
			},
			expectError: ErrUserExists,
		},
		{
			name: "Should store a hashed password and sync the graph",
			reg:  valid,
			setupMocks: func(r *resources) {
				r.users.On("Store", r.ctx, isUser("neo", "neo@matrix.io")).Return("u1", nil).Once()
				r.graphSync.On("SyncUser", r.ctx, mock.MatchedBy(func(u model.User) bool {
					return u.ID == "u1" && u.Username == "neo"
				})).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Register(r.ctx, tc.reg)

			if tc.expectError != nil {
				assert.True(t, errors.Is(err, tc.expectError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", got.ID)
			assert.Equal(t, "neo@matrix.io", got.Email)
			assert.Empty(t, got.PasswordHash)
			assert.Equal(t, joined, got.JoinedAt)
			assert.Equal(t, []string{}, got.Bookmarks)
		})
	}
}

func (s *UsecaseUserUnitSuite) TestRegisterDuplicateIsConflict(t provider.T) {
	t.Parallel()
	r := initResources(t)
	r.users.On("Store", r.ctx, mock.Anything).Return("", model.ErrConflict).Once()

	_, err := r.usecase.Register(r.ctx, model.Registration{Username: "neo", Email: "neo@matrix.io", Password: "red-pill-42"})
	assert.True(t, errors.Is(err, model.ErrConflict))
}

func (s *UsecaseUserUnitSuite) TestList(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.users.On("List", r.ctx, int64(0), int64(10)).Return([]model.User{
		{ID: "u1", Username: "neo", PasswordHash: "$2a$secret"},
	}, nil).Once()

	got, err := r.usecase.List(r.ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].PasswordHash)

	_, err = r.usecase.List(r.ctx, -1, 10)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func (s *UsecaseUserUnitSuite) TestLogin(t provider.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("red-pill-42"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := model.User{ID: "u1", Username: "neo", PasswordHash: string(hash)}
	session := model.Session{UserID: "u1", Token: "tok", TTL: time.Hour}

	testCases := []struct {
		name        string
		password    string
		setupMocks  func(r *resources)
		expectError error
	}{
		{
			name:     "Should open a session for the right password",
			password: "red-pill-42",
			setupMocks: func(r *resources) {
				r.users.On("LoadByUsername", r.ctx, "neo").Return(stored, nil).Once()
				r.sessions.On("Open", r.ctx, "u1").Return(session, nil).Once()
			},
		},
		{
			name:     "Should reject the wrong password",
			password: "blue-pill-42",
			setupMocks: func(r *resources) {
				r.users.On("LoadByUsername", r.ctx, "neo").Return(stored, nil).Once()
			},
			expectError: model.ErrUnauthorized,
		},
		{
			name:     "Should reject an unknown user the same way",
			password: "red-pill-42",
			setupMocks: func(r *resources) {
				r.users.On("LoadByUsername", r.ctx, "neo").Return(model.User{}, model.ErrNotFound).Once()
			},
			expectError: ErrWrongCredentials,
		},
		{
			name:     "Should report a session store failure",
			password: "red-pill-42",
			setupMocks: func(r *resources) {
				r.users.On("LoadByUsername", r.ctx, "neo").Return(stored, nil).Once()
				r.sessions.On("Open", r.ctx, "u1").Return(model.Session{}, errors.New("redis down")).Once()
			},
			expectError: ErrFailedToOpenSession,
		},
		{
			name:        "Should reject empty password",
			setupMocks:  func(r *resources) {},
			expectError: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Login(r.ctx, "neo", tc.password)

			if tc.expectError != nil {
				assert.True(t, errors.Is(err, tc.expectError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, session, got)
		})
	}
}

func (s *UsecaseUserUnitSuite) TestBookmark(t provider.T) {
	t.Parallel()

	t.Run("Should reject unknown movie", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.movies.On("LoadByID", r.ctx, "m404").Return(model.Movie{}, model.ErrNotFound).Once()

		err := r.usecase.Bookmark(r.ctx, "u1", "m404")
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})

	t.Run("Should report unknown user", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.movies.On("LoadByID", r.ctx, "m1").Return(model.Movie{ID: "m1"}, nil).Once()
		r.users.On("AddBookmark", r.ctx, "u404", "m1").Return(model.ErrNotFound).Once()

		err := r.usecase.Bookmark(r.ctx, "u404", "m1")
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})

	t.Run("Should add bookmark", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.movies.On("LoadByID", r.ctx, "m1").Return(model.Movie{ID: "m1"}, nil).Once()
		r.users.On("AddBookmark", r.ctx, "u1", "m1").Return(nil).Once()

		assert.NoError(t, r.usecase.Bookmark(r.ctx, "u1", "m1"))
	})

	t.Run("Should bookmark the stored spelling of the movie id", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		const movieID = "65f0a1b2c3d4e5f6a7b8c9d0"
		r.movies.On("LoadByID", r.ctx, movieID).Return(model.Movie{ID: movieID}, nil).Once()
		r.users.On("AddBookmark", r.ctx, "u1", movieID).Return(nil).Once()

		assert.NoError(t, r.usecase.Bookmark(r.ctx, "u1", strings.ToUpper(movieID)))
	})
}

func (s *UsecaseUserUnitSuite) TestLogout(t provider.T) {
	t.Parallel()
	r := initResources(t)
	r.sessions.On("Close", r.ctx, "u1").Once()

	r.usecase.Logout(r.ctx, "u1")
}

func TestUsecaseUserUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseUserUnitSuite))
}
