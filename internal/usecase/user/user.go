package usecase_user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/humanbelnik/cinemate/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput        = model.ErrInvalidInput
	ErrUserExists          = errors.New("username or email already exists")
	ErrWrongCredentials    = errors.New("wrong username or password")
	ErrFailedToStoreUser   = errors.New("failed to store user")
	ErrFailedToLoadUsers   = errors.New("failed to load users")
	ErrFailedToOpenSession = errors.New("failed to open session")
	ErrFailedToBookmark    = errors.New("failed to bookmark movie")
)

type Repository interface {
	Store(ctx context.Context, u model.User) (string, error)
	List(ctx context.Context, skip, limit int64) ([]model.User, error)
	LoadByUsername(ctx context.Context, username string) (model.User, error)
	AddBookmark(ctx context.Context, userID, movieID string) error
}

type MovieRepository interface {
	LoadByID(ctx context.Context, id string) (model.Movie, error)
}

type Sessions interface {
	Open(ctx context.Context, userID string) (model.Session, error)
	Close(ctx context.Context, userID string)
}

type GraphSync interface {
	SyncUser(ctx context.Context, u model.User)
}

// bcrypt reads at most this many bytes of a password.
const maxPasswordBytes = 72

type registration struct {
	Username string `validate:"required,min=3,max=64"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

type Usecase struct {
	users     Repository
	movies    MovieRepository
	sessions  Sessions
	graphSync GraphSync

	validate *validator.Validate
	cost     int
	now      func() time.Time
}

type Option func(*Usecase)

// WithHashCost overrides the bcrypt cost.
func WithHashCost(cost int) Option {
	return func(u *Usecase) {
		u.cost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	users Repository,
	movies MovieRepository,
	sessions Sessions,
	graphSync GraphSync,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		users:     users,
		movies:    movies,
		sessions:  sessions,
		graphSync: graphSync,
		validate:  validator.New(),
		cost:      bcrypt.DefaultCost,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Register stores a new user with a bcrypt hash of the password. Username
// and email uniqueness is enforced by the store, ignoring case.
func (u *Usecase) Register(ctx context.Context, reg model.Registration) (model.User, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))

	if err := u.validate.Struct(registration{
		Username: reg.Username,
		Email:    reg.Email,
		Password: reg.Password,
	}); err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if len(reg.Password) > maxPasswordBytes {
		return model.User{}, fmt.Errorf("%w: password longer than %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), u.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToStoreUser, err)
	}

	user := model.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Bio:          reg.Bio,
		AvatarURL:    reg.AvatarURL,
		Bookmarks:    []string{},
		JoinedAt:     u.now().UTC(),
	}

	id, err := u.users.Store(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.User{}, fmt.Errorf("%w: %w", ErrUserExists, err)
		}
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToStoreUser, err)
	}
	user.ID = id

	u.graphSync.SyncUser(ctx, user)

	user.PasswordHash = ""
	return user, nil
}

func (u *Usecase) List(ctx context.Context, skip, limit int64) ([]model.User, error) {
	if skip < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit cannot be negative", ErrInvalidInput)
	}

	users, err := u.users.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadUsers, err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// Login checks the password and opens a session. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, username, password string) (model.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := u.users.LoadByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, ErrWrongCredentials)
		}
		return model.Session{}, fmt.Errorf("%w: %w", ErrFailedToLoadUsers, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.Session{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, ErrWrongCredentials)
	}

	session, err := u.sessions.Open(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %w", ErrFailedToOpenSession, err)
	}
	return session, nil
}

func (u *Usecase) Logout(ctx context.Context, userID string) {
	u.sessions.Close(ctx, userID)
}

func (u *Usecase) Bookmark(ctx context.Context, userID, movieID string) error {
	if userID == "" || movieID == "" {
		return fmt.Errorf("%w: user id and movie id are required", ErrInvalidInput)
	}

	movie, err := u.movies.LoadByID(ctx, model.CanonicalID(movieID))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBookmark, err)
	}

	if err := u.users.AddBookmark(ctx, userID, movie.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBookmark, err)
	}
	return nil
}
