package infra_mongo_user

import (
	"context"
	"fmt"
	"time"

	query "github.com/humanbelnik/cinemate/internal/infra/mongo/query"
	store "github.com/humanbelnik/cinemate/internal/infra/mongo/store"
	"github.com/humanbelnik/cinemate/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserDB struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	Bio          string             `bson:"bio,omitempty"`
	AvatarURL    string             `bson:"avatar_url,omitempty"`
	Bookmarks    []string           `bson:"bookmarks"`
	JoinedAt     time.Time          `bson:"joined_at"`
}

func (u *UserDB) ToDomain() model.User {
	bookmarks := u.Bookmarks
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return model.User{
		ID:           u.ID.Hex(),
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Bio:          u.Bio,
		AvatarURL:    u.AvatarURL,
		Bookmarks:    bookmarks,
		JoinedAt:     u.JoinedAt,
	}
}

func FromDomain(u model.User) UserDB {
	bookmarks := u.Bookmarks
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return UserDB{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Bio:          u.Bio,
		AvatarURL:    u.AvatarURL,
		Bookmarks:    bookmarks,
		JoinedAt:     u.JoinedAt,
	}
}

type Repository struct {
	store *store.Store
}

func New(s *store.Store) *Repository {
	return &Repository{store: s}
}

// Store inserts the user. Username and email are unique ignoring case;
// a collision is model.ErrConflict.
func (r *Repository) Store(ctx context.Context, u model.User) (string, error) {
	id, err := r.store.InsertOne(ctx, query.Users, FromDomain(u))
	if err != nil {
		return "", fmt.Errorf("failed to store user: %w", err)
	}
	return id, nil
}

// List never carries password hashes.
func (r *Repository) List(ctx context.Context, skip, limit int64) ([]model.User, error) {
	var docs []UserDB
	if err := r.store.Find(ctx, query.UsersPublic(skip, limit), &docs); err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	users := make([]model.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].ToDomain())
	}
	return users, nil
}

func (r *Repository) LoadByUsername(ctx context.Context, username string) (model.User, error) {
	var userDB UserDB
	if err := r.store.FindOne(ctx, query.UserByUsername(username), &userDB); err != nil {
		return model.User{}, fmt.Errorf("failed to load user %s: %w", username, err)
	}
	return userDB.ToDomain(), nil
}

func (r *Repository) AddBookmark(ctx context.Context, userID, movieID string) error {
	oid, err := store.ObjectID(userID)
	if err != nil {
		return err
	}
	if err := r.store.UpdateOne(ctx, query.AddBookmark(oid, movieID)); err != nil {
		return fmt.Errorf("failed to bookmark movie %s for user %s: %w", movieID, userID, err)
	}
	return nil
}
