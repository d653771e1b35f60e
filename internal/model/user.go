package model

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Bio          string
	AvatarURL    string
	Bookmarks    []string
	JoinedAt     time.Time
}

type Registration struct {
	Username  string
	Email     string
	Password  string
	Bio       string
	AvatarURL string
}

type Session struct {
	UserID string
	Token  string
	TTL    time.Duration
}
