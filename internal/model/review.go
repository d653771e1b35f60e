package model

import "time"

type Review struct {
	ID        string
	UserID    string
	MovieID   string
	Rating    int
	Text      string
	CreatedAt time.Time
}

type ReviewFilter struct {
	MovieID string
	UserID  string
	Skip    int64
	Limit   int64
}
