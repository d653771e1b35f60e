package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrStore        = errors.New("store error")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicateKey is a uniqueness violation reported by a store.
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrConflict)
)

// Review ratings are integers in [MinRating, MaxRating]. A movie's average
// starts from imported vote data and never exceeds MaxAvgRating.
const (
	MinRating = 1
	MaxRating = 5

	MaxAvgRating = 10.0
)

// CanonicalID lowercases a hex object id so every spelling of one id maps to
// the same string. Anything else comes back trimmed and untouched.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) != 24 {
		return id
	}
	for _, c := range id {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return id
		}
	}
	return strings.ToLower(id)
}
