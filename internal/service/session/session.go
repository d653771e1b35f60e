package service_session

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	infra_redis_cache "github.com/humanbelnik/cinemate/internal/infra/redis/cache"
	"github.com/humanbelnik/cinemate/internal/model"
)

var ErrSessionUnavailable = errors.New("session store unavailable")

type SessionCache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Get(ctx context.Context, key string) (any, bool)
	Delete(ctx context.Context, key string) bool
}

// Service keeps one session token per user in the cache. A new login
// replaces the previous token.
type Service struct {
	cache SessionCache
	ttl   time.Duration
}

func New(
	cache SessionCache,
	ttl *time.Duration,
) *Service {
	if ttl == nil {
		ttl = func() *time.Duration {
			defaultTTL := infra_redis_cache.SessionTTL
			return &defaultTTL
		}()
	}

	return &Service{
		cache: cache,
		ttl:   *ttl,
	}
}

func (s *Service) Open(ctx context.Context, userID string) (model.Session, error) {
	t := s.genToken()
	if !s.cache.Set(ctx, infra_redis_cache.SessionKey(userID), t, s.ttl) {
		return model.Session{}, ErrSessionUnavailable
	}

	return model.Session{
		UserID: userID,
		Token:  t,
		TTL:    s.ttl,
	}, nil
}

func (s *Service) IsValid(ctx context.Context, userID, token string) bool {
	if userID == "" || token == "" {
		return false
	}

	v, ok := s.cache.Get(ctx, infra_redis_cache.SessionKey(userID))
	if !ok {
		return false
	}

	stored, ok := v.(string)
	return ok && subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}

func (s *Service) Close(ctx context.Context, userID string) {
	s.cache.Delete(ctx, infra_redis_cache.SessionKey(userID))
}

func (s *Service) genToken() string {
	return uuid.New().String()
}
