//go:build !integration
// +build !integration

package service_session

import (
	"context"
	"testing"
	"time"

	infra_redis_cache "github.com/humanbelnik/cinemate/internal/infra/redis/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	session_mocks "github.com/humanbelnik/cinemate/internal/service/session/mocks"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type SessionUnitSuite struct {
	suite.Suite
}

func (s *SessionUnitSuite) TestOpenStoresTokenWithTTL(t provider.T) {
	t.Parallel()
	ctx := context.Background()
	cache := session_mocks.NewSessionCache(t)
	ttl := time.Minute
	svc := New(cache, &ttl)

	cache.On("Set", ctx, infra_redis_cache.SessionKey("u1"), mock.AnythingOfType("string"), ttl).Return(true).Once()

	session, err := svc.Open(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, ttl, session.TTL)
}

func (s *SessionUnitSuite) TestOpenFailsWithoutCache(t provider.T) {
	t.Parallel()
	ctx := context.Background()
	cache := session_mocks.NewSessionCache(t)
	svc := New(cache, nil)

	cache.On("Set", ctx, infra_redis_cache.SessionKey("u1"), mock.Anything, infra_redis_cache.SessionTTL).Return(false).Once()

	_, err := svc.Open(ctx, "u1")
	assert.ErrorIs(t, err, ErrSessionUnavailable)
}

func (s *SessionUnitSuite) TestIsValid(t provider.T) {
	t.Parallel()
	ctx := context.Background()
	cache := session_mocks.NewSessionCache(t)
	svc := New(cache, nil)

	cache.On("Get", ctx, infra_redis_cache.SessionKey("u1")).Return("tok", true)
	cache.On("Get", ctx, infra_redis_cache.SessionKey("u2")).Return(nil, false)

	assert.True(t, svc.IsValid(ctx, "u1", "tok"))
	assert.False(t, svc.IsValid(ctx, "u1", "other"))
	assert.False(t, svc.IsValid(ctx, "u2", "tok"))
	assert.False(t, svc.IsValid(ctx, "u1", ""))
}

func (s *SessionUnitSuite) TestClose(t provider.T) {
	t.Parallel()
	ctx := context.Background()
	cache := session_mocks.NewSessionCache(t)
	svc := New(cache, nil)

	cache.On("Delete", ctx, infra_redis_cache.SessionKey("u1")).Return(true).Once()

	svc.Close(ctx, "u1")
}

func TestSessionUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionUnitSuite))
}
