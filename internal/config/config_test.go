//go:build !integration
// +build !integration

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "HTTP_MODE", "MONGO_HOST", "MONGO_DB", "REDIS_DB",
		"NEO4J_URI", "STORE_TIMEOUT", "CACHE_TIMEOUT", "POPULAR_MIN_REVIEWS",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, "RW", cfg.HTTP.Mode)
	assert.Equal(t, "localhost", cfg.Mongo.Host)
	assert.Equal(t, "cinemate", cfg.Mongo.DBName)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Store)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeouts.Cache)
	assert.Equal(t, 100, cfg.Recommend.PopularMinReviews)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_MODE", "RO")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("NEO4J_PASSWORD", "s3cret")

	cfg := FromEnv()

	assert.Equal(t, "RO", cfg.HTTP.Mode)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 2*time.Second, cfg.Timeouts.Store)
	assert.Equal(t, "s3cret", cfg.Neo4j.Password)
}
