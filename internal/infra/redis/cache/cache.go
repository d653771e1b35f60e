package infra_redis_cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-redis/redis"
	json "github.com/goccy/go-json"
	"github.com/humanbelnik/cinemate/internal/metrics"
)

// Driver never reports errors to its callers. A failed call is logged,
// counted, and behaves as a miss.
type Driver struct {
	client *redis.Client
	key    string

	logger *slog.Logger
}

type Option func(*Driver)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

func New(
	client *redis.Client,
	key string,
	opts ...Option,
) *Driver {
	d := &Driver{
		client: client,
		key:    key,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Set stores strings and byte slices verbatim and everything else as JSON.
func (d *Driver) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	raw, err := encode(value)
	if err != nil {
		d.fail("set", key, err)
		return false
	}

	if err := d.client.WithContext(ctx).Set(d.getFullKey(key), raw, ttl).Err(); err != nil {
		d.fail("set", key, err)
		return false
	}
	return true
}

// Get decodes a JSON value and falls back to the raw string when the stored
// value is not JSON.
func (d *Driver) Get(ctx context.Context, key string) (any, bool) {
	raw, ok := d.raw(ctx, key)
	if !ok {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw, true
	}
	return v, true
}

// Load decodes the stored JSON into dst. A value that does not decode is a miss.
func (d *Driver) Load(ctx context.Context, key string, dst any) bool {
	raw, ok := d.raw(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		d.fail("decode", key, err)
		return false
	}
	return true
}

// Delete reports whether a key was removed.
func (d *Driver) Delete(ctx context.Context, key string) bool {
	if ctx.Err() != nil {
		return false
	}

	n, err := d.client.WithContext(ctx).Del(d.getFullKey(key)).Result()
	if err != nil {
		d.fail("delete", key, err)
		return false
	}
	return n > 0
}

// Ping is the one call that reports an error, for health checks.
func (d *Driver) Ping(ctx context.Context) error {
	return d.client.WithContext(ctx).Ping().Err()
}

func (d *Driver) raw(ctx context.Context, key string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	val, err := d.client.WithContext(ctx).Get(d.getFullKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheMisses.WithLabelValues(family(key)).Inc()
			return "", false
		}
		d.fail("get", key, err)
		return "", false
	}

	metrics.CacheHits.WithLabelValues(family(key)).Inc()
	return val, true
}

func (d *Driver) fail(op, key string, err error) {
	metrics.CacheErrors.WithLabelValues(op).Inc()
	d.logger.Warn("cache call failed",
		slog.String("operation", op),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}

func encode(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func family(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
