// Package cache is the redis-backed snapshot cache. It stores the
// pre-shaped JSON payloads verbatim so dashboard requests avoid hitting
// the upstream APIs on every render.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soclens/soclens/internal/metrics"
)

// Namespace prefixes every soclens key so a shared redis stays tidy.
const Namespace = "soclens"

// ErrMiss is returned when no cached snapshot exists for a kind.
var ErrMiss = errors.New("cache: miss")

// SnapshotKey builds the cache key for a snapshot kind.
func SnapshotKey(kind string) string {
	return Namespace + ":snapshot:" + kind
}

// Cache wraps a redis client with snapshot get/set. A nil Cache is valid
// and behaves as an always-miss cache, so redis stays optional.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetSnapshot returns the cached payload for kind, or ErrMiss.
func (c *Cache) GetSnapshot(ctx context.Context, kind string) ([]byte, error) {
	if c == nil {
		return nil, ErrMiss
	}
	raw, err := c.rdb.Get(ctx, SnapshotKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheHitsTotal.WithLabelValues(kind, "miss").Inc()
			return nil, ErrMiss
		}
		metrics.CacheHitsTotal.WithLabelValues(kind, "error").Inc()
		return nil, err
	}
	metrics.CacheHitsTotal.WithLabelValues(kind, "hit").Inc()
	return raw, nil
}

// SetSnapshot stores the payload for kind with the configured TTL.
func (c *Cache) SetSnapshot(ctx context.Context, kind string, payload []byte) error {
	if c == nil {
		return nil
	}
	return c.rdb.Set(ctx, SnapshotKey(kind), payload, c.ttl).Err()
}
