package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cinemahub/cinemahub-api/internal/logger"
)

// cacheTTL bounds how long proxied upstream responses are reused.
const cacheTTL = 10 * time.Minute

// Cache is a Redis-backed JSON response cache. A nil *Cache is valid
// and disables caching, so facades work without Redis configured.
type Cache struct {
	rdb *redis.Client
}

// NewCache creates a cache over the given Redis client.
func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Get unmarshals the cached value for key into dest. Returns false on
// miss or any Redis error (misses are never fatal).
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warnw("cache get failed", "key", key, "err", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Log.Warnw("cache entry corrupt", "key", key, "err", err)
		return false
	}
	return true
}

// Set stores value under key for the cache TTL. Errors are logged,
// never propagated.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logger.Log.Warnw("cache marshal failed", "key", key, "err", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		logger.Log.Warnw("cache set failed", "key", key, "err", err)
	}
}
