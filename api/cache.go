/*
cache.go - Result cache for computed schedules

PURPOSE:
  Schedules are pure functions of their configuration, so identical
  requests can be served from a cache instead of re-running the engine.
  The cache holds serialized responses keyed by the canonical request
  JSON; entries are ephemeral (TTL in Redis, process lifetime in memory).
  Nothing here is persistence: losing the cache only costs a
  recomputation.

IMPLEMENTATIONS:
  RedisCache:  shared cache for multi-instance deployments
  MemoryCache: in-process cache for development and tests

SEE ALSO:
  - handlers.go: Cache-aside lookup around schedule computation
*/
package api

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores serialized schedule responses by canonical request key.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// =============================================================================
// REDIS CACHE
// =============================================================================

// RedisCache caches responses in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the given address. A zero TTL keeps entries
// until Redis evicts them.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// =============================================================================
// MEMORY CACHE
// =============================================================================

// MemoryCache is an in-process cache for development and tests.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.data[key]
	return val, ok
}

func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}
