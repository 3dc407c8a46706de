package statscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ops-dashboard/internal/clients/redis"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"
)

const (
	statsKey = "licenses:stats"
	statsTTL = 30 * time.Second
)

// Backend is the subset of the Redis client the cache needs
type Backend interface {
	IsEnabled() bool
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Cache keeps the dashboard license stats for a short time. With a disabled
// backend every lookup misses and writes are no-ops.
type Cache struct {
	backend Backend
	logger  *observability.Logger
}

func New(backend Backend, logger *observability.Logger) *Cache {
	return &Cache{
		backend: backend,
		logger:  logger,
	}
}

func (c *Cache) enabled() bool {
	return c != nil && c.backend != nil && c.backend.IsEnabled()
}

// Get returns the cached stats and whether they were present
func (c *Cache) Get(ctx context.Context) (store.LicenseStats, bool) {
	if !c.enabled() {
		return store.LicenseStats{}, false
	}

	raw, err := c.backend.Get(ctx, statsKey)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			c.logger.Error(ctx, "failed to read license stats from cache", err)
		}
		return store.LicenseStats{}, false
	}

	var stats store.LicenseStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.Error(ctx, "failed to decode cached license stats", err)
		return store.LicenseStats{}, false
	}
	return stats, true
}

func (c *Cache) Set(ctx context.Context, stats store.LicenseStats) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		c.logger.Error(ctx, "failed to encode license stats", err)
		return
	}
	if err := c.backend.Set(ctx, statsKey, raw, statsTTL); err != nil {
		c.logger.Error(ctx, "failed to cache license stats", err)
	}
}

// Invalidate drops the cached stats after a change that affects them
func (c *Cache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.backend.Del(ctx, statsKey); err != nil {
		c.logger.Error(ctx, "failed to invalidate license stats cache", err)
	}
}
