package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ops-dashboard/internal/config"
	"ops-dashboard/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil when Redis is disabled,
// and every method on a nil *Client reports the client as unavailable.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redis_addr", Value: cfg.Addr()},
		observability.Field{Key: "redis_db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

var errNotInitialized = errors.New("redis client not initialized")

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if !c.IsEnabled() {
		return nil
	}
	return c.client.Close()
}

// Get returns the value stored at key, or ErrCacheMiss
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.IsEnabled() {
		return nil, errNotInitialized
	}
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return value, err
}

// Set stores value at key with the given time to live
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}

// RecordInWindow adds a hit to the sliding window stored at key and returns
// the number of hits inside the window before this one, together with the
// time of the oldest hit still inside it.
func (c *Client) RecordInWindow(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if !c.IsEnabled() {
		return 0, time.Time{}, errNotInitialized
	}

	now := time.Now()
	windowStart := now.Add(-window).UnixMilli()

	pipe := c.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	count := pipe.ZCard(ctx, key)
	oldest := pipe.ZRangeWithScores(ctx, key, 0, 0)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()[:8]),
	})
	pipe.Expire(ctx, key, 2*window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to record hit in window: %w", err)
	}

	oldestAt := now
	if members := oldest.Val(); len(members) > 0 {
		oldestAt = time.UnixMilli(int64(members[0].Score))
	}
	return count.Val(), oldestAt, nil
}
