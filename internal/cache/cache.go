package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// Cache stores encoded list responses keyed by resource.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, keys ...string)
}

// DefaultTTL bounds how stale a cached list can get if an invalidation is lost.
const DefaultTTL = 5 * time.Minute

const keyPrefix = "franchise:"

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the Redis at redisURL, which may be a redis:// URL or
// a bare host:port.
func NewRedis(ctx context.Context, redisURL string) (Cache, error) {
	addr := redisURL
	if !strings.Contains(addr, "://") {
		addr = "redis://" + addr
	}
	opt, err := redis.ParseURL(addr)
	if err != nil {
		// Fallback to simple connection
		opt = &redis.Options{Addr: redisURL}
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewWithClient(client, DefaultTTL), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Warn("Cache read failed", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, keyPrefix+key, value, c.ttl).Err(); err != nil {
		log.Warn("Cache write failed", "key", key, "error", err)
	}
}

func (c *redisCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		log.Warn("Cache invalidation failed", "keys", keys, "error", err)
	}
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }
func (Nop) Set(ctx context.Context, key string, value []byte) {}
func (Nop) Invalidate(ctx context.Context, keys ...string) {}
