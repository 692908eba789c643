package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps an optional Redis connection. A nil *Client (or one whose
// connection failed at startup) degrades to a no-op cache.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis at addr. An empty addr or an unreachable server
// yields a client that caches nothing; the service works without Redis.
func New(addr string) *Client {
	if addr == "" {
		return &Client{}
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, continuing without cache", "error", err)
		return &Client{}
	}

	slog.Info("redis connected")
	return &Client{rdb: rdb}
}

// GetString returns (value, true) on a cache hit, ("", false) otherwise.
func (c *Client) GetString(ctx context.Context, key string) (string, bool) {
	if c == nil || c.rdb == nil {
		return "", false
	}
	s, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Info(err.Error())
		return "", false
	}
	return s, true
}

// SetString stores value under key with a TTL. Failures are logged and ignored.
func (c *Client) SetString(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Info(err.Error())
	}
}

func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
