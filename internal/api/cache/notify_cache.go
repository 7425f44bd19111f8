package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NotifyCache fronts the unread-recommendation existence check with Redis so
// UI badge polling does not hit Postgres on every request. The database stays
// the source of truth; entries are dropped whenever the inbox changes.
//
// A nil *NotifyCache is valid and turns every call into a no-op, so the
// service degrades to direct DB checks when Redis is unavailable.
type NotifyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNotifyCache(redisURL string, ttl time.Duration) (*NotifyCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &NotifyCache{client: client, ttl: ttl}, nil
}

func (c *NotifyCache) key(kind string, userID int64) string {
	return fmt.Sprintf("notify:%s:%d", kind, userID)
}

// Get returns the cached badge state and whether the lookup hit.
func (c *NotifyCache) Get(ctx context.Context, kind string, userID int64) (hasUnread, ok bool) {
	if c == nil || c.client == nil {
		return false, false
	}
	val, err := c.client.Get(ctx, c.key(kind, userID)).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

// Set stores the badge state with the configured TTL. Best effort.
func (c *NotifyCache) Set(ctx context.Context, kind string, userID int64, hasUnread bool) {
	if c == nil || c.client == nil {
		return
	}
	val := "0"
	if hasUnread {
		val = "1"
	}
	_ = c.client.Set(ctx, c.key(kind, userID), val, c.ttl).Err()
}

// Invalidate drops the badge entry after any inbox mutation.
func (c *NotifyCache) Invalidate(ctx context.Context, kind string, userID int64) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, c.key(kind, userID)).Err()
}

// Close releases the underlying Redis connection.
func (c *NotifyCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
