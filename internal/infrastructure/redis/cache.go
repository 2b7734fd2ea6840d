package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key builders. Key shapes are shared with the peer service, so they
// live here rather than in the callers.
func TransactionKey(transactionID string) string {
	return "transaction:" + transactionID
}

func NotificationKey(notificationID string) string {
	return "notification:" + notificationID
}

func UserNotificationsKey(userID string) string {
	return "user_notifications:" + userID
}

// RecordCache holds disposable, independently-expiring JSON shadows of
// recently written records. It is advisory only: the durable store is the
// source of truth and a cache failure never invalidates a committed write.
type RecordCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecordCache(client *redis.Client, ttl time.Duration) *RecordCache {
	return &RecordCache{client: client, ttl: ttl}
}

// Set stores the JSON encoding of v under key with the configured TTL.
func (c *RecordCache) Set(ctx context.Context, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cache entry: %w", err)
	}
	return nil
}

// Get decodes the entry under key into dst. It returns false on a miss.
func (c *RecordCache) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get cache entry: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	return true, nil
}

// Delete invalidates the given keys. Missing keys are not an error.
func (c *RecordCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete cache entries: %w", err)
	}
	return nil
}

// Ping reports cache reachability for health checks.
func (c *RecordCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
