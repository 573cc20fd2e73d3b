package infra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// JSONCache stores JSON values under a key prefix. A nil client turns every
// call into a miss, so callers need no special casing when Redis is absent.
type JSONCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache(rdb *redis.Client, prefix string, ttl time.Duration) *JSONCache {
	return &JSONCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Get decodes the cached value into dst and reports whether it was found.
func (c *JSONCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *JSONCache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.prefix+key, raw, c.ttl).Err()
}

// Invalidate drops every key under the prefix.
func (c *JSONCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
