package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a Redis client as a Store. Redis failures degrade to
// cache misses; the caller falls through to the live lookup.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (c *redisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Redis GET error for %s: %v", key, err)
		return nil, false
	}
	return payload, true
}

func (c *redisStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("Redis SET error for %s: %v", key, err)
	}
}
