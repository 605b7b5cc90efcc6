package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/jakindah/motorshop-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// Cache is a thin read-through cache over Redis. A nil *Cache is valid and
// disables caching entirely, so callers never need to branch on whether
// Redis is configured.
type Cache struct {
	client *redis.Client
}

// NewCache connects to Redis using the given config. Returns nil (cache
// disabled) when no address is configured or the server is unreachable.
func NewCache(cfg config.RedisConfig) *Cache {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable, caching disabled: %v", err)
		return nil
	}

	log.Printf("Connected to Redis at %s", cfg.Addr)
	return &Cache{client: client}
}

// Get unmarshals the cached value for key into dest. Returns false when the
// cache is disabled, the key is missing, or the value cannot be decoded.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Cache get failed for %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("Cache decode failed for %s: %v", key, err)
		return false
	}
	return true
}

// Set stores value under key for the given TTL. Failures are logged and
// swallowed; the cache is never on the request's critical path.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Cache encode failed for %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Cache set failed for %s: %v", key, err)
	}
}

// Invalidate removes the given keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Cache invalidate failed: %v", err)
	}
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
