// Package cache provides the key-value primitives backing the statistics
// cache and the redeemed-token nonce set.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	appConfig "github.com/clubsports/matchday/internal/config"
)

// ErrMiss indicates the key is not present in the cache.
var ErrMiss = errors.New("cache miss")

// Client is the minimal key-value surface the application depends on.
type Client interface {
	// Get returns the value stored at key, or ErrMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key with the given TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// SetNX stores value at key only if the key is absent.
	// Returns true if the key was set.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// Del removes the given keys.
	Del(ctx context.Context, keys ...string) error
}

type redisCache struct {
	rdb *redis.Client
}

// NewRedis creates a redis-backed client from configuration.
func NewRedis(cfg appConfig.RedisConfig) (Client, *redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	return &redisCache{rdb: rdb}, rdb, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return "", err
	}
	return value, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, key, value, ttl).Result()
}

func (c *redisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
