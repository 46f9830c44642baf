package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

type redisCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisCache connects to the configured Redis server and verifies the
// connection with a ping. Startup fails on an unreachable Redis so that a
// misconfigured address is caught immediately rather than silently running
// uncached.
func NewRedisCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisCache").Str("address", cfg.RedisAddress).Msg("error connecting to redis")
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	log.Debug().Str("func", "NewRedisCache").Str("address", cfg.RedisAddress).Msg("connected to redis successfully")

	return &redisCache{
		client: client,
		logger: log,
	}, nil
}

// Get returns the cached value for key. Absent keys and backend failures
// both report a miss; only unexpected failures are logged.
func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache get failed, treating as miss")
		}
		return "", false
	}
	return value, true
}

// Set stores value under key with the given TTL. Failures are logged and
// swallowed: a missed write only costs one extra upstream request.
func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
