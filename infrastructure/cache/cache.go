package cache

import (
	"context"
	"fmt"
	"time"

	"content-pipeline/infrastructure/configuration"
	"content-pipeline/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache connects to Redis. An empty address disables caching and returns a nil client.
func NewCache(ctx context.Context, cfg configuration.RedisClient) (*redis.Client, error) {
	if cfg.Addr == "" {
		logger.GetLogger().Info("REDIS_ADDR not set - trend cache disabled")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	logger.GetLogger().WithField("addr", cfg.Addr).Info("Redis client initialized successfully.")
	return client, nil
}
