package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"content-pipeline/domain/model"
	"content-pipeline/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const trendKeyPrefix = "trends:top:"

// ITrendCache holds ranked trend listings. Cache failures are logged, never returned.
type ITrendCache interface {
	GetTop(ctx context.Context, niche string, limit int) ([]model.Trend, bool)
	SetTop(ctx context.Context, niche string, limit int, trends []model.Trend)
	Invalidate(ctx context.Context)
}

type TrendCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrendCache wraps client; a nil client turns every call into a miss or no-op.
func NewTrendCache(client *redis.Client, ttl time.Duration) ITrendCache {
	return &TrendCache{client: client, ttl: ttl}
}

func TopKey(niche string, limit int) string {
	return fmt.Sprintf("%s%s:%d", trendKeyPrefix, niche, limit)
}

func (c *TrendCache) GetTop(ctx context.Context, niche string, limit int) ([]model.Trend, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, TopKey(niche, limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().WithField("error", err).Warn("trend cache get failed")
		}
		return nil, false
	}
	var trends []model.Trend
	if err := json.Unmarshal(raw, &trends); err != nil {
		logger.GetLogger().WithField("error", err).Warn("trend cache entry corrupt")
		return nil, false
	}
	return trends, true
}

func (c *TrendCache) SetTop(ctx context.Context, niche string, limit int, trends []model.Trend) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(trends)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, TopKey(niche, limit), raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("trend cache set failed")
	}
}

// Invalidate drops every ranked listing; called whenever a trend is added.
func (c *TrendCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	var keys []string
	iter := c.client.Scan(ctx, 0, trendKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("trend cache scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("trend cache invalidate failed")
	}
}
