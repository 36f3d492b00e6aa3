package leaverequest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const statisticsCacheKey = "leave_request_statistics"

// StatisticsCache is a short-TTL read-through cache for the dashboard
// statistics query. It is advisory only: a cache failure falls back to the
// database, and every committed mutation invalidates the key.
type StatisticsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

func NewStatisticsCache(rdb *redis.Client, logger ...*zap.Logger) *StatisticsCache {
	l := zap.L().Named("leaverequest.statscache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.statscache")
	}
	return &StatisticsCache{rdb: rdb, ttl: 30 * time.Second, logger: l}
}

// Fetch returns the cached statistics or runs loader once per concurrent
// burst and stores its result.
func (c *StatisticsCache) Fetch(
	ctx context.Context,
	loader func(ctx context.Context) (StatisticsResponse, error),
) (StatisticsResponse, error) {
	if c.rdb == nil {
		return loader(ctx)
	}

	if cached, ok := c.get(ctx); ok {
		return cached, nil
	}

	result, err, _ := c.group.Do(statisticsCacheKey, func() (any, error) {
		if cached, ok := c.get(ctx); ok {
			return cached, nil
		}

		fresh, err := loader(ctx)
		if err != nil {
			return StatisticsResponse{}, err
		}
		c.set(ctx, fresh)
		return fresh, nil
	})
	if err != nil {
		return StatisticsResponse{}, err
	}
	return result.(StatisticsResponse), nil
}

func (c *StatisticsCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, statisticsCacheKey).Err(); err != nil {
		c.logger.Warn("invalidate statistics cache failed", zap.Error(err))
	}
}

func (c *StatisticsCache) get(ctx context.Context) (StatisticsResponse, bool) {
	raw, err := c.rdb.Get(ctx, statisticsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("read statistics cache failed", zap.Error(err))
		}
		return StatisticsResponse{}, false
	}

	var stats StatisticsResponse
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.Warn("decode statistics cache failed", zap.Error(err))
		return StatisticsResponse{}, false
	}
	return stats, true
}

func (c *StatisticsCache) set(ctx context.Context, stats StatisticsResponse) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, statisticsCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("write statistics cache failed", zap.Error(err))
	}
}
