package dashboardservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"assetflow/providers"
	metricsprovider "assetflow/providers/metricsProvider"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const versionKey = "dashboard:version"

// Cache keeps dashboard aggregates in Redis under a version prefix. Bumping
// the version orphans every cached aggregate at once; the TTL reclaims them.
type Cache struct {
	redis   providers.RedisProvider
	ttl     time.Duration
	group   singleflight.Group
	metrics *metricsprovider.Metrics
	logger  providers.ZapLoggerProvider
}

func NewCache(store providers.RedisProvider, ttl time.Duration, metrics *metricsprovider.Metrics, logger providers.ZapLoggerProvider) *Cache {
	return &Cache{redis: store, ttl: ttl, metrics: metrics, logger: logger}
}

func (c *Cache) version(ctx context.Context) (string, error) {
	v, err := c.redis.Get(ctx, versionKey)
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return v, err
}

// Invalidate bumps the version so the next read recomputes.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if _, err := c.redis.Incr(ctx, versionKey); err != nil {
		c.logger.GetLogger().Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

// cached returns the aggregate stored under name, loading and storing it on
// a miss. Concurrent misses for the same key share one load. Redis failures
// degrade to an uncached load.
func cached[T any](ctx context.Context, c *Cache, name string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}
	logger := c.logger.GetLogger()

	version, err := c.version(ctx)
	if err != nil {
		logger.Warn("dashboard cache unavailable", zap.Error(err))
		return load(ctx)
	}
	key := "dashboard:v" + version + ":" + name

	if raw, err := c.redis.Get(ctx, key); err == nil {
		var value T
		if err := json.Unmarshal([]byte(raw), &value); err == nil {
			c.metrics.ObserveCache(true)
			return value, nil
		}
		logger.Warn("discarding unreadable dashboard cache entry", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
	}
	c.metrics.ObserveCache(false)

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(value); err == nil {
			if err := c.redis.Set(ctx, key, raw, c.ttl); err != nil {
				logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

func daysKey(name string, days int) string {
	return name + ":" + strconv.Itoa(days)
}
