package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"idealPrice/domain"
	"idealPrice/pkg/logger"
	"idealPrice/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dataset:"

type DatasetLoader interface {
	LoadDataset(ctx context.Context, group domain.DatasetGroup) (domain.DatasetSource, error)
}

// DatasetCache is a read-through cache in front of another dataset store.
// Redis failures never fail a load; the inner store is consulted instead.
type DatasetCache struct {
	client *redis.Client
	inner  DatasetLoader
	ttl    time.Duration
}

func NewDatasetCache(client *redis.Client, inner DatasetLoader, ttl time.Duration) *DatasetCache {
	return &DatasetCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
	}
}

func Key(group domain.DatasetGroup) string {
	return keyPrefix + string(group)
}

func (c *DatasetCache) LoadDataset(ctx context.Context, group domain.DatasetGroup) (domain.DatasetSource, error) {
	if err := ctx.Err(); err != nil {
		return domain.DatasetSource{}, fmt.Errorf("context error: %w", err)
	}

	key := Key(group)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var src domain.DatasetSource
		if err := json.Unmarshal(data, &src); err == nil {
			metrics.DatasetCacheRequestsTotal.WithLabelValues(string(group), "hit").Inc()
			return src, nil
		}
		logger.Warn("discarding undecodable cached dataset", "key", key, "error", err)
		metrics.DatasetCacheRequestsTotal.WithLabelValues(string(group), "error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.DatasetCacheRequestsTotal.WithLabelValues(string(group), "miss").Inc()
	default:
		logger.Warn("dataset cache unavailable, reading backing store", "key", key, "error", err)
		metrics.DatasetCacheRequestsTotal.WithLabelValues(string(group), "error").Inc()
	}

	src, err := c.inner.LoadDataset(ctx, group)
	if err != nil {
		return domain.DatasetSource{}, err
	}

	payload, err := json.Marshal(src)
	if err != nil {
		logger.Warn("failed to encode dataset for cache", "key", key, "error", err)
		return src, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("failed to store dataset in cache", "key", key, "error", err)
	}

	return src, nil
}

// Invalidate drops the cached copies of both groups.
func (c *DatasetCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, Key(domain.GroupA), Key(domain.GroupB)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dataset cache: %w", err)
	}

	logger.Info("dataset cache invalidated")
	return nil
}
