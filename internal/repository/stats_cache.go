package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hostelcare/complaints-backend/internal/config"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// RedisStatsCache keeps the admin dashboard counters in Redis.
type RedisStatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStatsCache creates a RedisStatsCache.
func NewRedisStatsCache(rdb *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{rdb: rdb, ttl: ttl}
}

// Version returns the current generation, 0 before the first Invalidate.
func (c *RedisStatsCache) Version(ctx context.Context) (int64, error) {
	version, err := c.rdb.Get(ctx, config.CacheKey.ComplaintStatsVersionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// Get returns the stats cached for version, or ErrNotFound on a miss.
func (c *RedisStatsCache) Get(ctx context.Context, version int64) (*model.ComplaintStats, error) {
	raw, err := c.rdb.Get(ctx, config.CacheKey.ComplaintStatsKey(version)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var stats model.ComplaintStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Set stores stats for version until the TTL expires. A write for a version
// that has since been invalidated is never read.
func (c *RedisStatsCache) Set(ctx context.Context, version int64, stats *model.ComplaintStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, config.CacheKey.ComplaintStatsKey(version), raw, c.ttl).Err()
}

// Invalidate starts a new generation after any write that changes the
// counters. Older generations expire with their TTL.
func (c *RedisStatsCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, config.CacheKey.ComplaintStatsVersionKey()).Err()
}
