package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"floatchat-be/internal/entity"
	"floatchat-be/internal/pkg/logger"
	"floatchat-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "floatchat:"

// RedisProfileCache shares profile results between API replicas. Any Redis
// failure degrades to a cache miss.
type RedisProfileCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

var _ contract.ProfileCache = (*RedisProfileCache)(nil)

func NewRedisProfileCache(rdb *redis.Client, ttl time.Duration, log logger.ILogger) *RedisProfileCache {
	return &RedisProfileCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *RedisProfileCache) Get(ctx context.Context, key string) ([]*entity.Profile, bool) {
	raw, err := c.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("CACHE", "redis get failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return nil, false
	}

	var profiles []*entity.Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		c.logger.Warn("CACHE", "dropping undecodable cache entry", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, false
	}
	return profiles, true
}

func (c *RedisProfileCache) Set(ctx context.Context, key string, profiles []*entity.Profile) {
	if profiles == nil {
		profiles = []*entity.Profile{}
	}
	raw, err := json.Marshal(profiles)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("CACHE", "redis set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
