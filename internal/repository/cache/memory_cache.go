package cache

import (
	"context"
	"time"

	"floatchat-be/internal/entity"
	"floatchat-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type MemoryProfileCache struct {
	cache *cache.Cache
}

var _ contract.ProfileCache = (*MemoryProfileCache)(nil)

func NewMemoryProfileCache(ttl time.Duration) *MemoryProfileCache {
	// Purge expired days twice per TTL window
	return &MemoryProfileCache{
		cache: cache.New(ttl, ttl/2),
	}
}

func (c *MemoryProfileCache) Get(_ context.Context, key string) ([]*entity.Profile, bool) {
	if x, found := c.cache.Get(key); found {
		return x.([]*entity.Profile), true
	}
	return nil, false
}

func (c *MemoryProfileCache) Set(_ context.Context, key string, profiles []*entity.Profile) {
	c.cache.Set(key, profiles, cache.DefaultExpiration)
}
