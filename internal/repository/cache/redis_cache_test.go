package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"floatchat-be/internal/entity"
	"floatchat-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisProfileCache(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping redis test: REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	defer rdb.Close()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping redis test: %v", err)
	}

	c := NewRedisProfileCache(rdb, time.Minute, logger.NewNopLogger())
	key := "profiles:test-" + time.Now().Format("150405.000000")
	defer rdb.Del(ctx, redisKeyPrefix+key)

	_, found := c.Get(ctx, key)
	assert.False(t, found)

	when := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	c.Set(ctx, key, []*entity.Profile{{ProfileId: 3, Datetime: when, ProjectName: "ARGO INDIA"}})

	got, found := c.Get(ctx, key)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "ARGO INDIA", got[0].ProjectName)
	assert.True(t, when.Equal(got[0].Datetime))
}
