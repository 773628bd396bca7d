package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dealsmarket/config"
	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewCategoryCache_DisabledWithoutAddr(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cache := NewCategoryCache(Params{Lc: lc, Config: &config.Config{}, Logger: slog.Default()})

	_, ok := cache.(noopCategoryCache)
	require.True(t, ok)

	_, err := cache.GetActive(context.Background())
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, cache.SetActive(context.Background(), []*entity.Category{{Slug: "home"}}))
	assert.NoError(t, cache.Invalidate(context.Background()))
}

func TestRedisCategoryCache_UnreachableServerIsNotAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewRedisCategoryCache(client, time.Minute)

	_, err := cache.GetActive(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)

	assert.Error(t, cache.SetActive(context.Background(), nil))
}
