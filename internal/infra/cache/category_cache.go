// Package cache holds the Redis-backed read-through caches for reference data.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dealsmarket/config"
	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/domain/lifecycle"
	"dealsmarket/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyActiveCategories = "dealsmarket:categories:active"

// redisCategoryCache implements service.CategoryCache on a single Redis key.
type redisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCategoryCache wraps an existing client.
func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) service.CategoryCache {
	return &redisCategoryCache{client: client, ttl: ttl}
}

func (c *redisCategoryCache) GetActive(ctx context.Context) ([]*entity.Category, error) {
	data, err := c.client.Get(ctx, keyActiveCategories).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read category cache")
	}

	var categories []*entity.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		// A corrupt entry behaves like a miss and is overwritten on the next fill.
		return nil, service.ErrCacheMiss
	}

	return categories, nil
}

func (c *redisCategoryCache) SetActive(ctx context.Context, categories []*entity.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, keyActiveCategories, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write category cache")
	}

	return nil
}

func (c *redisCategoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, keyActiveCategories).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate category cache")
	}

	return nil
}

// noopCategoryCache always misses. It is used when Redis is not configured.
type noopCategoryCache struct{}

func (noopCategoryCache) GetActive(context.Context) ([]*entity.Category, error) {
	return nil, service.ErrCacheMiss
}

func (noopCategoryCache) SetActive(context.Context, []*entity.Category) error { return nil }

func (noopCategoryCache) Invalidate(context.Context) error { return nil }

// Params holds dependencies for the category cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCategoryCache returns a Redis cache when redis.addr is set, otherwise a no-op cache.
func NewCategoryCache(params Params) service.CategoryCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, category cache disabled")

		return noopCategoryCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional at runtime; an unreachable Redis only degrades reads.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, category reads will hit the database",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCategoryCache(client, cfg.CategoryTTL)
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCategoryCache),
)
