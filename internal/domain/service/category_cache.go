package service

import (
	"context"
	"errors"

	"dealsmarket/internal/domain/entity"
)

// ErrCacheMiss is returned when the cache holds no entry.
var ErrCacheMiss = errors.New("cache miss")

// CategoryCache caches the active category list, which changes rarely and is read on every listing page.
type CategoryCache interface {
	// GetActive returns the cached list or ErrCacheMiss.
	GetActive(ctx context.Context) ([]*entity.Category, error)

	// SetActive stores the list.
	SetActive(ctx context.Context, categories []*entity.Category) error

	// Invalidate drops the cached list.
	Invalidate(ctx context.Context) error
}
