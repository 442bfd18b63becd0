package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogClient defines the interface for the external product store.
// The store is eventually consistent and read-only from this service;
// transport failures must surface as errors, never as an empty catalog.
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]Product, error)
}
