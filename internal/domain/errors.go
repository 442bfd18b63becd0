package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product cannot be resolved in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogUnavailable is returned when the catalog store request fails
	ErrCatalogUnavailable = errors.New("catalog store request failed")
)
