package domain

import "github.com/shopspring/decimal"

// Product represents a catalog item from the external product store.
// The store is read-only to this service; category labels are human-authored
// and dirty, so category membership is always a fuzzy match downstream.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Price          decimal.Decimal   `json:"price"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	InStock        bool              `json:"inStock"`
	StockQuantity  int               `json:"stockQuantity"`
	Images         []ProductImage    `json:"images,omitempty"`
	Rating         Rating            `json:"rating"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// ProductImage is a display-only image reference
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Rating carries the store's review aggregate (display only)
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// SearchFilters are the structured filters accepted by product search.
// Category and Brand match as case-insensitive substrings; Socket and
// MemoryType match exactly against the normalized specification keys
// "socket" and "memory_type"; MaxPrice is an inclusive upper bound.
// All present filters combine with logical AND.
type SearchFilters struct {
	Category   string           `json:"category,omitempty"`
	Brand      string           `json:"brand,omitempty"`
	Socket     string           `json:"socket,omitempty"`
	MemoryType string           `json:"memory_type,omitempty"`
	MaxPrice   *decimal.Decimal `json:"maxPrice,omitempty"`
}
