package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/pcforge/backend/internal/domain"
)

// defaultSearchLimit bounds search results when the caller passes no usable limit
const defaultSearchLimit = 10

// productListCacheKey is where the full catalog fetch is memoized
const productListCacheKey = "catalog:products"

// categoryAliases maps each canonical part category tag to the substrings
// that identify it in the store's dirty category/name fields. Matching is
// deliberately recall-favoring: false positives are tolerated, false
// negatives are not, because the source labels are inconsistent.
var categoryAliases = map[string][]string{
	"cpu":         {"cpu", "processor", "ryzen", "core i", "threadripper", "xeon"},
	"motherboard": {"motherboard", "mobo", "mainboard"},
	"ram":         {"ram", "memory", "system memory", "ddr", "ddr4", "ddr5", "dimm"},
	"storage":     {"storage", "ssd", "hdd", "nvme", "hard drive", "solid state", "m.2"},
	"gpu":         {"gpu", "graphics", "video card", "geforce", "radeon", "rtx", "gtx", "arc"},
	"psu":         {"psu", "power supply", "smps"},
	"case":        {"case", "chassis", "tower"},
	"cooling":     {"cooling", "cooler", "aio", "heatsink", "liquid"},
}

// matchesCategory reports whether a product belongs to a category tag:
// any alias appearing case-insensitively in either the category field or
// the product name counts as membership
func matchesCategory(p domain.Product, tag string) bool {
	aliases, ok := categoryAliases[tag]
	if !ok {
		aliases = []string{tag}
	}

	category := strings.ToLower(p.Category)
	name := strings.ToLower(p.Name)
	for _, alias := range aliases {
		if strings.Contains(category, alias) || strings.Contains(name, alias) {
			return true
		}
	}
	return false
}

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// CatalogService provides alias-tolerant lookup and search over the
// external product store, memoizing the store's full list fetch
type CatalogService struct {
	client             domain.CatalogClient
	cache              domain.CacheRepository
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(
	client domain.CatalogClient,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &CatalogService{
		client:             client,
		cache:              cache,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// listProducts returns the full catalog, served from cache when fresh.
// Store failures propagate; they are never reported as an empty catalog.
func (s *CatalogService) listProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if value, err := s.cache.Get(ctx, productListCacheKey); err == nil {
			if products, ok := value.([]domain.Product); ok {
				return products, nil
			}
		}
	}

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, productListCacheKey, products, s.cacheTTL); err != nil && s.enableDebugLogging {
			log.Printf("[CATALOG] Failed to cache product list: %v", err)
		}
	}

	return products, nil
}

// FindByCategory returns all products matching a category tag, cheapest
// first. Zero matches is an empty slice, not an error.
func (s *CatalogService) FindByCategory(ctx context.Context, tag string) ([]domain.Product, error) {
	products, err := s.listProducts(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.Product
	for _, p := range products {
		if matchesCategory(p, tag) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Price.LessThan(matched[j].Price)
	})

	if s.enableDebugLogging {
		log.Printf("[CATALOG] FindByCategory(%q): %d matches", tag, len(matched))
	}

	return matched, nil
}

// Search runs a keyword + structured-filter query against the catalog.
// Free text ORs over name, brand, category and id; structured filters AND
// together. Results keep catalog order, bounded by limit.
func (s *CatalogService) Search(ctx context.Context, query string, filters domain.SearchFilters, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	products, err := s.listProducts(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Product, 0, limit)
	for _, p := range products {
		if !matchesQuery(p, query) {
			continue
		}
		if !matchesFilters(p, filters) {
			continue
		}
		results = append(results, p)
		if len(results) >= limit {
			break
		}
	}

	if s.enableDebugLogging {
		log.Printf("[CATALOG] Search(%q): %d results (limit %d)", query, len(results), limit)
	}

	return results, nil
}

// matchesQuery checks the free-text part of a search (empty matches all)
func matchesQuery(p domain.Product, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.ID), query)
}

// matchesFilters checks every present structured filter (logical AND)
func matchesFilters(p domain.Product, filters domain.SearchFilters) bool {
	if filters.Category != "" && !matchesCategory(p, strings.ToLower(filters.Category)) {
		return false
	}
	if filters.Brand != "" && !strings.Contains(strings.ToLower(p.Brand), strings.ToLower(filters.Brand)) {
		return false
	}
	if filters.Socket != "" && specValue(p, "socket") != filters.Socket {
		return false
	}
	if filters.MemoryType != "" && specValue(p, "memory_type") != filters.MemoryType {
		return false
	}
	if filters.MaxPrice != nil && p.Price.GreaterThan(*filters.MaxPrice) {
		return false
	}
	return true
}

// Resolve finds a single product by identifier, trying in order: exact id,
// case-insensitive exact name, case-insensitive partial name. First hit in
// catalog order wins; no hit is ErrProductNotFound.
func (s *CatalogService) Resolve(ctx context.Context, idOrName string) (*domain.Product, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.listProducts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == idOrName {
			return &products[i], nil
		}
	}
	for i := range products {
		if strings.EqualFold(products[i].Name, idOrName) {
			return &products[i], nil
		}
	}
	needle := strings.ToLower(idOrName)
	for i := range products {
		if strings.Contains(strings.ToLower(products[i].Name), needle) {
			return &products[i], nil
		}
	}

	return nil, domain.ErrProductNotFound
}
