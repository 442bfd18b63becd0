package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pcforge/backend/internal/domain"
	"github.com/pcforge/backend/internal/infrastructure/cache"
	"github.com/shopspring/decimal"
)

func TestFindByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("matches aliases against dirty category labels", func(t *testing.T) {
		client := &stubCatalog{products: []domain.Product{
			testProduct("1", "AMD Ryzen 5 7600", "cpus", 200, nil),
			testProduct("2", "Some Processor Deal", "Misc", 150, nil),
			testProduct("3", "Fractal North", "Case", 120, nil),
		}}
		svc := newTestCatalogService(client)

		got, err := svc.FindByCategory(ctx, "cpu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
	})

	t.Run("matches aliases against product names", func(t *testing.T) {
		client := &stubCatalog{products: []domain.Product{
			testProduct("1", "GeForce RTX 4070 12GB", "Components", 550, nil),
		}}
		svc := newTestCatalogService(client)

		got, err := svc.FindByCategory(ctx, "gpu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
	})

	t.Run("sorts ascending by price", func(t *testing.T) {
		client := &stubCatalog{products: am5Catalog()}
		svc := newTestCatalogService(client)

		got, err := svc.FindByCategory(ctx, "cpu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Price.LessThan(got[i-1].Price) {
				t.Errorf("result not sorted by price: %s before %s",
					got[i-1].Price, got[i].Price)
			}
		}
		if got[0].ID != "cpu-1" {
			t.Errorf("cheapest = %s, want cpu-1", got[0].ID)
		}
	})

	t.Run("returns empty slice not error for zero matches", func(t *testing.T) {
		client := &stubCatalog{products: []domain.Product{
			testProduct("1", "Fractal North", "Case", 120, nil),
		}}
		svc := newTestCatalogService(client)

		got, err := svc.FindByCategory(ctx, "psu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		client := &stubCatalog{err: domain.ErrCatalogUnavailable}
		svc := newTestCatalogService(client)

		_, err := svc.FindByCategory(ctx, "cpu")
		if !errors.Is(err, domain.ErrCatalogUnavailable) {
			t.Errorf("error = %v, want ErrCatalogUnavailable", err)
		}
	})

	t.Run("serves repeat lookups from cache", func(t *testing.T) {
		client := &stubCatalog{products: am5Catalog()}
		svc := NewCatalogService(client, cache.NewMemoryCache(), CatalogServiceConfig{
			CacheTTL: time.Minute,
		})

		if _, err := svc.FindByCategory(ctx, "cpu"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.FindByCategory(ctx, "gpu"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.calls != 1 {
			t.Errorf("store calls = %d, want 1", client.calls)
		}
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("free text matches name brand category or id", func(t *testing.T) {
		client := &stubCatalog{products: am5Catalog()}
		svc := newTestCatalogService(client)

		got, err := svc.Search(ctx, "ryzen", domain.SearchFilters{}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
	})

	t.Run("structured filters AND together", func(t *testing.T) {
		client := &stubCatalog{products: am5Catalog()}
		svc := newTestCatalogService(client)

		maxPrice := decimal.NewFromInt(300)
		got, err := svc.Search(ctx, "", domain.SearchFilters{
			Category: "gpu",
			MaxPrice: &maxPrice,
		}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].ID != "gpu-1" {
			t.Errorf("result = %s, want gpu-1", got[0].ID)
		}
	})

	t.Run("maxPrice is inclusive", func(t *testing.T) {
		client := &stubCatalog{products: am5Catalog()}
		svc := newTestCatalogService(client)

		maxPrice := decimal.NewFromInt(200)
		got, err := svc.Search(ctx, "", domain.SearchFilters{
			Category: "cpu",
			MaxPrice: &maxPrice,
		}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "cpu-1" {
			t.Errorf("got %v, want exactly cpu-1 at the $200 bound", got)
		}
	})

	t.Run("socket filter matches normalized key exactly", func(t *testing.T) {
		client := &stubCatalog{products: am5Catalog()}
		svc := newTestCatalogService(client)

		got, err := svc.Search(ctx, "", domain.SearchFilters{Socket: "LGA1700"}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "cpu-3" {
			t.Errorf("got %v, want exactly cpu-3", got)
		}
	})

	t.Run("limit defaults to 10 and bounds results", func(t *testing.T) {
		var products []domain.Product
		for i := 0; i < 25; i++ {
			products = append(products, testProduct("id", "Generic CPU", "CPU", 100, nil))
		}
		client := &stubCatalog{products: products}
		svc := newTestCatalogService(client)

		got, err := svc.Search(ctx, "", domain.SearchFilters{}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 10 {
			t.Errorf("len = %d, want default limit 10", len(got))
		}

		got, err = svc.Search(ctx, "", domain.SearchFilters{}, -3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 10 {
			t.Errorf("len = %d, want default limit 10 for negative limit", len(got))
		}

		got, err = svc.Search(ctx, "", domain.SearchFilters{}, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 5 {
			t.Errorf("len = %d, want 5", len(got))
		}
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	client := &stubCatalog{products: am5Catalog()}
	svc := newTestCatalogService(client)

	t.Run("exact id wins", func(t *testing.T) {
		got, err := svc.Resolve(ctx, "cpu-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "cpu-2" {
			t.Errorf("ID = %s, want cpu-2", got.ID)
		}
	})

	t.Run("exact name match is case-insensitive", func(t *testing.T) {
		got, err := svc.Resolve(ctx, "amd ryzen 7 7700x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "cpu-2" {
			t.Errorf("ID = %s, want cpu-2", got.ID)
		}
	})

	t.Run("partial name match falls through", func(t *testing.T) {
		got, err := svc.Resolve(ctx, "rtx 4070")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "gpu-2" {
			t.Errorf("ID = %s, want gpu-2", got.ID)
		}
	})

	t.Run("unknown identifier is ErrProductNotFound", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "warp-drive")
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("blank identifier is ErrInvalidRequest", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "  ")
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})
}
