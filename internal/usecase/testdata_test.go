package usecase

import (
	"context"

	"github.com/pcforge/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// stubCatalog is an in-memory CatalogClient for usecase tests
type stubCatalog struct {
	products []domain.Product
	err      error
	calls    int
}

func (s *stubCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func testProduct(id, name, category string, price float64, specs map[string]string) domain.Product {
	return domain.Product{
		ID:             id,
		Name:           name,
		Category:       category,
		Brand:          "TestBrand",
		Price:          decimal.NewFromFloat(price),
		InStock:        true,
		StockQuantity:  5,
		Specifications: specs,
	}
}

func newTestCatalogService(client domain.CatalogClient) *CatalogService {
	return NewCatalogService(client, nil, CatalogServiceConfig{})
}

// am5Catalog is a coherent AM5 parts set used by search, compare and
// build tests. Prices: CPU 200, board 150, RAM 80, storage 60, GPU 300,
// PSU 90, case 120 (baseline total 1000).
func am5Catalog() []domain.Product {
	return []domain.Product{
		testProduct("cpu-1", "AMD Ryzen 5 7600", "CPU", 200, map[string]string{
			"Socket": "AM5", "Perf Score": "7200",
		}),
		testProduct("cpu-2", "AMD Ryzen 7 7700X", "CPU", 340, map[string]string{
			"Socket": "AM5", "Perf Score": "8900",
		}),
		testProduct("cpu-3", "Intel Core i5-13600K", "CPU", 280, map[string]string{
			"Socket": "LGA1700", "Perf Score": "9400",
		}),
		testProduct("mobo-1", "MSI B650 Tomahawk", "Motherboard", 150, map[string]string{
			"Socket": "AM5", "Memory Type": "DDR5",
		}),
		testProduct("ram-1", "Corsair Vengeance 32GB", "RAM", 80, map[string]string{
			"Memory Type": "DDR5",
		}),
		testProduct("ssd-1", "Samsung 980 1TB NVMe SSD", "Storage", 60, nil),
		testProduct("gpu-1", "NVIDIA GeForce RTX 4060", "GPU", 300, map[string]string{
			"Perf Score": "10500",
		}),
		testProduct("gpu-2", "NVIDIA GeForce RTX 4070", "GPU", 550, map[string]string{
			"Perf Score": "14800",
		}),
		testProduct("psu-1", "Corsair RM750e PSU", "PSU", 90, nil),
		testProduct("case-1", "Fractal North Case", "Case", 120, nil),
	}
}
