package catalog

import (
	"strconv"

	"github.com/pcforge/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// listResponse is the store's product list payload
type listResponse struct {
	Success  bool         `json:"success"`
	Count    int          `json:"count"`
	Total    int          `json:"total"`
	Products []rawProduct `json:"products"`
	Error    string       `json:"error,omitempty"`
}

// rawProduct mirrors a product document as the store serves it.
// Specification values are free text in principle but the store has let
// numbers and bools slip in, so they arrive untyped.
type rawProduct struct {
	ID            string                 `json:"_id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Price         decimal.Decimal        `json:"price"`
	Category      string                 `json:"category"`
	Brand         string                 `json:"brand"`
	InStock       bool                   `json:"inStock"`
	StockQuantity int                    `json:"stockQuantity"`
	Images        []rawImage             `json:"images"`
	Rating        rawRating              `json:"rating"`
	Specs         map[string]interface{} `json:"specifications"`
}

type rawImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type rawRating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// mapToProduct converts a store document to the domain Product model
func mapToProduct(raw *rawProduct) domain.Product {
	product := domain.Product{
		ID:            raw.ID,
		Name:          raw.Name,
		Description:   raw.Description,
		Price:         raw.Price,
		Category:      raw.Category,
		Brand:         raw.Brand,
		InStock:       raw.InStock,
		StockQuantity: raw.StockQuantity,
		Rating: domain.Rating{
			Average: raw.Rating.Average,
			Count:   raw.Rating.Count,
		},
	}

	for _, img := range raw.Images {
		product.Images = append(product.Images, domain.ProductImage{URL: img.URL, Alt: img.Alt})
	}

	if len(raw.Specs) > 0 {
		product.Specifications = make(map[string]string, len(raw.Specs))
		for key, value := range raw.Specs {
			product.Specifications[key] = coerceSpecValue(value)
		}
	}

	return product
}

// coerceSpecValue renders an untyped specification value as a string.
// Absent/null values become the empty string rather than failing.
func coerceSpecValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}
