package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/pcforge/backend/internal/domain"
)

// CompareService resolves a list of product identifiers and derives
// summary facts over whatever resolved
type CompareService struct {
	catalog            *CatalogService
	enableDebugLogging bool
}

// NewCompareService creates a new comparison service
func NewCompareService(catalog *CatalogService, enableDebugLogging bool) *CompareService {
	return &CompareService{
		catalog:            catalog,
		enableDebugLogging: enableDebugLogging,
	}
}

// Compare resolves each identifier independently and summarizes the result.
// Unresolved identifiers are dropped silently; the result reflects only
// what was found. Store failures propagate.
func (s *CompareService) Compare(ctx context.Context, identifiers []string) (*domain.ComparisonResult, error) {
	result := &domain.ComparisonResult{Items: []domain.Product{}}

	for _, id := range identifiers {
		product, err := s.catalog.Resolve(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrInvalidRequest) {
				if s.enableDebugLogging {
					log.Printf("[COMPARE] Dropping unresolved identifier %q", id)
				}
				continue
			}
			return nil, err
		}
		result.Items = append(result.Items, *product)
	}

	if len(result.Items) == 0 {
		return result, nil
	}

	cheapest := 0
	highestPerf := 0
	bestScore := perfScore(result.Items[0])
	for i := 1; i < len(result.Items); i++ {
		// Strict comparisons: ties keep the earlier item
		if result.Items[i].Price.LessThan(result.Items[cheapest].Price) {
			cheapest = i
		}
		if score := perfScore(result.Items[i]); score > bestScore {
			bestScore = score
			highestPerf = i
		}
	}

	result.Summary.Cheapest = &result.Items[cheapest]
	result.Summary.HighestPerf = &result.Items[highestPerf]

	return result, nil
}
