package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/pcforge/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Optimization targets accepted by the recommender. Anything else behaves
// as balanced; the conversational caller sends free-ish text.
const (
	TargetBalanced    = "balanced"
	TargetPerformance = "performance"
)

// maxUpgradeRounds bounds the greedy upgrade phase. The round count and the
// GPU-then-CPU order are observable contract, pinned by tests.
const maxUpgradeRounds = 3

var (
	// requiredCategories must each yield at least one candidate or the
	// build fails; selection order matters because later phases key off
	// earlier choices (socket, memory type)
	requiredCategories = []string{"cpu", "motherboard", "ram"}

	// optionalCategories are filled cheapest-first and skipped silently
	// when the catalog has nothing for them
	optionalCategories = []string{"storage", "gpu", "psu", "case"}

	// upgradeCategories are attempted in this order every upgrade round
	upgradeCategories = []string{"gpu", "cpu"}

	// partOrder fixes the category order of the returned parts list
	partOrder = []string{"cpu", "motherboard", "ram", "storage", "gpu", "psu", "case"}
)

// categoryFailureReasons names the infeasible outcome per required category
var categoryFailureReasons = map[string]string{
	"cpu":         "No CPUs available",
	"motherboard": "No motherboards available",
	"ram":         "No RAM available",
}

// BuildServiceConfig holds configuration for the build recommender
type BuildServiceConfig struct {
	EnableDebugLogging bool
}

// BuildService recommends a complete, budget-respecting parts list:
// cheapest compatible baseline first, then bounded greedy upgrades when
// the caller optimizes for performance
type BuildService struct {
	catalog            *CatalogService
	checker            *CompatibilityChecker
	enableDebugLogging bool
}

// NewBuildService creates a new build recommender with dependencies
func NewBuildService(catalog *CatalogService, config BuildServiceConfig) *BuildService {
	return &BuildService{
		catalog:            catalog,
		checker:            NewCompatibilityChecker(),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// buildState carries the per-request selection state through the phases.
// candidates memoizes one catalog fetch per category so upgrade rounds
// never re-query the store; nothing here is shared between requests.
type buildState struct {
	candidates map[string][]domain.Product
	picks      map[string]domain.Product
	spend      decimal.Decimal
}

// fetch returns the candidate list for a category, cheapest first,
// fetching it at most once per request
func (s *BuildService) fetch(ctx context.Context, state *buildState, tag string) ([]domain.Product, error) {
	if list, ok := state.candidates[tag]; ok {
		return list, nil
	}
	list, err := s.catalog.FindByCategory(ctx, tag)
	if err != nil {
		return nil, err
	}
	state.candidates[tag] = list
	return list, nil
}

// Recommend builds a parts list for the given budget and optimization
// target. Infeasible builds (empty required category, baseline over
// budget) come back as ok:false results; only store faults are errors.
func (s *BuildService) Recommend(ctx context.Context, budget decimal.Decimal, target string) (*domain.BuildResult, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if target != TargetPerformance {
		target = TargetBalanced
	}

	state := &buildState{
		candidates: make(map[string][]domain.Product),
		picks:      make(map[string]domain.Product),
	}

	// Phase 1-3: required categories, cheapest first with a
	// compatibility-preferring pick for motherboard and RAM
	for _, tag := range requiredCategories {
		list, err := s.fetch(ctx, state, tag)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return s.infeasible(categoryFailureReasons[tag], target, budget, state), nil
		}

		pick := list[0]
		switch tag {
		case "motherboard":
			pick = preferMatching(list, specValue(state.picks["cpu"], "socket"), func(p domain.Product) string {
				return specValue(p, "socket")
			})
		case "ram":
			pick = preferMatching(list, memoryTypeValue(state.picks["motherboard"]), memoryTypeValue)
		}

		state.picks[tag] = pick
		state.spend = state.spend.Add(pick.Price)
	}

	// Phase 4: remaining categories, cheapest available, skipped silently
	// when the catalog has none
	for _, tag := range optionalCategories {
		list, err := s.fetch(ctx, state, tag)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			continue
		}
		state.picks[tag] = list[0]
		state.spend = state.spend.Add(list[0].Price)
	}

	// Phase 5: budget gate. Never return a partial or over-budget build
	// as success.
	if state.spend.GreaterThan(budget) {
		reason := fmt.Sprintf("Baseline build costs $%s, which exceeds the $%s budget",
			state.spend.StringFixed(2), budget.StringFixed(2))
		return s.infeasible(reason, target, budget, state), nil
	}

	// Phase 6: bounded greedy upgrades toward the performance target
	if target == TargetPerformance {
		if err := s.upgrade(ctx, state, budget); err != nil {
			return nil, err
		}
	}

	// Phase 7: final verdict over the exact parts list returned
	parts := make([]domain.BuildPart, 0, len(state.picks))
	products := make([]domain.Product, 0, len(state.picks))
	for _, tag := range partOrder {
		if pick, ok := state.picks[tag]; ok {
			parts = append(parts, domain.BuildPart{Category: tag, Product: pick})
			products = append(products, pick)
		}
	}
	verdict := s.checker.Check(products)

	if s.enableDebugLogging {
		log.Printf("[BUILD] target=%s spend=%s budget=%s compatible=%v",
			target, state.spend.StringFixed(2), budget.StringFixed(2), verdict.OK)
	}

	return &domain.BuildResult{
		OK:            true,
		Target:        target,
		Budget:        budget,
		Spend:         state.spend,
		Leftover:      budget.Sub(state.spend),
		Parts:         parts,
		Compatibility: &verdict,
	}, nil
}

// upgrade runs up to maxUpgradeRounds greedy rounds, attempting GPU then
// CPU each round. A candidate must strictly improve the perf score, fit
// its price delta within remaining headroom, and keep the baseline's
// socket/memory-type relationships intact. No eligible candidate is a
// no-op, not a failure; a fully idle round ends the phase early.
func (s *BuildService) upgrade(ctx context.Context, state *buildState, budget decimal.Decimal) error {
	for round := 1; round <= maxUpgradeRounds; round++ {
		upgraded := false

		for _, tag := range upgradeCategories {
			current, ok := state.picks[tag]
			if !ok {
				continue
			}

			list, err := s.fetch(ctx, state, tag)
			if err != nil {
				return err
			}

			currentScore := perfScore(current)
			headroom := budget.Sub(state.spend)

			var eligible []domain.Product
			for _, candidate := range list {
				if candidate.ID == current.ID {
					continue
				}
				if perfScore(candidate) <= currentScore {
					continue
				}
				if candidate.Price.Sub(current.Price).GreaterThan(headroom) {
					continue
				}
				if !s.upgradePreservesCompatibility(tag, candidate, state) {
					continue
				}
				eligible = append(eligible, candidate)
			}

			if len(eligible) == 0 {
				continue
			}

			sort.SliceStable(eligible, func(i, j int) bool {
				return perfScore(eligible[i]) > perfScore(eligible[j])
			})
			best := eligible[0]

			if s.enableDebugLogging {
				log.Printf("[BUILD] Round %d: upgrading %s %q -> %q (+%s)",
					round, tag, current.Name, best.Name, best.Price.Sub(current.Price).StringFixed(2))
			}

			state.spend = state.spend.Add(best.Price.Sub(current.Price))
			state.picks[tag] = best
			upgraded = true
		}

		if !upgraded {
			break
		}
	}

	return nil
}

// upgradePreservesCompatibility re-validates the rule a candidate
// participates in against the already-chosen counterpart. Rules with an
// absent spec on either side are skipped, mirroring the checker.
func (s *BuildService) upgradePreservesCompatibility(tag string, candidate domain.Product, state *buildState) bool {
	if tag != "cpu" {
		return true
	}
	board, ok := state.picks["motherboard"]
	if !ok {
		return true
	}
	candidateSocket := specValue(candidate, "socket")
	boardSocket := specValue(board, "socket")
	if candidateSocket == "" || boardSocket == "" {
		return true
	}
	return looseEqual(candidateSocket, boardSocket)
}

// preferMatching picks the first candidate whose keyed spec loosely equals
// the wanted value; both sides must be non-empty to count as a match.
// Falls back to the cheapest candidate so that a missing counterpart never
// fails the build; the final compatibility check discloses the mismatch.
func preferMatching(list []domain.Product, want string, key func(domain.Product) string) domain.Product {
	if want != "" {
		for _, p := range list {
			if have := key(p); have != "" && looseEqual(have, want) {
				return p
			}
		}
	}
	return list[0]
}

// infeasible assembles the soft-failure result for a build that cannot be
// constructed, carrying whatever spend had accumulated
func (s *BuildService) infeasible(reason, target string, budget decimal.Decimal, state *buildState) *domain.BuildResult {
	if s.enableDebugLogging {
		log.Printf("[BUILD] Infeasible: %s", reason)
	}
	return &domain.BuildResult{
		OK:       false,
		Reason:   reason,
		Target:   target,
		Budget:   budget,
		Spend:    state.spend,
		Leftover: budget.Sub(state.spend),
	}
}
