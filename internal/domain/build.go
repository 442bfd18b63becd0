package domain

import "github.com/shopspring/decimal"

// CompatibilityReport is the verdict produced by the compatibility checker.
// OK is true iff Issues is empty.
type CompatibilityReport struct {
	OK     bool     `json:"ok"`
	Issues []string `json:"issues,omitempty"`
}

// BuildPart pairs a selected product with the canonical category slot it fills
type BuildPart struct {
	Category string  `json:"category"`
	Product  Product `json:"product"`
}

// BuildResult is the outcome of a build recommendation.
// OK is false only for the two infeasible conditions (empty required
// category, baseline over budget); Reason explains the failure.
// Spend always equals the sum of Parts prices; Leftover = Budget - Spend.
type BuildResult struct {
	OK            bool                 `json:"ok"`
	Reason        string               `json:"reason,omitempty"`
	Target        string               `json:"target"`
	Budget        decimal.Decimal      `json:"budget"`
	Spend         decimal.Decimal      `json:"spend"`
	Leftover      decimal.Decimal      `json:"leftover"`
	Parts         []BuildPart          `json:"parts,omitempty"`
	Compatibility *CompatibilityReport `json:"compatibility,omitempty"`
}

// ComparisonSummary holds the derived facts over a resolved comparison set
type ComparisonSummary struct {
	Cheapest    *Product `json:"cheapest"`
	HighestPerf *Product `json:"highest_perf"`
}

// ComparisonResult reflects only the identifiers that resolved; unresolved
// identifiers are dropped silently rather than reported as errors.
type ComparisonResult struct {
	Items   []Product         `json:"items"`
	Summary ComparisonSummary `json:"summary"`
}
