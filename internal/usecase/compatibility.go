package usecase

import (
	"fmt"

	"github.com/pcforge/backend/internal/domain"
)

// CompatibilityChecker evaluates pairwise hardware rules over a candidate
// parts set. It is stateless and works purely from the supplied parts;
// it never touches the catalog.
type CompatibilityChecker struct{}

// NewCompatibilityChecker creates a new compatibility checker
func NewCompatibilityChecker() *CompatibilityChecker {
	return &CompatibilityChecker{}
}

// Check runs every rule over the parts list. A rule is skipped, not
// failed, when either side is missing the spec it needs.
func (c *CompatibilityChecker) Check(parts []domain.Product) domain.CompatibilityReport {
	var issues []string

	// The recall-favoring alias table can claim a motherboard ("B650 DDR5")
	// or GPU ("GDDR6") for the ram tag; exclusions keep slots unambiguous.
	cpu := findPart(parts, "cpu", "motherboard")
	board := findPart(parts, "motherboard")
	ram := findPart(parts, "ram", "motherboard", "gpu", "cpu")

	if cpu != nil && board != nil {
		cpuSocket := specValue(*cpu, "socket")
		boardSocket := specValue(*board, "socket")
		if cpuSocket != "" && boardSocket != "" && !looseEqual(cpuSocket, boardSocket) {
			issues = append(issues, fmt.Sprintf(
				"CPU socket %q does not match motherboard socket %q", cpuSocket, boardSocket))
		}
	}

	if ram != nil && board != nil {
		ramType := memoryTypeValue(*ram)
		boardType := memoryTypeValue(*board)
		if ramType != "" && boardType != "" && !looseEqual(ramType, boardType) {
			issues = append(issues, fmt.Sprintf(
				"RAM memory type %q does not match motherboard memory type %q", ramType, boardType))
		}
	}

	return domain.CompatibilityReport{
		OK:     len(issues) == 0,
		Issues: issues,
	}
}

// findPart returns the first product in the list belonging to a category
// tag and none of the excluded tags, or nil when the slot is unfilled
func findPart(parts []domain.Product, tag string, exclude ...string) *domain.Product {
	for i := range parts {
		if !matchesCategory(parts[i], tag) {
			continue
		}
		claimed := false
		for _, ex := range exclude {
			if matchesCategory(parts[i], ex) {
				claimed = true
				break
			}
		}
		if !claimed {
			return &parts[i]
		}
	}
	return nil
}
