package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pcforge/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	whitespaceRunRegex = regexp.MustCompile(`\s+`)
	numericPrefixRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// NormalizeSpecs converts an arbitrary free-text specification map into
// canonical form: keys trimmed, lowercased, whitespace runs collapsed to a
// single underscore. Values pass through untouched. The operation is total
// (nil in, empty map out) and idempotent.
func NormalizeSpecs(raw map[string]string) map[string]string {
	normalized := make(map[string]string, len(raw))
	for key, value := range raw {
		normalized[normalizeSpecKey(key)] = value
	}
	return normalized
}

// normalizeSpecKey canonicalizes a single human-authored spec key
func normalizeSpecKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return whitespaceRunRegex.ReplaceAllString(key, "_")
}

// specValue looks up a normalized specification key on a product.
// Returns the empty string when the key is absent.
func specValue(p domain.Product, key string) string {
	if len(p.Specifications) == 0 {
		return ""
	}
	return NormalizeSpecs(p.Specifications)[key]
}

// memoryTypeKeys are the normalized keys under which the store's ragged data
// records a RAM/motherboard memory standard ("Memory Type", "Ram Type", ...)
var memoryTypeKeys = []string{"memory_type", "ram_type", "memory"}

// memoryTypeValue resolves the memory standard of a product, trying the
// known key spellings in order
func memoryTypeValue(p domain.Product) string {
	for _, key := range memoryTypeKeys {
		if v := specValue(p, key); v != "" {
			return v
		}
	}
	return ""
}

// looseEqual compares two free-text spec values ignoring case and all
// whitespace, so "AM5" matches "am 5" and "DDR5" matches "ddr5"
func looseEqual(a, b string) bool {
	return stripWhitespace(strings.ToLower(a)) == stripWhitespace(strings.ToLower(b))
}

// stripWhitespace removes every whitespace rune from a string
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

// parsePerfScore extracts a numeric performance score from a free-text spec
// value. The first run of digits (with optional decimal point) wins;
// missing or unparsable values score 0. Deliberately lenient: the source
// data embeds units and annotations ("8500 pts", "~7200").
func parsePerfScore(value string) float64 {
	match := numericPrefixRegex.FindString(value)
	if match == "" {
		return 0
	}
	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return score
}

// perfScore reads and parses a product's perf_score specification
func perfScore(p domain.Product) float64 {
	return parsePerfScore(specValue(p, "perf_score"))
}
