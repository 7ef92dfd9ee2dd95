// Package similarity scores how alike two strings or two records are.
package similarity

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns a bounded [0.0, 1.0] similarity between two strings using
// the Ratcliff/Obershelp longest-common-block measure (difflib's ratio). It
// is symmetric in its arguments. Two empty strings score 1.0; exactly one
// empty string scores 0.0.
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

// FieldPair holds the two values of one compared field
type FieldPair struct {
	A string
	B string
}

// DefaultWeights is the record-level duplicate check weighting. The weights
// sum to 1.0 so a perfect match across all fields scores exactly 1.0.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"serial_number": 0.4,
		"mac_address":   0.3,
		"hostname":      0.2,
		"name":          0.1,
	}
}

// Composite computes a weighted similarity across multiple fields: for each
// weighted field it takes the Ratio of the trimmed pair values and sums
// weight times ratio. Fields without a supplied pair contribute zero.
func Composite(weights map[string]float64, pairs map[string]FieldPair) float64 {
	var score float64
	for field, weight := range weights {
		pair, ok := pairs[field]
		if !ok {
			continue
		}
		score += weight * Ratio(strings.TrimSpace(pair.A), strings.TrimSpace(pair.B))
	}
	return score
}
