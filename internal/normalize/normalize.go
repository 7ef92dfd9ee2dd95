// Package normalize turns raw display strings into canonical comparison keys.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Pattern is one regex substitution step in a normalization pipeline,
// typically stripping corporate suffixes, generation markers or literal
// prefixes before comparison.
type Pattern struct {
	Regex       *regexp.Regexp
	Replacement string
}

// Compile builds a Pattern from a regex source and replacement
func Compile(expr, replacement string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid normalization pattern %q: %w", expr, err)
	}
	return Pattern{Regex: re, Replacement: replacement}, nil
}

// MustCompile is like Compile but panics on an invalid expression
func MustCompile(expr, replacement string) Pattern {
	p, err := Compile(expr, replacement)
	if err != nil {
		panic(err)
	}
	return p
}

// Name normalizes a raw display string for comparison: lowercases, applies
// each pattern in order, collapses whitespace runs to a single space and
// trims. Empty input normalizes to the empty string.
func Name(raw string, patterns []Pattern) string {
	if raw == "" {
		return ""
	}

	normalized := strings.ToLower(raw)

	for _, p := range patterns {
		if p.Regex == nil {
			continue
		}
		normalized = p.Regex.ReplaceAllString(normalized, p.Replacement)
	}

	normalized = whitespaceRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// Normalizer applies a fixed pattern pipeline. The zero value normalizes
// with no substitution patterns.
type Normalizer struct {
	patterns []Pattern
}

// New creates a Normalizer with the given pattern pipeline
func New(patterns []Pattern) *Normalizer {
	return &Normalizer{patterns: patterns}
}

// Name normalizes a raw display string through the configured pipeline
func (n *Normalizer) Name(raw string) string {
	return Name(raw, n.patterns)
}
