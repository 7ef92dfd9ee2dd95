package config

// Documented default thresholds. A config file that omits them, or fails to
// parse entirely, falls back to these values.
const (
	DefaultFuzzyThreshold        = 0.8
	DefaultReviewThreshold       = 0.95
	DefaultDedupeAutoThreshold   = 0.8
	DefaultDedupeReviewThreshold = 0.6
)

// DefaultMatchWeights is the record-level duplicate check weighting; the
// weights sum to 1.0
func DefaultMatchWeights() map[string]float64 {
	return map[string]float64{
		"serial_number": 0.4,
		"mac_address":   0.3,
		"hostname":      0.2,
		"name":          0.1,
	}
}

// Default returns the default configuration
func Default() *Config {
	fuzzy := DefaultFuzzyThreshold
	review := DefaultReviewThreshold
	autoThreshold := DefaultDedupeAutoThreshold
	dedupeReview := DefaultDedupeReviewThreshold
	return &Config{
		Version: 1,
		Matching: &MatchingConfig{
			FuzzyThreshold:  &fuzzy,
			ReviewThreshold: &review,
			Patterns: []*PatternConfig{
				// strip corporate suffixes before comparing names
				{Regex: `\s*,?\s*(inc|incorporated|llc|ltd|limited|corp|corporation|co)\.?$`},
			},
		},
		ValidStatuses: []string{"Active", "Product Only"},
		Dedupe: &DedupeConfig{
			AutoThreshold:   &autoThreshold,
			ReviewThreshold: &dedupeReview,
		},
		Paths: &PathsConfig{
			Include: []string{"**/*.json"},
			Exclude: []string{},
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// applyDefaults fills in missing optional blocks on a loaded config
func applyDefaults(c *Config) {
	defaults := Default()

	if c.Matching == nil {
		c.Matching = defaults.Matching
	}
	if c.ValidStatuses == nil {
		c.ValidStatuses = defaults.ValidStatuses
	}
	if c.Dedupe == nil {
		c.Dedupe = defaults.Dedupe
	}
	if c.Paths == nil {
		c.Paths = defaults.Paths
	}
	if c.Output == nil {
		c.Output = defaults.Output
	}
	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	if c.Output.Color == "" {
		c.Output.Color = defaults.Output.Color
	}
	if len(c.Paths.Include) == 0 {
		c.Paths.Include = defaults.Paths.Include
	}
}
