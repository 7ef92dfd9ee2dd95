package config

import (
	"fmt"
	"math"
)

var knownStrategies = map[string]bool{
	"strong_identifier": true,
	"exact_name":        true,
	"fuzzy_name":        true,
}

var knownFormats = map[string]bool{
	"text": true,
	"json": true,
	"csv":  true,
}

// Validate checks a loaded configuration for defects
func Validate(c *Config) error {
	if c.Version != 0 && c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}

	if c.Matching != nil {
		if err := validateThreshold("fuzzy_threshold", c.Matching.FuzzyThreshold); err != nil {
			return err
		}
		if err := validateThreshold("review_threshold", c.Matching.ReviewThreshold); err != nil {
			return err
		}
		if err := validateStrategies(c.Matching.Strategies); err != nil {
			return err
		}
	}

	for _, cc := range c.Categories {
		if err := validateThreshold("fuzzy_threshold", cc.FuzzyThreshold); err != nil {
			return fmt.Errorf("category %s: %w", cc.Name, err)
		}
		if err := validateThreshold("review_threshold", cc.ReviewThreshold); err != nil {
			return fmt.Errorf("category %s: %w", cc.Name, err)
		}
		if err := validateStrategies(cc.Strategies); err != nil {
			return fmt.Errorf("category %s: %w", cc.Name, err)
		}
	}

	if c.Dedupe != nil {
		if err := validateThreshold("auto_threshold", c.Dedupe.AutoThreshold); err != nil {
			return err
		}
		if err := validateThreshold("review_threshold", c.Dedupe.ReviewThreshold); err != nil {
			return err
		}
		if len(c.Dedupe.Weights) > 0 {
			var sum float64
			for _, w := range c.Dedupe.Weights {
				if w.Value < 0 {
					return fmt.Errorf("dedupe weight %s must not be negative", w.Field)
				}
				sum += w.Value
			}
			if math.Abs(sum-1.0) > 1e-9 {
				return fmt.Errorf("dedupe weights must sum to 1.0, got %g", sum)
			}
		}
	}

	if c.Output != nil && c.Output.Format != "" && !knownFormats[c.Output.Format] {
		return fmt.Errorf("unknown output format: %s", c.Output.Format)
	}

	return nil
}

func validateThreshold(name string, v *float64) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > 1 {
		return fmt.Errorf("%s must be between 0.0 and 1.0, got %g", name, *v)
	}
	return nil
}

func validateStrategies(names []string) error {
	for _, name := range names {
		if !knownStrategies[name] {
			return fmt.Errorf("unknown matching strategy: %s", name)
		}
	}
	return nil
}
