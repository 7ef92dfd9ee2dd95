// Package config handles loading and validating cmdbrecon configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cmdbkit/cmdbrecon-core/internal/normalize"
)

// FileName is the configuration file cmdbrecon searches for
const FileName = ".cmdbrecon.hcl"

// Config represents the cmdbrecon configuration
type Config struct {
	Version       int               `hcl:"version,optional"`
	Matching      *MatchingConfig   `hcl:"matching,block"`
	ValidStatuses []string          `hcl:"valid_statuses,optional"`
	Categories    []*CategoryConfig `hcl:"category,block"`
	Dedupe        *DedupeConfig     `hcl:"dedupe,block"`
	Paths         *PathsConfig      `hcl:"paths,block"`
	Output        *OutputConfig     `hcl:"output,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// MatchingConfig defines the cross-category matching settings
type MatchingConfig struct {
	Strategies      []string         `hcl:"strategies,optional"`
	FuzzyThreshold  *float64         `hcl:"fuzzy_threshold,optional"`
	ReviewThreshold *float64         `hcl:"review_threshold,optional"`
	Patterns        []*PatternConfig `hcl:"pattern,block"`
}

// PatternConfig is one name normalization substitution
type PatternConfig struct {
	Regex       string `hcl:"regex,attr"`
	Replacement string `hcl:"replacement,optional"`
}

// CategoryConfig overrides matching settings for one category
type CategoryConfig struct {
	Name            string   `hcl:"name,label"`
	Strategies      []string `hcl:"strategies,optional"`
	ValidValues     []string `hcl:"valid_values,optional"`
	FuzzyThreshold  *float64 `hcl:"fuzzy_threshold,optional"`
	ReviewThreshold *float64 `hcl:"review_threshold,optional"`
}

// DedupeConfig defines the weighted duplicate check settings
type DedupeConfig struct {
	Weights         []*WeightConfig `hcl:"weight,block"`
	AutoThreshold   *float64        `hcl:"auto_threshold,optional"`
	ReviewThreshold *float64        `hcl:"review_threshold,optional"`
}

// WeightConfig is one field's share of the composite duplicate score
type WeightConfig struct {
	Field string  `hcl:"field,label"`
	Value float64 `hcl:"value,attr"`
}

// PathsConfig defines record file selection settings
type PathsConfig struct {
	Include []string `hcl:"include,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Category returns the override block for a category, or nil if not configured
func (c *Config) Category(name string) *CategoryConfig {
	for _, cc := range c.Categories {
		if cc.Name == name {
			return cc
		}
	}
	return nil
}

// Strategies returns the configured strategy order for a category, or nil to
// use the category default
func (c *Config) Strategies(category string) []string {
	if cc := c.Category(category); cc != nil && len(cc.Strategies) > 0 {
		return cc.Strategies
	}
	if c.Matching != nil && len(c.Matching.Strategies) > 0 {
		return c.Matching.Strategies
	}
	return nil
}

// FuzzyThreshold returns the fuzzy acceptance threshold for a category
func (c *Config) FuzzyThreshold(category string) float64 {
	if cc := c.Category(category); cc != nil && cc.FuzzyThreshold != nil {
		return *cc.FuzzyThreshold
	}
	if c.Matching != nil && c.Matching.FuzzyThreshold != nil {
		return *c.Matching.FuzzyThreshold
	}
	return DefaultFuzzyThreshold
}

// ReviewThreshold returns the auto-apply threshold for a category
func (c *Config) ReviewThreshold(category string) float64 {
	if cc := c.Category(category); cc != nil && cc.ReviewThreshold != nil {
		return *cc.ReviewThreshold
	}
	if c.Matching != nil && c.Matching.ReviewThreshold != nil {
		return *c.Matching.ReviewThreshold
	}
	return DefaultReviewThreshold
}

// ValidValues returns the configured valid-value list for a category, or nil
// to use the category default
func (c *Config) ValidValues(category string) []string {
	if cc := c.Category(category); cc != nil && len(cc.ValidValues) > 0 {
		return cc.ValidValues
	}
	return nil
}

// CompilePatterns compiles the configured normalization patterns in order
func (c *Config) CompilePatterns() ([]normalize.Pattern, error) {
	if c.Matching == nil {
		return nil, nil
	}
	patterns := make([]normalize.Pattern, 0, len(c.Matching.Patterns))
	for _, pc := range c.Matching.Patterns {
		p, err := normalize.Compile(pc.Regex, pc.Replacement)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// MatchWeights returns the composite duplicate score weights
func (c *Config) MatchWeights() map[string]float64 {
	if c.Dedupe == nil || len(c.Dedupe.Weights) == 0 {
		return DefaultMatchWeights()
	}
	weights := make(map[string]float64, len(c.Dedupe.Weights))
	for _, w := range c.Dedupe.Weights {
		weights[w.Field] = w.Value
	}
	return weights
}

// DedupeAutoThreshold returns the automatic-update score threshold
func (c *Config) DedupeAutoThreshold() float64 {
	if c.Dedupe != nil && c.Dedupe.AutoThreshold != nil {
		return *c.Dedupe.AutoThreshold
	}
	return DefaultDedupeAutoThreshold
}

// DedupeReviewThreshold returns the manual-review score threshold
func (c *Config) DedupeReviewThreshold() float64 {
	if c.Dedupe != nil && c.Dedupe.ReviewThreshold != nil {
		return *c.Dedupe.ReviewThreshold
	}
	return DefaultDedupeReviewThreshold
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), .cmdbrecon.hcl in cwd,
// .cmdbrecon.hcl in searchDir.
//
// Configuration defects never fail the run: on a missing explicit file,
// parse error or validation error, Load returns the default configuration
// together with the defect for the caller to log.
func Load(configPath, searchDir string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return Default(), fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile(searchDir)
	}

	if path == "" {
		return Default(), nil
	}

	cfg, err := loadFromFile(path)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// findConfigFile searches for .cmdbrecon.hcl in standard locations
func findConfigFile(searchDir string) string {
	cwd, err := os.Getwd()
	if err == nil {
		cwdPath := filepath.Join(cwd, FileName)
		if _, err := os.Stat(cwdPath); err == nil {
			return cwdPath
		}
	}

	if searchDir != "" {
		dirPath := filepath.Join(searchDir, FileName)
		if _, err := os.Stat(dirPath); err == nil {
			return dirPath
		}
	}

	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}
