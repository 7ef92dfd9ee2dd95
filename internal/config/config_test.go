package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}

	if cfg.FuzzyThreshold("organizations") != DefaultFuzzyThreshold {
		t.Errorf("expected fuzzy threshold %g, got %g", DefaultFuzzyThreshold, cfg.FuzzyThreshold("organizations"))
	}
	if cfg.ReviewThreshold("organizations") != DefaultReviewThreshold {
		t.Errorf("expected review threshold %g, got %g", DefaultReviewThreshold, cfg.ReviewThreshold("organizations"))
	}

	if len(cfg.ValidStatuses) != 2 || cfg.ValidStatuses[0] != "Active" || cfg.ValidStatuses[1] != "Product Only" {
		t.Errorf("unexpected valid statuses: %v", cfg.ValidStatuses)
	}

	if cfg.Paths == nil || len(cfg.Paths.Include) != 1 || cfg.Paths.Include[0] != "**/*.json" {
		t.Errorf("unexpected include patterns: %+v", cfg.Paths)
	}

	if cfg.Output == nil || cfg.Output.Format != "text" || cfg.Output.Color != "auto" {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}

	patterns, err := cfg.CompilePatterns()
	if err != nil {
		t.Fatalf("default patterns failed to compile: %v", err)
	}
	if len(patterns) != 1 {
		t.Errorf("expected 1 default pattern, got %d", len(patterns))
	}
}

func TestDefaultMatchWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, w := range DefaultMatchWeights() {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("expected weights to sum to 1.0, got %g", sum)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
version = 1

valid_statuses = ["Active"]

matching {
  strategies       = ["exact_name", "fuzzy_name"]
  fuzzy_threshold  = 0.7
  review_threshold = 0.9

  pattern {
    regex       = "-old$"
    replacement = ""
  }
}

category "virtualization" {
  fuzzy_threshold = 0.85
  valid_values    = ["VMware", "Other"]
}

dedupe {
  auto_threshold   = 0.9
  review_threshold = 0.5

  weight "serial_number" { value = 0.5 }
  weight "name"          { value = 0.5 }
}

output {
  format = "json"
  color  = "never"
}
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ConfigPath() != path {
		t.Errorf("expected config path %s, got %s", path, cfg.ConfigPath())
	}
	if cfg.FuzzyThreshold("organizations") != 0.7 {
		t.Errorf("expected global fuzzy threshold 0.7, got %g", cfg.FuzzyThreshold("organizations"))
	}
	if cfg.FuzzyThreshold("virtualization") != 0.85 {
		t.Errorf("expected category override 0.85, got %g", cfg.FuzzyThreshold("virtualization"))
	}
	if cfg.ReviewThreshold("virtualization") != 0.9 {
		t.Errorf("expected inherited review threshold 0.9, got %g", cfg.ReviewThreshold("virtualization"))
	}

	strategies := cfg.Strategies("organizations")
	if len(strategies) != 2 || strategies[0] != "exact_name" {
		t.Errorf("unexpected strategies: %v", strategies)
	}

	values := cfg.ValidValues("virtualization")
	if len(values) != 2 || values[0] != "VMware" {
		t.Errorf("unexpected valid values: %v", values)
	}
	if cfg.ValidValues("email") != nil {
		t.Errorf("expected nil valid values for unconfigured category")
	}

	weights := cfg.MatchWeights()
	if weights["serial_number"] != 0.5 || weights["name"] != 0.5 {
		t.Errorf("unexpected weights: %v", weights)
	}
	if cfg.DedupeAutoThreshold() != 0.9 || cfg.DedupeReviewThreshold() != 0.5 {
		t.Errorf("unexpected dedupe thresholds: %g / %g", cfg.DedupeAutoThreshold(), cfg.DedupeReviewThreshold())
	}

	if cfg.Output.Format != "json" {
		t.Errorf("expected json output, got %s", cfg.Output.Format)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"), "")

	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
	if cfg == nil {
		t.Fatal("expected default config alongside the error")
	}
	if cfg.FuzzyThreshold("organizations") != DefaultFuzzyThreshold {
		t.Errorf("expected defaults, got fuzzy threshold %g", cfg.FuzzyThreshold("organizations"))
	}
}

func TestLoadInvalidConfigFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, `
matching {
  fuzzy_threshold = 1.5
}
`)

	cfg, err := Load(path, "")

	if err == nil {
		t.Error("expected validation error")
	}
	if cfg == nil || cfg.FuzzyThreshold("organizations") != DefaultFuzzyThreshold {
		t.Error("expected default config alongside the error")
	}
}

func TestLoadSearchDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(path, []byte("version = 1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load("", tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ConfigPath() != path {
		t.Errorf("expected config found in search dir, got %q", cfg.ConfigPath())
	}
}

func TestValidateRejectsUnknownStrategy(t *testing.T) {
	cfg := Default()
	cfg.Matching.Strategies = []string{"soundex"}

	if err := Validate(cfg); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestValidateRejectsWeightsNotSummingToOne(t *testing.T) {
	cfg := Default()
	cfg.Dedupe.Weights = []*WeightConfig{
		{Field: "serial_number", Value: 0.5},
		{Field: "name", Value: 0.3},
	}

	if err := Validate(cfg); err == nil {
		t.Error("expected error for weights not summing to 1.0")
	}
}

func TestValidateRejectsNegativeWeight(t *testing.T) {
	cfg := Default()
	cfg.Dedupe.Weights = []*WeightConfig{
		{Field: "serial_number", Value: -0.5},
		{Field: "name", Value: 1.5},
	}

	if err := Validate(cfg); err == nil {
		t.Error("expected error for negative weight")
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "yaml"

	if err := Validate(cfg); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestValidateRejectsBadVersion(t *testing.T) {
	cfg := Default()
	cfg.Version = 3

	if err := Validate(cfg); err == nil {
		t.Error("expected error for unsupported version")
	}
}

// The starter file written by "cmdbrecon init" must load cleanly.
func TestDefaultConfigHCLLoads(t *testing.T) {
	path := writeConfig(t, DefaultConfigHCL())

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("starter config failed to load: %v", err)
	}
	if cfg.FuzzyThreshold("organizations") != DefaultFuzzyThreshold {
		t.Errorf("expected fuzzy threshold %g, got %g", DefaultFuzzyThreshold, cfg.FuzzyThreshold("organizations"))
	}
	if cfg.DedupeReviewThreshold() != DefaultDedupeReviewThreshold {
		t.Errorf("expected dedupe review threshold %g, got %g", DefaultDedupeReviewThreshold, cfg.DedupeReviewThreshold())
	}

	var sum float64
	for _, w := range cfg.MatchWeights() {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("expected starter weights to sum to 1.0, got %g", sum)
	}
}
