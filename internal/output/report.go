// Package output renders reconciliation reports in text, JSON and CSV form.
package output

import (
	"github.com/cmdbkit/cmdbrecon-core/internal/dedupe"
	"github.com/cmdbkit/cmdbrecon-core/internal/runner"
	"github.com/cmdbkit/cmdbrecon-core/internal/stats"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// reportVersion is the report schema version; downstream tooling keys on it
const reportVersion = "1.0"

// Report is the serialization boundary for one reconciliation run. Field
// names are stable; downstream tooling parses them.
type Report struct {
	Version     string `json:"version"`
	RunID       string `json:"run_id,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
	Category    string `json:"category"`

	Matches []*types.MatchResult      `json:"matches"`
	Issues  []*types.DataQualityIssue `json:"data_quality_issues"`
	Errors  []*types.RecordError      `json:"errors,omitempty"`
	Stats   *stats.Stats              `json:"statistics"`
}

// NewReport wraps a reconciliation result with run metadata. RunID and
// generatedAt are supplied by the caller so the core stays deterministic.
func NewReport(result *runner.Result, runID, generatedAt string) *Report {
	return &Report{
		Version:     reportVersion,
		RunID:       runID,
		GeneratedAt: generatedAt,
		Category:    result.Category,
		Matches:     result.Matches,
		Issues:      result.Issues,
		Errors:      result.Errors,
		Stats:       result.Stats,
	}
}

// DedupeReport is the serialization boundary for one duplicate scan
type DedupeReport struct {
	Version     string `json:"version"`
	RunID       string `json:"run_id,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`

	HighConfidence   []*dedupe.Candidate  `json:"high_confidence"`
	MediumConfidence []*dedupe.Candidate  `json:"medium_confidence"`
	LowConfidence    []*dedupe.Candidate  `json:"low_confidence"`
	Errors           []*types.RecordError `json:"errors,omitempty"`
}

// NewDedupeReport wraps a duplicate scan with run metadata
func NewDedupeReport(report *dedupe.Report, runID, generatedAt string) *DedupeReport {
	return &DedupeReport{
		Version:          reportVersion,
		RunID:            runID,
		GeneratedAt:      generatedAt,
		HighConfidence:   report.HighConfidence,
		MediumConfidence: report.MediumConfidence,
		LowConfidence:    report.LowConfidence,
		Errors:           report.Errors,
	}
}
