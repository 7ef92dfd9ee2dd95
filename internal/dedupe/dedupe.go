// Package dedupe finds duplicate hardware records across the two systems
// using a weighted composite similarity score.
package dedupe

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/cmdbkit/cmdbrecon-core/internal/config"
	"github.com/cmdbkit/cmdbrecon-core/internal/similarity"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// Disposition is the action a duplicate candidate warrants
type Disposition int

const (
	// DispositionCreateNew means no convincing duplicate exists
	DispositionCreateNew Disposition = iota
	// DispositionManualReview means the score is suggestive but not decisive
	DispositionManualReview
	// DispositionAutomaticUpdate means the score is high enough to link the
	// records without review
	DispositionAutomaticUpdate
)

// String returns the string representation of the disposition
func (d Disposition) String() string {
	switch d {
	case DispositionAutomaticUpdate:
		return "automatic_update"
	case DispositionManualReview:
		return "manual_review"
	case DispositionCreateNew:
		return "create_new"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (d Disposition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Candidate pairs a source record with its best-scoring target duplicate.
// Target is nil when no potential match was found at all.
type Candidate struct {
	Source      *types.SourceRecord `json:"source_record"`
	Target      *types.TargetRecord `json:"target_record,omitempty"`
	Score       float64             `json:"match_score"`
	Disposition Disposition         `json:"action"`
}

// Report is the outcome of a duplicate scan
type Report struct {
	HighConfidence   []*Candidate         `json:"high_confidence"`
	MediumConfidence []*Candidate         `json:"medium_confidence"`
	LowConfidence    []*Candidate         `json:"low_confidence"`
	Errors           []*types.RecordError `json:"errors,omitempty"`
}

// Total returns the number of scanned records
func (r *Report) Total() int {
	return len(r.HighConfidence) + len(r.MediumConfidence) + len(r.LowConfidence)
}

// equalityFields are the identifier fields whose exact equality makes a
// target record a potential duplicate, in check order
var equalityFields = []string{"serial_number", "mac_address", "asset_tag", "hostname", "ip_address"}

// scoredFields are the identifier fields entering the composite score
var scoredFields = []string{"serial_number", "mac_address", "hostname"}

// Finder scans source records for duplicates among the target records
type Finder struct {
	weights         map[string]float64
	autoThreshold   float64
	reviewThreshold float64
	logger          hclog.Logger
}

// NewFinder builds a Finder from the supplied configuration
func NewFinder(cfg *config.Config, logger hclog.Logger) *Finder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Finder{
		weights:         cfg.MatchWeights(),
		autoThreshold:   cfg.DedupeAutoThreshold(),
		reviewThreshold: cfg.DedupeReviewThreshold(),
		logger:          logger.Named("dedupe"),
	}
}

// Run scans every source record against the target pool. Records are
// processed independently; a failing record is reported and skipped.
func (f *Finder) Run(sources []*types.SourceRecord, targets []*types.TargetRecord) *Report {
	f.logger.Info("scanning for duplicates", "sources", len(sources), "targets", len(targets))

	report := &Report{}
	for _, src := range sources {
		f.processRecord(src, targets, report)
	}

	f.logger.Info("duplicate scan complete",
		"high", len(report.HighConfidence),
		"medium", len(report.MediumConfidence),
		"low", len(report.LowConfidence),
		"errors", len(report.Errors))
	return report
}

func (f *Finder) processRecord(src *types.SourceRecord, targets []*types.TargetRecord, report *Report) {
	defer func() {
		if rec := recover(); rec != nil {
			var id, name string
			if src != nil {
				id, name = src.ID, src.Name
			}
			f.logger.Error("record scan failed", "record", id, "error", rec)
			report.Errors = append(report.Errors, &types.RecordError{
				RecordID:   id,
				RecordName: name,
				Message:    fmt.Sprintf("%v", rec),
			})
		}
	}()

	if src == nil || src.ID == "" {
		panic("record has no id")
	}

	potential := f.findPotentialMatches(src, targets)
	if len(potential) == 0 {
		report.LowConfidence = append(report.LowConfidence, &Candidate{
			Source:      src,
			Score:       0.0,
			Disposition: DispositionCreateNew,
		})
		return
	}

	var best *types.TargetRecord
	var bestScore float64
	for _, cand := range potential {
		if score := f.Score(src, cand); score > bestScore || best == nil {
			bestScore = score
			best = cand
		}
	}

	candidate := &Candidate{Source: src, Target: best, Score: bestScore}
	switch {
	case bestScore >= f.autoThreshold:
		candidate.Disposition = DispositionAutomaticUpdate
		report.HighConfidence = append(report.HighConfidence, candidate)
	case bestScore >= f.reviewThreshold:
		candidate.Disposition = DispositionManualReview
		report.MediumConfidence = append(report.MediumConfidence, candidate)
	default:
		candidate.Disposition = DispositionCreateNew
		report.LowConfidence = append(report.LowConfidence, candidate)
	}
}

// findPotentialMatches keeps target records in the same organization that
// share any strong identifier or the exact name with the source record
func (f *Finder) findPotentialMatches(src *types.SourceRecord, targets []*types.TargetRecord) []*types.TargetRecord {
	var potential []*types.TargetRecord
	name := strings.TrimSpace(src.Name)

	for _, cand := range targets {
		if src.OrgID != "" && cand.Field("company") != src.OrgID {
			continue
		}

		matched := false
		for _, field := range equalityFields {
			value := src.Identifier(field)
			if value != "" && value == cand.Field(field) {
				matched = true
				break
			}
		}
		if !matched && name != "" && name == strings.TrimSpace(cand.Name) {
			matched = true
		}
		if matched {
			potential = append(potential, cand)
		}
	}
	return potential
}

// Score computes the weighted composite similarity between two records
func (f *Finder) Score(src *types.SourceRecord, target *types.TargetRecord) float64 {
	pairs := map[string]similarity.FieldPair{
		"name": {A: src.Name, B: target.Name},
	}
	for _, field := range scoredFields {
		pairs[field] = similarity.FieldPair{A: src.Identifier(field), B: target.Field(field)}
	}
	return similarity.Composite(f.weights, pairs)
}
