// Package runner drives the per-record reconciliation loop for one category.
package runner

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/config"
	"github.com/cmdbkit/cmdbrecon-core/internal/match"
	"github.com/cmdbkit/cmdbrecon-core/internal/normalize"
	"github.com/cmdbkit/cmdbrecon-core/internal/quality"
	"github.com/cmdbkit/cmdbrecon-core/internal/stats"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// Result is the complete outcome of reconciling one category
type Result struct {
	// Category is the reconciled category name
	Category string `json:"category"`

	// Matches holds one result per processed source record, in input order
	Matches []*types.MatchResult `json:"matches"`

	// Issues holds the data quality issues, at most one per source record
	Issues []*types.DataQualityIssue `json:"data_quality_issues"`

	// Errors lists records that failed processing; they do not abort the run
	Errors []*types.RecordError `json:"errors,omitempty"`

	// Stats summarizes the run
	Stats *stats.Stats `json:"statistics"`
}

// Reconciler matches and assesses every source record of one category
// against the target candidate pool
type Reconciler struct {
	desc     *category.Descriptor
	matcher  *match.Matcher
	assessor *quality.Assessor
	logger   hclog.Logger
}

// New builds a Reconciler for the category from the supplied configuration
func New(desc *category.Descriptor, cfg *config.Config, logger hclog.Logger) (*Reconciler, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	patterns, err := cfg.CompilePatterns()
	if err != nil {
		return nil, err
	}

	// category config may override the built-in valid-value list
	if overrides := cfg.ValidValues(desc.Name); overrides != nil {
		override := *desc
		override.ValidValues = overrides
		desc = &override
	}

	opts := match.Options{
		FuzzyThreshold:  cfg.FuzzyThreshold(desc.Name),
		ReviewThreshold: cfg.ReviewThreshold(desc.Name),
		Normalizer:      normalize.New(patterns),
	}

	matcher, err := match.NewMatcher(desc, cfg.Strategies(desc.Name), opts, cfg.ValidStatuses)
	if err != nil {
		return nil, err
	}

	return &Reconciler{
		desc:     desc,
		matcher:  matcher,
		assessor: quality.NewAssessor(desc, opts.ReviewThreshold),
		logger:   logger.Named(desc.Name),
	}, nil
}

// Run reconciles every source record against the target pool. Records are
// processed independently and in input order; a record that fails is
// reported in Errors and the run continues.
func (r *Reconciler) Run(sources []*types.SourceRecord, targets []*types.TargetRecord) *Result {
	r.logger.Info("matching records",
		"sources", len(sources), "targets", len(targets))

	result := &Result{Category: r.desc.Name}
	for _, src := range sources {
		r.processRecord(src, targets, result)
	}
	result.Stats = stats.Aggregate(result.Matches, r.desc.Dimension)

	r.logger.Info("matching complete",
		"matches", len(result.Matches), "issues", len(result.Issues), "errors", len(result.Errors))
	return result
}

func (r *Reconciler) processRecord(src *types.SourceRecord, targets []*types.TargetRecord, result *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			var id, name string
			if src != nil {
				id, name = src.ID, src.Name
			}
			r.logger.Error("record processing failed", "record", id, "error", rec)
			result.Errors = append(result.Errors, &types.RecordError{
				RecordID:   id,
				RecordName: name,
				Message:    fmt.Sprintf("%v", rec),
			})
		}
	}()

	if src == nil || src.ID == "" {
		panic("record has no id")
	}

	m := r.matcher.Match(src, targets)

	// skipped records keep their Inactive label; everything else gets the
	// assessor's verdict
	if m.MatchType != types.MatchSkipped {
		label, issue := r.assessor.Assess(src, m)
		m.Quality = label
		if issue != nil {
			result.Issues = append(result.Issues, issue)
		}
	}

	result.Matches = append(result.Matches, m)
}
