package match

import (
	"fmt"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/normalize"
	"github.com/cmdbkit/cmdbrecon-core/internal/similarity"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

func init() {
	Register(category.StrategyFuzzyName, func(desc *category.Descriptor, opts Options) Strategy {
		return &fuzzyName{
			normalizer:      opts.Normalizer,
			threshold:       opts.FuzzyThreshold,
			reviewThreshold: opts.ReviewThreshold,
		}
	})
}

// fuzzyName matches on name similarity. The highest-scoring candidate wins,
// earlier candidates winning ties, and the maximum is accepted only at or
// above the fuzzy threshold. Confidence is the raw similarity.
type fuzzyName struct {
	normalizer      *normalize.Normalizer
	threshold       float64
	reviewThreshold float64
}

func (s *fuzzyName) Name() string { return category.StrategyFuzzyName }

func (s *fuzzyName) Scoped() bool { return true }

func (s *fuzzyName) Apply(src *types.SourceRecord, candidates []*types.TargetRecord) *Outcome {
	normalized := s.normalizer.Name(src.Name)
	if normalized == "" {
		return nil
	}

	var best *types.TargetRecord
	var bestSim float64

	for _, cand := range candidates {
		candName := s.normalizer.Name(cand.Name)
		if candName == "" {
			continue
		}
		if sim := similarity.Ratio(normalized, candName); sim > bestSim {
			bestSim = sim
			best = cand
		}
	}

	if best == nil || bestSim < s.threshold {
		return nil
	}

	action := types.ActionReviewMatch
	confidence := "moderate"
	if bestSim >= s.reviewThreshold {
		action = types.ActionUseExisting
		confidence = "high"
	}

	return &Outcome{
		Target:     best,
		Type:       types.MatchFuzzyName,
		Confidence: bestSim,
		Action:     action,
		Notes:      fmt.Sprintf("Matched by similar name with %s confidence: %.1f%%", confidence, bestSim*100),
	}
}
