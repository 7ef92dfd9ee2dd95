package match

import (
	"fmt"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/normalize"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

func init() {
	Register(category.StrategyExactName, func(desc *category.Descriptor, opts Options) Strategy {
		return &exactName{normalizer: opts.Normalizer}
	})
}

// exactName matches on equality of normalized names
type exactName struct {
	normalizer *normalize.Normalizer
}

func (s *exactName) Name() string { return category.StrategyExactName }

func (s *exactName) Scoped() bool { return true }

func (s *exactName) Apply(src *types.SourceRecord, candidates []*types.TargetRecord) *Outcome {
	normalized := s.normalizer.Name(src.Name)
	if normalized == "" {
		return nil
	}

	for _, cand := range candidates {
		candName := s.normalizer.Name(cand.Name)
		if candName != "" && candName == normalized {
			return &Outcome{
				Target:     cand,
				Type:       types.MatchExactName,
				Confidence: 1.0,
				Action:     types.ActionUseExisting,
				Notes:      fmt.Sprintf("Matched by exact normalized name: %s", normalized),
			}
		}
	}
	return nil
}
