package match

import (
	"fmt"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

func init() {
	Register(category.StrategyStrongIdentifier, func(desc *category.Descriptor, opts Options) Strategy {
		return &strongIdentifier{fields: desc.IdentifierFields}
	})
}

// strongIdentifier matches on trimmed equality of any designated strong
// identifier field. Identifier equality is definitive: the first candidate
// satisfying any one field wins and confidence is always 1.0.
type strongIdentifier struct {
	fields []category.FieldPair
}

func (s *strongIdentifier) Name() string { return category.StrategyStrongIdentifier }

func (s *strongIdentifier) Scoped() bool { return false }

func (s *strongIdentifier) Apply(src *types.SourceRecord, candidates []*types.TargetRecord) *Outcome {
	for _, cand := range candidates {
		for _, pair := range s.fields {
			value := src.Identifier(pair.Source)
			if value == "" {
				continue
			}
			if cand.Field(pair.Target) == value {
				return &Outcome{
					Target:     cand,
					Type:       types.MatchStrongIdentifier,
					Confidence: 1.0,
					Action:     types.ActionUseExisting,
					Notes:      fmt.Sprintf("Matched by %s: %s", pair.Source, value),
				}
			}
		}
	}
	return nil
}
