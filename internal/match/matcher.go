package match

import (
	"fmt"
	"strings"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// Matcher executes the configured strategy cascade for one category.
// Strategies run in order and the first hit wins; there is no cross-strategy
// score comparison once any strategy succeeds.
type Matcher struct {
	desc          *category.Descriptor
	strategies    []Strategy
	validStatuses []string
}

// NewMatcher builds a Matcher from the default strategy registry
func NewMatcher(desc *category.Descriptor, order []string, opts Options, validStatuses []string) (*Matcher, error) {
	if len(order) == 0 {
		order = desc.Strategies
	}
	strategies, err := DefaultRegistry.Build(order, desc, opts)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", desc.Name, err)
	}
	return &Matcher{
		desc:          desc,
		strategies:    strategies,
		validStatuses: validStatuses,
	}, nil
}

// Match pairs one source record against the candidate pool
func (m *Matcher) Match(src *types.SourceRecord, candidates []*types.TargetRecord) *types.MatchResult {
	result := types.NewMatchResult(src.ID, src.Name).
		WithAttribute(m.desc.Attribute(src))

	// Records failing the status allow-list are skipped before any
	// strategy runs.
	if m.skipStatus(src.Status) {
		result.Quality = types.QualityInactive
		return result.
			WithMatch(types.MatchSkipped, 0.0, types.ActionSkip).
			WithNotes(fmt.Sprintf("Skipped due to status: %s", src.Status))
	}

	scoped := candidates
	if m.desc.OrgScoped && src.OrgName != "" {
		scoped = scopeToOrg(candidates, src.OrgName)
	}

	for _, strategy := range m.strategies {
		pool := candidates
		if strategy.Scoped() {
			pool = scoped
		}
		if outcome := strategy.Apply(src, pool); outcome != nil {
			return result.
				WithTarget(outcome.Target.SysID, outcome.Target.Name).
				WithMatch(outcome.Type, outcome.Confidence, outcome.Action).
				WithNotes(outcome.Notes)
		}
	}

	return m.noMatch(src, result)
}

func (m *Matcher) noMatch(src *types.SourceRecord, result *types.MatchResult) *types.MatchResult {
	if m.desc.IsConditionalStatus(src.Status) {
		return result.
			WithMatch(types.MatchNone, 0.0, types.ActionConditional).
			WithNotes(fmt.Sprintf("Status %q is conditional; record may not need to be migrated", src.Status))
	}
	return result.
		WithMatch(types.MatchNone, 0.0, types.ActionCreateNew).
		WithNotes(fmt.Sprintf("No matching %s found in target system", m.desc.TargetKind))
}

func (m *Matcher) skipStatus(status string) bool {
	if !m.desc.FilterStatus || status == "" || len(m.validStatuses) == 0 {
		return false
	}
	for _, valid := range m.validStatuses {
		if valid == status {
			return false
		}
	}
	return true
}

// scopeToOrg keeps candidates whose company display name equals the source
// record's organization name, ignoring case
func scopeToOrg(candidates []*types.TargetRecord, orgName string) []*types.TargetRecord {
	scoped := make([]*types.TargetRecord, 0, len(candidates))
	for _, cand := range candidates {
		if strings.EqualFold(strings.TrimSpace(cand.Company), strings.TrimSpace(orgName)) {
			scoped = append(scoped, cand)
		}
	}
	return scoped
}
