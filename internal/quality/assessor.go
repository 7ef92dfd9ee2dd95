// Package quality inspects matched records and flags data defects.
package quality

import (
	"fmt"
	"strings"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// Assessor assigns a data quality label to each match result and emits at
// most one issue per source record. Checks run in a fixed priority order;
// the first applicable check wins.
type Assessor struct {
	desc            *category.Descriptor
	reviewThreshold float64
}

// NewAssessor creates an Assessor for one category
func NewAssessor(desc *category.Descriptor, reviewThreshold float64) *Assessor {
	return &Assessor{desc: desc, reviewThreshold: reviewThreshold}
}

// Assess returns the quality label for the record plus an issue when one of
// the checks applies. Input defects never fail the run; the record keeps its
// match result and the defect is reported alongside it.
func (a *Assessor) Assess(src *types.SourceRecord, result *types.MatchResult) (types.Quality, *types.DataQualityIssue) {
	if issue := a.checkIdentifier(src); issue != nil {
		return types.QualityUnlinked, issue
	}
	if issue := a.checkFuzzyMatch(src, result); issue != nil {
		return types.QualitySimilarName, issue
	}
	if issue := a.checkValidValue(src); issue != nil {
		return types.QualityInvalidValue, issue
	}
	if issue := a.checkRequiredFields(src); issue != nil {
		return types.QualityMissingData, issue
	}
	return types.QualityReady, nil
}

// checkIdentifier flags records carrying no strong identifier. They are
// still matchable by name, so the record stays reviewable but unlinked.
func (a *Assessor) checkIdentifier(src *types.SourceRecord) *types.DataQualityIssue {
	if a.desc.QualityIdentifier == "" {
		return nil
	}
	if src.Identifier(a.desc.QualityIdentifier) != "" {
		return nil
	}
	return a.issue(src, types.IssueMissingIdentifier, types.PriorityMedium,
		fmt.Sprintf("Record does not have a %s", a.desc.QualityIdentifier),
		fmt.Sprintf("Populate the %s or map the record manually", a.desc.QualityIdentifier))
}

// checkFuzzyMatch flags fuzzy matches that were accepted provisionally and
// need human review before the target record is reused.
func (a *Assessor) checkFuzzyMatch(src *types.SourceRecord, result *types.MatchResult) *types.DataQualityIssue {
	if result.MatchType != types.MatchFuzzyName || result.Confidence >= a.reviewThreshold {
		return nil
	}
	return a.issue(src, types.IssueSimilarName, types.PriorityHigh,
		fmt.Sprintf("Record matched by similar name with %.1f%% confidence", result.Confidence*100),
		"Review match and confirm or create new")
}

func (a *Assessor) checkValidValue(src *types.SourceRecord) *types.DataQualityIssue {
	if a.desc.ValidValueField == "" {
		return nil
	}
	value := category.FieldValue(src, a.desc.ValidValueField)
	if value == "" {
		// an absent value is a missing-field concern, not an invalid one
		return nil
	}
	for _, valid := range a.desc.ValidValues {
		if value == valid {
			return nil
		}
	}
	return a.issue(src, types.IssueInvalidCategoryValue, types.PriorityMedium,
		fmt.Sprintf("%s %q is not in the list of valid values", a.desc.ValidValueField, value),
		fmt.Sprintf("Update %s to a valid value", a.desc.ValidValueField))
}

// checkRequiredFields lists every missing field in the descriptor's field
// order so the description is deterministic.
func (a *Assessor) checkRequiredFields(src *types.SourceRecord) *types.DataQualityIssue {
	var missing []string
	for _, field := range a.desc.RequiredFields {
		if category.FieldValue(src, field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return a.issue(src, types.IssueMissingRequiredField, types.PriorityHigh,
		fmt.Sprintf("Record is missing required fields: %s", strings.Join(missing, ", ")),
		"Complete the record data in the source system")
}

func (a *Assessor) issue(src *types.SourceRecord, t types.IssueType, p types.Priority, description, recommendation string) *types.DataQualityIssue {
	return &types.DataQualityIssue{
		AssetID:        src.ID,
		AssetName:      src.Name,
		OrgName:        src.OrgName,
		Type:           t,
		Priority:       p,
		Description:    description,
		Recommendation: recommendation,
	}
}
