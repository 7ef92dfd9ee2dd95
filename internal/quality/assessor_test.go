package quality

import (
	"strings"
	"testing"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

func descriptor(t *testing.T, name string) *category.Descriptor {
	t.Helper()
	d, err := category.Get(name)
	if err != nil {
		t.Fatalf("unknown category %s: %v", name, err)
	}
	return d
}

func matchedResult(src *types.SourceRecord) *types.MatchResult {
	return types.NewMatchResult(src.ID, src.Name).
		WithTarget("sys-1", src.Name).
		WithMatch(types.MatchExactName, 1.0, types.ActionUseExisting)
}

func TestAssessReadyRecord(t *testing.T) {
	a := NewAssessor(descriptor(t, "organizations"), 0.95)

	src := &types.SourceRecord{
		ID:          "org-1",
		Name:        "Acme",
		Status:      "Active",
		Identifiers: map[string]string{"coreid": "ACME1"},
	}

	label, issue := a.Assess(src, matchedResult(src))

	if label != types.QualityReady {
		t.Errorf("expected QualityReady, got %v", label)
	}
	if issue != nil {
		t.Errorf("expected no issue, got %+v", issue)
	}
}

func TestAssessMissingIdentifier(t *testing.T) {
	a := NewAssessor(descriptor(t, "organizations"), 0.95)

	src := &types.SourceRecord{ID: "org-1", Name: "Acme", Status: "Active"}

	label, issue := a.Assess(src, matchedResult(src))

	if label != types.QualityUnlinked {
		t.Errorf("expected QualityUnlinked, got %v", label)
	}
	if issue == nil {
		t.Fatal("expected an issue")
	}
	if issue.Type != types.IssueMissingIdentifier {
		t.Errorf("expected IssueMissingIdentifier, got %v", issue.Type)
	}
	if issue.Priority != types.PriorityMedium {
		t.Errorf("expected PriorityMedium, got %v", issue.Priority)
	}
}

// The identifier check outranks every other check, so a record missing both
// its identifier and required fields reports only the identifier.
func TestAssessIdentifierOutranksMissingFields(t *testing.T) {
	a := NewAssessor(descriptor(t, "organizations"), 0.95)

	src := &types.SourceRecord{ID: "org-1", Name: "Acme"} // no status either

	label, issue := a.Assess(src, matchedResult(src))

	if label != types.QualityUnlinked {
		t.Errorf("expected QualityUnlinked, got %v", label)
	}
	if issue == nil || issue.Type != types.IssueMissingIdentifier {
		t.Errorf("expected the identifier issue to win, got %+v", issue)
	}
}

func TestAssessFuzzyMatchBelowReview(t *testing.T) {
	a := NewAssessor(descriptor(t, "organizations"), 0.95)

	src := &types.SourceRecord{
		ID:          "org-1",
		Name:        "Acme",
		Status:      "Active",
		Identifiers: map[string]string{"coreid": "ACME1"},
	}
	result := types.NewMatchResult(src.ID, src.Name).
		WithTarget("sys-1", "Acme Group").
		WithMatch(types.MatchFuzzyName, 0.85, types.ActionReviewMatch)

	label, issue := a.Assess(src, result)

	if label != types.QualitySimilarName {
		t.Errorf("expected QualitySimilarName, got %v", label)
	}
	if issue == nil {
		t.Fatal("expected an issue")
	}
	if issue.Type != types.IssueSimilarName {
		t.Errorf("expected IssueSimilarName, got %v", issue.Type)
	}
	if issue.Priority != types.PriorityHigh {
		t.Errorf("expected PriorityHigh, got %v", issue.Priority)
	}
	if !strings.Contains(issue.Description, "85.0%") {
		t.Errorf("expected confidence in description, got %q", issue.Description)
	}
}

func TestAssessFuzzyMatchAtReviewThresholdIsClean(t *testing.T) {
	a := NewAssessor(descriptor(t, "organizations"), 0.95)

	src := &types.SourceRecord{
		ID:          "org-1",
		Name:        "Acme",
		Status:      "Active",
		Identifiers: map[string]string{"coreid": "ACME1"},
	}
	result := types.NewMatchResult(src.ID, src.Name).
		WithTarget("sys-1", "Acme Group").
		WithMatch(types.MatchFuzzyName, 0.95, types.ActionUseExisting)

	label, issue := a.Assess(src, result)

	if label != types.QualityReady {
		t.Errorf("expected QualityReady at the review threshold, got %v", label)
	}
	if issue != nil {
		t.Errorf("expected no issue, got %+v", issue)
	}
}

func TestAssessInvalidEnumValue(t *testing.T) {
	a := NewAssessor(descriptor(t, "virtualization"), 0.95)

	src := &types.SourceRecord{
		ID:     "vm-1",
		Name:   "srv01",
		Traits: map[string]string{"friendly-name": "srv01", "hypervisor": "VirtualBox"},
	}

	label, issue := a.Assess(src, matchedResult(src))

	if label != types.QualityInvalidValue {
		t.Errorf("expected QualityInvalidValue, got %v", label)
	}
	if issue == nil {
		t.Fatal("expected an issue")
	}
	if issue.Type != types.IssueInvalidCategoryValue {
		t.Errorf("expected IssueInvalidCategoryValue, got %v", issue.Type)
	}
	if !strings.Contains(issue.Description, "VirtualBox") {
		t.Errorf("expected offending value in description, got %q", issue.Description)
	}
}

// An absent enum value is a missing-field problem, not an invalid-value one.
func TestAssessEmptyEnumValueFallsToMissingFields(t *testing.T) {
	a := NewAssessor(descriptor(t, "virtualization"), 0.95)

	src := &types.SourceRecord{
		ID:     "vm-1",
		Name:   "srv01",
		Traits: map[string]string{"friendly-name": "srv01"},
	}

	label, issue := a.Assess(src, matchedResult(src))

	if label != types.QualityMissingData {
		t.Errorf("expected QualityMissingData, got %v", label)
	}
	if issue == nil || issue.Type != types.IssueMissingRequiredField {
		t.Errorf("expected IssueMissingRequiredField, got %+v", issue)
	}
}

func TestAssessMissingFieldsListedInOrder(t *testing.T) {
	a := NewAssessor(descriptor(t, "email"), 0.95)

	src := &types.SourceRecord{
		ID:     "email-1",
		Name:   "Mail",
		Traits: map[string]string{"type": "Microsoft 365"},
	}

	label, issue := a.Assess(src, matchedResult(src))

	if label != types.QualityMissingData {
		t.Errorf("expected QualityMissingData, got %v", label)
	}
	if issue == nil {
		t.Fatal("expected an issue")
	}
	if issue.Priority != types.PriorityHigh {
		t.Errorf("expected PriorityHigh, got %v", issue.Priority)
	}
	if !strings.Contains(issue.Description, "domain-s, webmail-url") {
		t.Errorf("expected missing fields joined in field order, got %q", issue.Description)
	}
}

func TestIssueCarriesRecordContext(t *testing.T) {
	a := NewAssessor(descriptor(t, "voice_pbx"), 0.95)

	src := &types.SourceRecord{ID: "pbx-1", Name: "Gateway", OrgName: "Acme", Status: "Active"}

	_, issue := a.Assess(src, matchedResult(src))

	if issue == nil {
		t.Fatal("expected an issue for the missing serial number")
	}
	if issue.AssetID != "pbx-1" || issue.AssetName != "Gateway" || issue.OrgName != "Acme" {
		t.Errorf("unexpected issue context: %+v", issue)
	}
}
