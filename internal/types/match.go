package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MatchType classifies how a source record was paired with a target record
type MatchType int

const (
	// MatchNone means no candidate satisfied any strategy
	MatchNone MatchType = iota
	// MatchSkipped means the record was excluded before any strategy ran
	MatchSkipped
	// MatchFuzzyName is a similarity-based name match below full confidence
	MatchFuzzyName
	// MatchExactName is an equality match on normalized names
	MatchExactName
	// MatchStrongIdentifier is an equality match on a strong identifier
	// (serial number, MAC address, asset tag, cross-reference code)
	MatchStrongIdentifier
)

// String returns the string representation of the match type
func (t MatchType) String() string {
	switch t {
	case MatchStrongIdentifier:
		return "Strong Identifier"
	case MatchExactName:
		return "Exact Name"
	case MatchFuzzyName:
		return "Fuzzy Name"
	case MatchSkipped:
		return "Skipped"
	case MatchNone:
		return "No Match"
	default:
		return "Unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (t MatchType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *MatchType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseMatchType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseMatchType parses a string into a MatchType
func ParseMatchType(s string) (MatchType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strong identifier":
		return MatchStrongIdentifier, nil
	case "exact name":
		return MatchExactName, nil
	case "fuzzy name":
		return MatchFuzzyName, nil
	case "skipped":
		return MatchSkipped, nil
	case "no match":
		return MatchNone, nil
	default:
		return MatchNone, fmt.Errorf("unknown match type: %s", s)
	}
}

// Action is the recommended workflow disposition for a match
type Action int

const (
	// ActionCreateNew means no target record exists and one should be created
	ActionCreateNew Action = iota
	// ActionConditional means migration depends on the record's status
	ActionConditional
	// ActionSkip means the record should not be migrated
	ActionSkip
	// ActionReviewMatch means the match needs human confirmation
	ActionReviewMatch
	// ActionUseExisting means the matched target record should be reused
	ActionUseExisting
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionUseExisting:
		return "Use Existing"
	case ActionReviewMatch:
		return "Review Match"
	case ActionCreateNew:
		return "Create New"
	case ActionSkip:
		return "Skip"
	case ActionConditional:
		return "Conditional"
	default:
		return "Unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Action) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseAction(str)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction parses a string into an Action
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "use existing":
		return ActionUseExisting, nil
	case "review match":
		return ActionReviewMatch, nil
	case "create new":
		return ActionCreateNew, nil
	case "skip":
		return ActionSkip, nil
	case "conditional":
		return ActionConditional, nil
	default:
		return ActionCreateNew, fmt.Errorf("unknown action: %s", s)
	}
}

// MatchResult pairs one source record with its best target candidate, or
// records that no candidate qualified
type MatchResult struct {
	// SourceID is the source system record id
	SourceID string `json:"source_id"`

	// SourceName is the source record display name
	SourceName string `json:"source_name"`

	// TargetID is the target system record id (empty if no match)
	TargetID string `json:"target_id,omitempty"`

	// TargetName is the matched target record display name (empty if no match)
	TargetName string `json:"target_name,omitempty"`

	// MatchType classifies the winning strategy
	MatchType MatchType `json:"match_type"`

	// Confidence is in [0.0, 1.0]: 1.0 for strong/exact matches, the raw
	// similarity for fuzzy matches, 0.0 for no-match and skipped
	Confidence float64 `json:"confidence"`

	// Action is the recommended migration disposition
	Action Action `json:"recommended_action"`

	// Quality is the data quality label assigned by the assessor
	Quality Quality `json:"data_quality"`

	// Attribute carries the category-specific reporting value
	// (hypervisor, email type, serial number, ...)
	Attribute string `json:"attribute,omitempty"`

	// Notes is a human-readable rationale for the decision
	Notes string `json:"notes,omitempty"`
}

// NewMatchResult creates a MatchResult for the given source record
func NewMatchResult(sourceID, sourceName string) *MatchResult {
	return &MatchResult{
		SourceID:   sourceID,
		SourceName: sourceName,
		MatchType:  MatchNone,
		Quality:    QualityReady,
	}
}

// WithTarget sets the matched target record and returns the result for chaining
func (m *MatchResult) WithTarget(id, name string) *MatchResult {
	m.TargetID = id
	m.TargetName = name
	return m
}

// WithMatch sets the match classification and confidence
func (m *MatchResult) WithMatch(t MatchType, confidence float64, action Action) *MatchResult {
	m.MatchType = t
	m.Confidence = confidence
	m.Action = action
	return m
}

// WithAttribute sets the category-specific reporting value
func (m *MatchResult) WithAttribute(value string) *MatchResult {
	m.Attribute = value
	return m
}

// WithNotes sets the rationale note
func (m *MatchResult) WithNotes(notes string) *MatchResult {
	m.Notes = notes
	return m
}

// Matched reports whether a target record was selected
func (m *MatchResult) Matched() bool {
	return m.TargetID != ""
}
