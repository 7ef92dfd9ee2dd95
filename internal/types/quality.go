package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Quality is the data quality verdict attached to a match result.
// Every category uses QualityReady plus the subset of warning labels its
// assessor checks can produce.
type Quality string

const (
	// QualityReady means the record can be migrated as-is
	QualityReady Quality = "Ready"
	// QualityUnlinked means the record is usable but carries no strong
	// identifier linking it to the target system
	QualityUnlinked Quality = "No Identifier"
	// QualitySimilarName means the record matched on similarity alone and
	// needs human review
	QualitySimilarName Quality = "Similar Name"
	// QualityInvalidValue means a category field holds a value outside the
	// configured valid set
	QualityInvalidValue Quality = "Invalid Value"
	// QualityMissingData means required fields are absent or empty
	QualityMissingData Quality = "Missing Data"
	// QualityInactive means the record was skipped by the status filter
	QualityInactive Quality = "Inactive"
)

// Priority ranks how urgently a data quality issue needs attention
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the string representation of the priority
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Priority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePriority(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePriority parses a string into a Priority
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return PriorityLow, fmt.Errorf("unknown priority: %s", s)
	}
}

// IssueType classifies a data quality issue
type IssueType int

const (
	// IssueMissingIdentifier means the category's strong identifier is absent
	IssueMissingIdentifier IssueType = iota
	// IssueSimilarName means a fuzzy match was accepted provisionally
	IssueSimilarName
	// IssueInvalidCategoryValue means an enumerated field holds an
	// unrecognized value
	IssueInvalidCategoryValue
	// IssueMissingRequiredField means one or more required fields are empty
	IssueMissingRequiredField
)

// String returns the string representation of the issue type
func (t IssueType) String() string {
	switch t {
	case IssueMissingIdentifier:
		return "Missing Identifier"
	case IssueSimilarName:
		return "Similar Name"
	case IssueInvalidCategoryValue:
		return "Invalid Category Value"
	case IssueMissingRequiredField:
		return "Missing Required Field"
	default:
		return "Unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (t IssueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// DataQualityIssue describes a defect on a source record that a human (or a
// downstream workflow) should resolve before or after migration.
// The assessor emits at most one issue per source record.
type DataQualityIssue struct {
	// AssetID is the source record id
	AssetID string `json:"asset_id"`

	// AssetName is the source record display name
	AssetName string `json:"asset_name"`

	// OrgName is the owning organization display name
	OrgName string `json:"organization_name,omitempty"`

	// Type classifies the issue
	Type IssueType `json:"issue_type"`

	// Priority ranks the issue
	Priority Priority `json:"priority"`

	// Description explains the issue in human terms
	Description string `json:"description"`

	// Recommendation suggests how to resolve it
	Recommendation string `json:"recommendation"`
}
