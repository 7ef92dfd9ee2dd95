package types

import "strings"

// SourceRecord is a record fetched from the source asset-documentation
// platform, reduced to the fields the matcher consumes. Identifiers holds the
// strong identifier fields (serial_number, mac_address, asset_tag, hostname,
// ip_address, coreid); Traits holds the category-specific attribute bag.
type SourceRecord struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	OrgID       string            `json:"organization_id,omitempty"`
	OrgName     string            `json:"organization_name,omitempty"`
	Status      string            `json:"status,omitempty"`
	Identifiers map[string]string `json:"identifiers,omitempty"`
	Traits      map[string]string `json:"traits,omitempty"`
}

// Identifier returns the trimmed value of a strong identifier field, or ""
func (r *SourceRecord) Identifier(field string) string {
	if r.Identifiers == nil {
		return ""
	}
	return strings.TrimSpace(r.Identifiers[field])
}

// Trait returns the trimmed value of a trait field, or ""
func (r *SourceRecord) Trait(field string) string {
	if r.Traits == nil {
		return ""
	}
	return strings.TrimSpace(r.Traits[field])
}

// HasTrait reports whether the trait is present and non-empty
func (r *SourceRecord) HasTrait(field string) bool {
	return r.Trait(field) != ""
}

// TargetRecord is a record fetched from the target ITSM platform. SysID is
// the platform's immutable unique id. Fields holds the target-side strong
// identifier and attribute values keyed by target field name.
type TargetRecord struct {
	SysID   string            `json:"sys_id"`
	Name    string            `json:"name"`
	Company string            `json:"company,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Field returns the trimmed value of a target field, or ""
func (r *TargetRecord) Field(name string) string {
	if r.Fields == nil {
		return ""
	}
	return strings.TrimSpace(r.Fields[name])
}

// RecordError captures a per-record processing failure. Failed records are
// reported and skipped; they never abort the run.
type RecordError struct {
	RecordID   string `json:"record_id"`
	RecordName string `json:"record_name,omitempty"`
	Message    string `json:"message"`
}
