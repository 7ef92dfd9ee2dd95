// Package category defines the per-asset-category matching descriptors.
//
// The seven categories share one matching pipeline; a Descriptor carries the
// handful of values that differ between them: which identifier fields count
// as strong, which trait fields are required, which enumerated trait is
// validated, and how results are broken down for reporting.
package category

import (
	"fmt"

	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// FieldPair names one strong identifier on both sides of the comparison
type FieldPair struct {
	// Source is the identifier key on the source record
	Source string
	// Target is the equivalent field name on the target record
	Target string
}

// Descriptor parameterizes the matching pipeline for one asset category
type Descriptor struct {
	// Name is the category key used on the command line and in config
	Name string

	// DisplayName is the human-readable category name
	DisplayName string

	// TargetKind names the target-side record type for rationale notes
	// ("company", "server", "voice gateway", ...)
	TargetKind string

	// IdentifierFields are the strong identifier pairs tried, in order, by
	// the strong_identifier strategy
	IdentifierFields []FieldPair

	// QualityIdentifier is the identifier whose absence raises a
	// MissingIdentifier issue; empty disables the check
	QualityIdentifier string

	// RequiredFields are the fields that must be present and non-empty.
	// "name", "status" and "organization" resolve to the record header;
	// anything else resolves to identifiers, then traits.
	RequiredFields []string

	// ValidValueField is the enumerated trait checked against ValidValues;
	// empty disables the check
	ValidValueField string

	// ValidValues is the allow-list for ValidValueField
	ValidValues []string

	// AttributeField is the field carried onto MatchResult.Attribute for
	// reporting (hypervisor, email type, serial number, ...)
	AttributeField string

	// Dimension is the stats breakdown key derived from AttributeField
	// ("by_hypervisor", "by_email_type", ...); empty omits the breakdown
	Dimension string

	// OrgScoped restricts candidates to the source record's organization.
	// Organization-level matching is unscoped since there is no parent
	// scope; asset-level categories scope by company display name. Whether
	// the asset-level scoping should apply everywhere is pending product
	// confirmation.
	OrgScoped bool

	// Strategies is the default strategy order for this category
	Strategies []string

	// FilterStatus applies the configured valid-status allow-list before
	// matching
	FilterStatus bool

	// ConditionalStatuses lists statuses that turn a no-match disposition
	// into Conditional instead of Create New
	ConditionalStatuses []string
}

// FieldValue resolves a descriptor field name against a source record:
// the header fields first, then strong identifiers, then traits.
func FieldValue(r *types.SourceRecord, field string) string {
	switch field {
	case "name":
		return r.Name
	case "status":
		return r.Status
	case "organization":
		return r.OrgName
	}
	if v := r.Identifier(field); v != "" {
		return v
	}
	return r.Trait(field)
}

// Attribute returns the record's reporting attribute for this category
func (d *Descriptor) Attribute(r *types.SourceRecord) string {
	if d.AttributeField == "" {
		return ""
	}
	return FieldValue(r, d.AttributeField)
}

// IsConditionalStatus reports whether the status maps a no-match result to
// the Conditional action
func (d *Descriptor) IsConditionalStatus(status string) bool {
	for _, s := range d.ConditionalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Get returns the built-in descriptor for the given category name
func Get(name string) (*Descriptor, error) {
	for _, d := range Builtin() {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown category: %s", name)
}

// Names returns the built-in category names in registration order
func Names() []string {
	builtin := Builtin()
	names := make([]string, 0, len(builtin))
	for _, d := range builtin {
		names = append(names, d.Name)
	}
	return names
}
