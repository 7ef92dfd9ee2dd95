package category

// Strategy names understood by the matcher
const (
	StrategyStrongIdentifier = "strong_identifier"
	StrategyExactName        = "exact_name"
	StrategyFuzzyName        = "fuzzy_name"
)

var defaultStrategies = []string{StrategyStrongIdentifier, StrategyExactName, StrategyFuzzyName}
var nameStrategies = []string{StrategyExactName, StrategyFuzzyName}

// Builtin returns the seven built-in category descriptors
func Builtin() []*Descriptor {
	return []*Descriptor{
		{
			Name:              "organizations",
			DisplayName:       "Organizations",
			TargetKind:        "company",
			IdentifierFields:  []FieldPair{{Source: "coreid", Target: "u_core_id"}},
			QualityIdentifier: "coreid",
			RequiredFields:    []string{"name", "status"},
			AttributeField:    "coreid",
			Strategies:        defaultStrategies,
			// Organizations are the parent scope, so matching runs across
			// the whole candidate pool.
			OrgScoped:           false,
			FilterStatus:        true,
			ConditionalStatuses: []string{"Product Only"},
		},
		{
			Name:            "virtualization",
			DisplayName:     "Servers & Virtualization",
			TargetKind:      "server",
			RequiredFields:  []string{"friendly-name", "hypervisor"},
			ValidValueField: "hypervisor",
			ValidValues:     []string{"VMware", "Hyper-V", "Xen", "Nutanix", "Other"},
			AttributeField:  "hypervisor",
			Dimension:       "by_hypervisor",
			OrgScoped:       true,
			Strategies:      nameStrategies,
		},
		{
			Name:              "voice_pbx",
			DisplayName:       "Voice / PBX",
			TargetKind:        "voice gateway",
			IdentifierFields:  []FieldPair{{Source: "serial_number", Target: "serial_number"}},
			QualityIdentifier: "serial_number",
			RequiredFields:    []string{"name", "organization"},
			AttributeField:    "serial_number",
			OrgScoped:         true,
			Strategies:        defaultStrategies,
		},
		{
			Name:            "email",
			DisplayName:     "Email Services",
			TargetKind:      "email service",
			RequiredFields:  []string{"type", "domain-s", "webmail-url"},
			ValidValueField: "type",
			ValidValues: []string{
				"Microsoft 365", "Google Apps", "Exchange 2019", "Exchange 2016",
				"Exchange 2013", "Office 365", "Other",
			},
			AttributeField: "type",
			Dimension:      "by_email_type",
			OrgScoped:      true,
			Strategies:     nameStrategies,
		},
		{
			Name:            "lob_applications",
			DisplayName:     "Line-of-Business Applications",
			TargetKind:      "application",
			RequiredFields:  []string{"name", "application-manager"},
			ValidValueField: "category",
			ValidValues: []string{
				"Analytics", "Automation", "Billing & Payments", "Compliance", "CRM",
				"Database", "Development", "ERP", "Encryption", "File Sharing/Hosting",
				"Finance", "Fleet Management", "HR/HRIS", "IT Tools", "Logistics / Shipping",
				"Marketing", "Operations", "Sales", "Security", "Other",
			},
			AttributeField: "category",
			Dimension:      "by_application_type",
			OrgScoped:      true,
			Strategies:     nameStrategies,
		},
		{
			Name:            "printing",
			DisplayName:     "Printing",
			TargetKind:      "printer",
			RequiredFields:  []string{"location"},
			ValidValueField: "printer-type",
			ValidValues: []string{
				"Laser", "Inkjet", "Thermal", "Dot Matrix", "3D", "Label",
				"Multifunction", "Other",
			},
			AttributeField: "printer-type",
			Dimension:      "by_printer_type",
			OrgScoped:      true,
			Strategies:     nameStrategies,
		},
		{
			Name:        "configuration_items",
			DisplayName: "Configuration Items",
			TargetKind:  "configuration item",
			IdentifierFields: []FieldPair{
				{Source: "serial_number", Target: "serial_number"},
				{Source: "mac_address", Target: "mac_address"},
				{Source: "asset_tag", Target: "asset_tag"},
				{Source: "hostname", Target: "hostname"},
			},
			QualityIdentifier: "serial_number",
			RequiredFields:    []string{"name"},
			AttributeField:    "serial_number",
			OrgScoped:         true,
			Strategies:        defaultStrategies,
		},
	}
}
