package config

// DefaultConfigHCL returns a documented starter configuration file
func DefaultConfigHCL() string {
	return `# cmdbrecon configuration
version = 1

# Source records with a status outside this list are skipped before matching.
valid_statuses = ["Active", "Product Only"]

matching {
  # Strategy cascade, tried in order until one matches. Categories without an
  # override use this order. Known strategies: strong_identifier, exact_name,
  # fuzzy_name.
  strategies = ["strong_identifier", "exact_name", "fuzzy_name"]

  # Minimum similarity for a fuzzy name match to count at all.
  fuzzy_threshold = 0.8

  # Fuzzy matches scoring at or above this are safe to apply without review.
  review_threshold = 0.95

  # Name normalization substitutions, applied in order after lowercasing.
  # An omitted replacement deletes the matched text.
  pattern {
    regex = "\\s*,?\\s*(inc|incorporated|llc|ltd|limited|corp|corporation|co)\\.?$"
  }
}

# Per-category overrides. The label is the category name from
# "cmdbrecon categories".
#
# category "lob_applications" {
#   strategies       = ["exact_name", "fuzzy_name"]
#   fuzzy_threshold  = 0.85
#   valid_values     = ["Analytics", "CRM", "ERP", "Other"]
# }

dedupe {
  # Composite score at or above auto_threshold: automatic update.
  # Between review_threshold and auto_threshold: manual review.
  auto_threshold   = 0.8
  review_threshold = 0.6

  # Field weights for the composite score; they must sum to 1.0.
  weight "serial_number" { value = 0.4 }
  weight "mac_address"   { value = 0.3 }
  weight "hostname"      { value = 0.2 }
  weight "name"          { value = 0.1 }
}

paths {
  # Record files considered when a directory is given instead of a file.
  include = ["**/*.json"]
  exclude = []
}

output {
  # Output format: text, json, csv
  format = "text"

  # Color mode: auto, always, never
  color = "auto"
}
`
}
