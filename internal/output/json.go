package output

import (
	"encoding/json"
	"io"
)

// JSONRenderer renders the report in JSON format
type JSONRenderer struct{}

// Render writes the reconciliation report as indented JSON
func (r *JSONRenderer) Render(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// RenderDedupe writes a duplicate scan report as indented JSON
func (r *JSONRenderer) RenderDedupe(w io.Writer, report *DedupeReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
