package output

import "io"

// Renderer defines the interface for report renderers
type Renderer interface {
	// Render writes the reconciliation report to the writer
	Render(w io.Writer, report *Report) error
}

// Format represents an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	case FormatCSV:
		return &CSVRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}
