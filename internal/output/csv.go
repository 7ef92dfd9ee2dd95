package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVRenderer renders match results as CSV rows for spreadsheet review
type CSVRenderer struct{}

var csvHeader = []string{
	"source_id",
	"source_name",
	"target_id",
	"target_name",
	"match_type",
	"confidence",
	"recommended_action",
	"data_quality",
	"attribute",
	"notes",
}

// Render writes one CSV row per match result
func (r *CSVRenderer) Render(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, m := range report.Matches {
		row := []string{
			m.SourceID,
			m.SourceName,
			m.TargetID,
			m.TargetName,
			m.MatchType.String(),
			fmt.Sprintf("%.4f", m.Confidence),
			m.Action.String(),
			string(m.Quality),
			m.Attribute,
			m.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
