package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/cmdbkit/cmdbrecon-core/internal/stats"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// TextRenderer renders the report in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes the reconciliation report in text format
func (r *TextRenderer) Render(w io.Writer, report *Report) error {
	if !r.ColorEnabled {
		color.NoColor = true
	}

	fmt.Fprintf(w, "cmdbrecon: reconciling category %q\n\n", report.Category)

	for _, m := range report.Matches {
		r.renderMatch(w, m)
	}

	if len(report.Issues) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "Data quality issues (%d):\n", len(report.Issues))
		for _, issue := range report.Issues {
			r.renderIssue(w, issue)
		}
	}

	if len(report.Errors) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "Failed records (%d):\n", len(report.Errors))
		for _, e := range report.Errors {
			fmt.Fprintf(w, "  %s  %s\n", e.RecordID, e.Message)
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	r.renderStats(w, report.Stats)

	fmt.Fprintf(w, "Summary: %d records, %d data quality issues, %d errors\n",
		len(report.Matches), len(report.Issues), len(report.Errors))

	return nil
}

func (r *TextRenderer) renderMatch(w io.Writer, m *types.MatchResult) {
	fmt.Fprintf(w, "%s  %s  %s\n", r.colorAction(m.Action), m.MatchType, m.SourceName)

	if m.Matched() {
		fmt.Fprintf(w, "  -> %s (%s)  confidence %.1f%%\n", m.TargetName, m.TargetID, m.Confidence*100)
	}
	if m.Notes != "" {
		fmt.Fprintf(w, "  %s\n", m.Notes)
	}
	if m.Quality != types.QualityReady {
		fmt.Fprintf(w, "  quality: %s\n", m.Quality)
	}

	fmt.Fprintln(w)
}

func (r *TextRenderer) renderIssue(w io.Writer, issue *types.DataQualityIssue) {
	fmt.Fprintf(w, "  %s  %s  %s\n", r.colorPriority(issue.Priority), issue.Type, issue.AssetName)
	fmt.Fprintf(w, "    %s\n", issue.Description)
	fmt.Fprintf(w, "    recommendation: %s\n", issue.Recommendation)
}

func (r *TextRenderer) renderStats(w io.Writer, s *stats.Stats) {
	if s.Empty() {
		fmt.Fprintln(w, "No records processed")
		return
	}

	fmt.Fprintf(w, "Statistics (%d records):\n\n", s.Total)
	r.renderBreakdown(w, "Match Type", s.ByMatchType)
	r.renderBreakdown(w, "Recommended Action", s.ByAction)
	r.renderBreakdown(w, "Data Quality", s.ByQuality)
	if s.ByDimension != nil {
		r.renderBreakdown(w, dimensionTitle(s.Dimension), s.ByDimension)
	}
}

func (r *TextRenderer) renderBreakdown(w io.Writer, title string, b *stats.Breakdown) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{title, "Count", "Percent"})
	table.SetAutoWrapText(false)
	for _, label := range b.Labels() {
		bucket, _ := b.Get(label)
		table.Append([]string{label, fmt.Sprintf("%d", bucket.Count), fmt.Sprintf("%.1f%%", bucket.Percentage)})
	}
	table.Render()
	fmt.Fprintln(w)
}

// dimensionTitle turns a breakdown key like "by_email_type" into a table title
func dimensionTitle(dimension string) string {
	title := strings.TrimPrefix(dimension, "by_")
	title = strings.ReplaceAll(title, "_", " ")
	if title == "" {
		return dimension
	}
	return strings.ToUpper(title[:1]) + title[1:]
}

func (r *TextRenderer) colorAction(a types.Action) string {
	str := a.String()
	if !r.ColorEnabled {
		return str
	}

	switch a {
	case types.ActionUseExisting:
		return color.New(color.FgGreen).Sprint(str)
	case types.ActionReviewMatch:
		return color.New(color.FgYellow, color.Bold).Sprint(str)
	case types.ActionCreateNew:
		return color.New(color.FgCyan).Sprint(str)
	case types.ActionConditional:
		return color.New(color.FgMagenta).Sprint(str)
	default:
		return str
	}
}

func (r *TextRenderer) colorPriority(p types.Priority) string {
	str := p.String()
	if !r.ColorEnabled {
		return str
	}

	switch p {
	case types.PriorityHigh:
		return color.New(color.FgRed, color.Bold).Sprint(str)
	case types.PriorityMedium:
		return color.New(color.FgYellow).Sprint(str)
	default:
		return str
	}
}
