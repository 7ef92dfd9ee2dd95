package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/config"
	"github.com/cmdbkit/cmdbrecon-core/internal/loader"
	"github.com/cmdbkit/cmdbrecon-core/internal/output"
	"github.com/cmdbkit/cmdbrecon-core/internal/runner"
)

var (
	sourceFlag    string
	targetFlag    string
	summariesFlag string
	formatFlag    string
	outputFlag    string
	colorFlag     string
	quietFlag     bool
)

var matchCmd = &cobra.Command{
	Use:   "match <category>",
	Short: "Match source records against target configuration items",
	Long: `Match the source records of one category against the target candidate
pool and report, per record, the best match, a recommended action, and
any data quality problems.

Run "cmdbrecon categories" to list the available categories.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Source records: JSON file or directory of dumps")
	matchCmd.Flags().StringVarP(&targetFlag, "target", "t", "", "Target records: JSON file or directory of dumps")
	matchCmd.Flags().StringVar(&summariesFlag, "summaries", "", "Ancillary summary records carrying cross-reference codes (organizations only)")
	matchCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json, csv")
	matchCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	matchCmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
	matchCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress output when the run has no issues or errors")

	matchCmd.MarkFlagRequired("source")
	matchCmd.MarkFlagRequired("target")
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	desc, err := category.Get(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFlag, filepath.Dir(sourceFlag))
	if err != nil {
		// a broken config never fails the run; defaults take over
		logger.Warn("using default configuration", "error", err)
	}

	filter := loader.NewFilter(cfg.Paths.Include, cfg.Paths.Exclude)
	sources, err := loader.SourceRecords(sourceFlag, filter)
	if err != nil {
		return fmt.Errorf("failed to load source records: %w", err)
	}
	targets, err := loader.TargetRecords(targetFlag, filter)
	if err != nil {
		return fmt.Errorf("failed to load target records: %w", err)
	}

	if summariesFlag != "" {
		summaries, err := loader.SourceRecords(summariesFlag, filter)
		if err != nil {
			return fmt.Errorf("failed to load summary records: %w", err)
		}
		applied := loader.ApplyCrossReferences(sources, summaries)
		logger.Info("applied cross-reference codes", "count", applied)
	}

	rec, err := runner.New(desc, cfg, logger)
	if err != nil {
		return err
	}
	result := rec.Run(sources, targets)

	report := output.NewReport(result,
		uuid.NewString(), time.Now().UTC().Format(time.RFC3339))

	writer, closer, err := openOutput(outputFlag)
	if err != nil {
		return err
	}
	defer closer()

	if !quietFlag || len(result.Issues) > 0 || len(result.Errors) > 0 {
		renderer := output.NewRenderer(outputFormat(cfg), shouldUseColor(cfg, writer))
		if err := renderer.Render(writer, report); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
	}

	return nil
}

// openOutput returns the report writer and a cleanup func. An empty path
// means stdout.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// outputFormat resolves the output format: flag beats config beats "text"
func outputFormat(cfg *config.Config) output.Format {
	if formatFlag != "" {
		return output.Format(formatFlag)
	}
	if cfg.Output != nil && cfg.Output.Format != "" {
		return output.Format(cfg.Output.Format)
	}
	return output.FormatText
}

func shouldUseColor(cfg *config.Config, f *os.File) bool {
	mode := colorFlag
	if mode == "" && cfg.Output != nil {
		mode = cfg.Output.Color
	}

	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
