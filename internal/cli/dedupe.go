package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cmdbkit/cmdbrecon-core/internal/config"
	"github.com/cmdbkit/cmdbrecon-core/internal/dedupe"
	"github.com/cmdbkit/cmdbrecon-core/internal/loader"
	"github.com/cmdbkit/cmdbrecon-core/internal/output"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Find likely duplicates between source records and target items",
	Long: `Score every source record against the target candidate pool with a
weighted composite of identifier and name similarity, and bucket the
results by confidence: automatic update, manual review, or create new.`,
	Args: cobra.NoArgs,
	RunE: runDedupe,
}

func init() {
	rootCmd.AddCommand(dedupeCmd)

	dedupeCmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Source records: JSON file or directory of dumps")
	dedupeCmd.Flags().StringVarP(&targetFlag, "target", "t", "", "Target records: JSON file or directory of dumps")
	dedupeCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")

	dedupeCmd.MarkFlagRequired("source")
	dedupeCmd.MarkFlagRequired("target")
}

func runDedupe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(configFlag, filepath.Dir(sourceFlag))
	if err != nil {
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

	finder := dedupe.NewFinder(cfg, logger)
	result := finder.Run(sources, targets)

	report := output.NewDedupeReport(result,
		uuid.NewString(), time.Now().UTC().Format(time.RFC3339))

	writer, closer, err := openOutput(outputFlag)
	if err != nil {
		return err
	}
	defer closer()

	// duplicate scans are consumed by tooling; always JSON
	renderer := &output.JSONRenderer{}
	if err := renderer.RenderDedupe(writer, report); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	return nil
}
