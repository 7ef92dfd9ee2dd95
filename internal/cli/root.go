// Package cli implements the cmdbrecon command line interface.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	configFlag  string
	verboseFlag bool
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "cmdbrecon",
	Short: "CMDB reconciliation engine",
	Long: `cmdbrecon matches asset records exported from a documentation platform
against configuration items in an ITSM CMDB and reports, per record, the
best match, a recommended action, and any data quality problems.

Records are matched through a cascade of strategies: strong identifiers
first, then exact normalized names, then fuzzy name similarity.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to .cmdbrecon.hcl configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}

// newLogger builds the run logger; verbose mode lowers the level to debug
func newLogger() hclog.Logger {
	level := hclog.Warn
	if verboseFlag {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "cmdbrecon",
		Level:  level,
		Output: os.Stderr,
	})
}
