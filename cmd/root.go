// =============================================================================
// POS Report Processor - Root Command
// =============================================================================
//
// Defines the root command for the Cobra CLI. Subcommands:
//   posreport process [input-dir]  - run the report pipeline
//   posreport rules                - show the active cleaning rules
//   posreport version              - show version information
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// cfgFile is the path to the configuration file (--config).
var cfgFile string

// verbose enables debug logging (--verbose).
var verbose bool

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "posreport",
	Short: "POS Report Processor - Merge daily POS exports into one workbook",
	Long: `POS Report Processor merges a folder of tab-delimited point-of-sale
export files into a single XLSX workbook with three sheets:

  - a detail sheet with every merged, cleaned row
  - a transaction summary with one row per receipt
  - a per-dish sales breakdown with summed quantities

Files that fail to decode are skipped with a warning; the run only fails
when no file can be read at all or the output cannot be written.

Example Usage:
  posreport process ./exports                      # workbook next to the inputs
  posreport process ./exports --output report.xlsx # explicit output path
  posreport rules                                  # show dish cleaning rules`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the console logger used by all commands. --verbose
// wins over the configured level.
func newLogger(configuredLevel string) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(configuredLevel); err == nil && configuredLevel != "" {
		level = parsed
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
