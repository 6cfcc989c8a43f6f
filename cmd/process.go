// =============================================================================
// POS Report Processor - Process Command
// =============================================================================
//
// The 'process' command runs the full pipeline for one input directory:
//
//   1. Load configuration (built-in defaults when no file exists)
//   2. Discover export files in the input directory
//   3. Parse each file with encoding fallback; skip unreadable ones
//   4. Merge, forward-fill, clean the dish-name column
//   5. Derive the transaction summary and dish breakdown
//   6. Write the three-sheet workbook
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/pos-report-processor/internal/config"
	"github.com/ginjaninja78/pos-report-processor/internal/pipeline"
)

// outputPath is the explicit workbook path (--output).
var outputPath string

// inputDir is the input directory (--input, or first positional argument).
var inputDir string

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process [input-dir]",
	Short: "Merge POS export files and write the report workbook",
	Long: `The process command scans the input directory for POS export files,
merges them into one table, cleans the dish-name column, and writes a
workbook with detail, transaction summary, and dish breakdown sheets.

Files that fail to decode with both configured encodings are skipped with
a warning. The command fails when the input directory is missing, when no
file at all can be parsed, or when the output path cannot be written.`,

	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			inputDir = args[0]
		}
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&inputDir,
		"input",
		"",
		"Directory containing the POS export files",
	)
	processCmd.Flags().StringVarP(
		&outputPath,
		"output",
		"o",
		"",
		"Path of the output workbook (default: pattern from config, in the input directory)",
	)
}

// runProcess executes the pipeline and prints the per-file results and the
// run summary.
func runProcess() error {
	startTime := time.Now()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if cfg.InputDir == "" {
		return fmt.Errorf("no input directory given (argument, --input, or input_dir in config)")
	}

	logger := newLogger(cfg.LogLevel)

	p := pipeline.New(cfg, logger)
	result, err := p.Run()
	if err != nil {
		return err
	}

	// Per-file results, teacher-style check/cross lines.
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	for _, fr := range result.Files {
		if fr.Err != nil {
			fmt.Printf("  %s %s: %v\n", red("✗"), filepath.Base(fr.Path), fr.Err)
		} else {
			fmt.Printf("  %s %s (%d rows, %s)\n", green("✓"), filepath.Base(fr.Path), fr.Rows, fr.Encoding)
		}
	}

	out := p.OutputPath(outputPath, startTime)
	if err := p.Export(result, out); err != nil {
		return err
	}

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Files found:     %d\n", result.Stats.FilesFound)
	fmt.Printf("Files parsed:    %d\n", result.Stats.FilesParsed)
	fmt.Printf("Files skipped:   %d\n", result.Stats.FilesSkipped)
	fmt.Printf("Rows merged:     %d\n", result.Stats.RowsMerged)
	fmt.Printf("Transactions:    %d\n", result.Stats.Transactions)
	fmt.Printf("Dishes:          %d\n", result.Stats.Dishes)
	fmt.Printf("Output:          %s\n", out)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	return nil
}
