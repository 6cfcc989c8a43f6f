// =============================================================================
// POS Report Processor - Main Entry Point
// =============================================================================
//
// Command-line tool that merges a folder of tab-delimited point-of-sale
// export files, cleans the dish-name column, and writes a three-sheet
// XLSX workbook (detail, transaction summary, per-dish breakdown).
//
// USAGE:
//   posreport process [input-dir]  - Merge and process all POS exports in a folder
//   posreport rules                - Show the effective dish-name cleaning rules
//   posreport version              - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core processing logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/pos-report-processor/cmd"
)

func main() {
	cmd.Execute()
}
