// =============================================================================
// POS Report Processor - Rules Command
// =============================================================================
//
// The 'rules' command prints the dish-name cleaning rules the current
// configuration would apply, in application order, so the rule set can be
// reviewed without running the pipeline.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/pos-report-processor/internal/cleaner"
	"github.com/ginjaninja78/pos-report-processor/internal/config"
)

// rulesCmd represents the 'rules' command.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the effective dish-name cleaning rules",
	Long: `Prints the cleaning rules that would be applied to the dish-name
column under the current configuration, in the order they run. Useful for
verifying a custom rule set before processing.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		c := cleaner.New(cfg.Cleaning)
		lines := c.Describe()

		fmt.Printf("Cleaning rules for column %q:\n", cfg.Columns.DishName)
		if len(lines) == 0 {
			fmt.Println("  (none - column passes through unchanged)")
			return nil
		}
		for i, line := range lines {
			fmt.Printf("  %2d. %s\n", i+1, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
