package cleanup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	"github.com/jotdeck/jotdeck/internal/models"
)

// CleanupCmd returns the cleanup command
func CleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Purge old items from the trash",
		Long: `Permanently delete cards and columns that have been in the trash
longer than the retention window (default 30 days, configurable), and
reclaim tags that no longer appear on any card.

Examples:
  # Use the configured retention window
  jotdeck cleanup

  # Override the window for this run
  jotdeck cleanup --days=7

  # Empty the trash entirely
  jotdeck cleanup --days=0
`,
		RunE: runCleanup,
	}

	// Optional flags
	cmd.Flags().Int("days", -1, "Retention window in days (overrides config; 0 empties the trash)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runCleanup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	days, _ := cmd.Flags().GetInt("days")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	var result models.CleanupResult
	if cmd.Flags().Changed("days") {
		threshold := time.Now().UTC().AddDate(0, 0, -days)
		result, err = cliInstance.App.CleanupService.RunWithThreshold(ctx, threshold)
	} else {
		result, err = cliInstance.App.CleanupService.Run(ctx)
	}
	if err != nil {
		if fmtErr := formatter.Error("CLEANUP_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"removed": map[string]interface{}{
				"cards":       result.Cards,
				"columns":     result.Columns,
				"orphan_tags": result.OrphanTags,
			},
		})
	}

	fmt.Printf("✓ Cleanup finished: %d cards, %d columns, %d orphan tags removed\n",
		result.Cards, result.Columns, result.OrphanTags)
	return nil
}
