package column

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	"github.com/jotdeck/jotdeck/internal/cli/styles"
)

// TrashCmd returns the column trash subcommand
func TrashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash",
		Short: "List trashed columns in a deck",
		Long: `List soft-deleted columns in a deck, most recently deleted first.

Examples:
  # Human-readable list
  jotdeck column trash --deck=01JF...

  # Quiet mode (one ID per line)
  jotdeck column trash --deck=01JF... --quiet
`,
		RunE: runTrash,
	}

	// Required flags
	cmd.Flags().String("deck", "", "Deck ID (required)")
	if err := cmd.MarkFlagRequired("deck"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runTrash(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deckID, _ := cmd.Flags().GetString("deck")
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

	columns, err := cliInstance.App.ColumnService.ListDeletedColumns(ctx, deckID)
	if err != nil {
		if fmtErr := formatter.Error("COLUMN_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode
	if quietMode {
		for _, col := range columns {
			fmt.Printf("%s\n", col.ID)
		}
		return nil
	}

	if jsonOutput {
		columnList := make([]map[string]interface{}, len(columns))
		for i, col := range columns {
			columnList[i] = map[string]interface{}{
				"id":         col.ID,
				"name":       col.Name,
				"position":   col.Position,
				"deleted_at": col.DeletedAt,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"columns": columnList,
		})
	}

	// Human-readable output
	if len(columns) == 0 {
		fmt.Println("Trash is empty")
		return nil
	}

	fmt.Println("Trashed columns:")
	for _, col := range columns {
		deleted := ""
		if col.DeletedAt != nil {
			deleted = col.DeletedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %s (ID: %s, deleted %s)\n",
			styles.DeletedStyle.Render(col.Name), col.ID, deleted)
	}
	return nil
}
