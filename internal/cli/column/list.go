package column

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns in a deck",
		Long: `List all active columns in a deck, in position order.

Examples:
  # Human-readable list
  jotdeck column list --deck=01JF...

  # JSON output for agents
  jotdeck column list --deck=01JF... --json

  # Quiet mode (one ID per line)
  jotdeck column list --deck=01JF... --quiet
`,
		RunE: runList,
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

func runList(cmd *cobra.Command, args []string) error {
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

	// Validate deck exists
	deck, err := cliInstance.App.DeckService.GetDeckByID(ctx, deckID)
	if err != nil {
		if fmtErr := formatter.Error("DECK_NOT_FOUND", fmt.Sprintf("deck %s not found", deckID)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	columns, err := cliInstance.App.ColumnService.ListColumnsByDeck(ctx, deckID)
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
				"id":       col.ID,
				"name":     col.Name,
				"deck_id":  col.DeckID,
				"position": col.Position,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"columns": columnList,
		})
	}

	// Human-readable output
	if len(columns) == 0 {
		fmt.Printf("No columns found in deck '%s'\n", deck.Name)
		return nil
	}

	fmt.Printf("Columns in deck '%s':\n", deck.Name)
	for _, col := range columns {
		fmt.Printf("  %d. %s (ID: %s)\n", col.Position, col.Name, col.ID)
	}
	return nil
}
