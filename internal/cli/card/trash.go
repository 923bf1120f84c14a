package card

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	"github.com/jotdeck/jotdeck/internal/cli/styles"
	"github.com/jotdeck/jotdeck/internal/models"
)

// TrashCmd returns the card trash subcommand
func TrashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash",
		Short: "List trashed cards",
		Long: `List soft-deleted cards, most recently deleted first. Scope by
column (--column) or across a whole deck (--deck).

Examples:
  # Trashed cards in one column
  jotdeck card trash --column=01JF...

  # Trashed cards anywhere in a deck
  jotdeck card trash --deck=01JF...
`,
		RunE: runTrash,
	}

	// Optional flags (exactly one required)
	cmd.Flags().String("column", "", "Column ID")
	cmd.Flags().String("deck", "", "Deck ID")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runTrash(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	columnID, _ := cmd.Flags().GetString("column")
	deckID, _ := cmd.Flags().GetString("deck")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if (columnID == "") == (deckID == "") {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_SCOPE",
			"provide exactly one of --column or --deck",
			"Use --column=<id> for one column, or --deck=<id> for a whole deck"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitUsage)
		return nil
	}

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

	var cards []*models.Card
	if columnID != "" {
		cards, err = cliInstance.App.CardService.ListDeletedCards(ctx, columnID)
	} else {
		cards, err = cliInstance.App.CardService.ListDeletedCardsByDeck(ctx, deckID)
	}
	if err != nil {
		if fmtErr := formatter.Error("CARD_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode
	if quietMode {
		for _, c := range cards {
			fmt.Printf("%s\n", c.ID)
		}
		return nil
	}

	if jsonOutput {
		cardList := make([]map[string]interface{}, len(cards))
		for i, c := range cards {
			cardList[i] = map[string]interface{}{
				"id":                  c.ID,
				"column_id":           c.ColumnID,
				"content":             c.Content,
				"deleted_at":          c.DeletedAt,
				"deleted_with_column": c.DeletedWithColumn,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"cards":   cardList,
		})
	}

	// Human-readable output
	if len(cards) == 0 {
		fmt.Println("Trash is empty")
		return nil
	}

	fmt.Println("Trashed cards:")
	for _, c := range cards {
		line := firstLine(c.Content)
		note := ""
		if c.DeletedWithColumn {
			note = " [deleted with column]"
		}
		fmt.Printf("  %s (ID: %s)%s\n", styles.DeletedStyle.Render(line), c.ID, note)
	}
	return nil
}
