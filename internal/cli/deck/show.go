package deck

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	"github.com/jotdeck/jotdeck/internal/cli/styles"
)

// ShowCmd returns the deck show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show deck details",
		Long:  "Display a deck's metadata and its columns in order.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Deck ID (can also be provided as positional argument)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var deckID string
	if len(args) > 0 {
		deckID = args[0]
	} else {
		deckID, _ = cmd.Flags().GetString("id")
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if deckID == "" {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_DECK_ID",
			"deck ID is required",
			"Usage: jotdeck deck show <id> or jotdeck deck show --id=<id>"); fmtErr != nil {
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
		fmt.Printf("%s\n", deck.ID)
		return nil
	}

	if jsonOutput {
		columnList := make([]map[string]interface{}, len(columns))
		for i, col := range columns {
			columnList[i] = map[string]interface{}{
				"id":       col.ID,
				"name":     col.Name,
				"position": col.Position,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"deck": map[string]interface{}{
				"id":         deck.ID,
				"name":       deck.Name,
				"sort_order": string(deck.SortOrder),
				"created_at": deck.CreatedAt,
				"columns":    columnList,
			},
		})
	}

	// Human-readable output
	fmt.Println(styles.TitleStyle.Render(deck.Name))
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("ID:"), styles.ValueStyle.Render(deck.ID))
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Sort:"), styles.ValueStyle.Render(string(deck.SortOrder)))
	if len(columns) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No columns"))
		return nil
	}
	fmt.Println(styles.LabelStyle.Render("Columns:"))
	for _, col := range columns {
		fmt.Printf("  %d. %s (ID: %s)\n", col.Position, col.Name, col.ID)
	}
	return nil
}
