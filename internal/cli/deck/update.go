package deck

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	"github.com/jotdeck/jotdeck/internal/models"
	deckservice "github.com/jotdeck/jotdeck/internal/services/deck"
)

// UpdateCmd returns the deck update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a deck",
		Long: `Update a deck's name or sort order. Fields not provided are left unchanged.

Examples:
  # Rename a deck
  jotdeck deck update --id=01JF... --name="Archive"

  # Change card sort order
  jotdeck deck update --id=01JF... --sort=score_desc
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().String("id", "", "Deck ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("name", "", "New deck name")
	cmd.Flags().String("sort", "", "New card sort order")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deckID, _ := cmd.Flags().GetString("id")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := deckservice.UpdateDeckRequest{DeckID: deckID}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("sort") {
		sort, _ := cmd.Flags().GetString("sort")
		order := models.ParseSortOrder(sort)
		req.SortOrder = &order
	}

	if req.Name == nil && req.SortOrder == nil {
		if fmtErr := formatter.ErrorWithSuggestion("NOTHING_TO_UPDATE",
			"no fields to update",
			"Provide --name and/or --sort"); fmtErr != nil {
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

	deck, err := cliInstance.App.DeckService.UpdateDeck(ctx, req)
	if err != nil {
		if fmtErr := formatter.Error("DECK_UPDATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Output based on mode
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"deck": map[string]interface{}{
				"id":         deck.ID,
				"name":       deck.Name,
				"sort_order": string(deck.SortOrder),
			},
		})
	}

	fmt.Printf("✓ Deck %s updated successfully\n", deck.ID)
	return nil
}
