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

// CreateCmd returns the deck create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new deck",
		Long: `Create a new deck.

Examples:
  # Create a deck (human-readable output)
  jotdeck deck create --name="Reading Notes"

  # Pick a sort order for cards (created_desc, created_asc, score_desc, score_asc)
  jotdeck deck create --name="Ideas" --sort=score_desc

  # JSON output for agents
  jotdeck deck create --name="Ideas" --json

  # Quiet mode for bash capture
  DECK_ID=$(jotdeck deck create --name="Ideas" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Deck name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("sort", "", "Card sort order (created_desc, created_asc, score_desc, score_asc)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deckName, _ := cmd.Flags().GetString("name")
	sortOrder, _ := cmd.Flags().GetString("sort")
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

	// Create deck
	deck, err := cliInstance.App.DeckService.CreateDeck(ctx, deckservice.CreateDeckRequest{
		Name:      deckName,
		SortOrder: models.SortOrder(sortOrder),
	})
	if err != nil {
		if fmtErr := formatter.Error("DECK_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Output based on mode
	if quietMode {
		fmt.Printf("%s\n", deck.ID)
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

	// Human-readable output
	fmt.Printf("✓ Deck '%s' created successfully (ID: %s)\n", deck.Name, deck.ID)
	return nil
}
