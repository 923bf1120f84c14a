package deck

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// DeleteCmd returns the deck delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a deck",
		Long: `Delete a deck by ID (requires confirmation unless --force or --quiet).

Warning: Deleting a deck permanently removes all of its columns and cards,
including soft-deleted ones. This cannot be undone.

Examples:
  # Delete with confirmation
  jotdeck deck delete --id=01JF...

  # Skip confirmation
  jotdeck deck delete --id=01JF... --force
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().String("id", "", "Deck ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deckID, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")
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

	// Get deck details for confirmation
	deck, err := cliInstance.App.DeckService.GetDeckByID(ctx, deckID)
	if err != nil {
		if fmtErr := formatter.Error("DECK_NOT_FOUND", fmt.Sprintf("deck %s not found", deckID)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Println("⚠ Warning: Deleting a deck permanently removes all of its columns and cards")
		fmt.Printf("Delete deck '%s'? (y/N): ", deck.Name)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.DeckService.DeleteDeck(ctx, deckID); err != nil {
		if fmtErr := formatter.Error("DELETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output success
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"deck_id": deckID,
		})
	}

	fmt.Printf("✓ Deck '%s' deleted successfully\n", deck.Name)
	return nil
}
