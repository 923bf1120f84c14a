package card

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// RestoreCmd returns the card restore subcommand
func RestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a card from the trash",
		Long: `Restore a trashed card to the position it held when it was deleted.

Cards that were trashed as part of a column deletion cannot be restored
individually: restore the column instead.

Examples:
  # Restore a card
  jotdeck card restore --id=01JF...
`,
		RunE: runRestore,
	}

	// Required flags
	cmd.Flags().String("id", "", "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetString("id")
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

	card, err := cliInstance.App.CardService.RestoreCard(ctx, cardID)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("RESTORE_ERROR", err.Error(),
			"If the card was deleted with its column, restore the column instead"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Output based on mode
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"card": map[string]interface{}{
				"id":        card.ID,
				"column_id": card.ColumnID,
				"position":  card.Position,
			},
		})
	}

	fmt.Printf("✓ Card %s restored to position %d\n", card.ID, card.Position)
	return nil
}
