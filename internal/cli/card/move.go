package card

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card",
		Long: `Move a card within its column (--to) or to the end of another
column (--column). Exactly one of the two must be provided.

Examples:
  # Reorder within the column
  jotdeck card move --id=01JF... --to=0

  # Move to the end of another column
  jotdeck card move --id=01JF... --column=01JG...
`,
		RunE: runMove,
	}

	// Required flags
	cmd.Flags().String("id", "", "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags (exactly one required)
	cmd.Flags().Int("to", 0, "Target position within the current column")
	cmd.Flags().String("column", "", "Target column ID (appends at end)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetString("id")
	targetColumn, _ := cmd.Flags().GetString("column")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	toChanged := cmd.Flags().Changed("to")
	columnChanged := targetColumn != ""
	if toChanged == columnChanged {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_MOVE",
			"provide exactly one of --to or --column",
			"Use --to=<position> to reorder, or --column=<id> to move across columns"); fmtErr != nil {
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

	if columnChanged {
		moved, err := cliInstance.App.CardService.MoveCardToColumn(ctx, cardID, targetColumn)
		if err != nil {
			if fmtErr := formatter.Error("MOVE_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		return outputMove(jsonOutput, quietMode, moved.ID, moved.ColumnID, moved.Position)
	}

	target, _ := cmd.Flags().GetInt("to")
	moved, err := cliInstance.App.CardService.MoveCard(ctx, cardID, target)
	if err != nil {
		if fmtErr := formatter.Error("MOVE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}
	return outputMove(jsonOutput, quietMode, moved.ID, moved.ColumnID, moved.Position)
}

func outputMove(jsonOutput, quietMode bool, cardID, columnID string, position int) error {
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"card": map[string]interface{}{
				"id":        cardID,
				"column_id": columnID,
				"position":  position,
			},
		})
	}

	fmt.Printf("✓ Card %s moved to position %d\n", cardID, position)
	return nil
}
