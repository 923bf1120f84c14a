package card

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// ScoreCmd returns the card score subcommand
func ScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Adjust a card's score",
		Long: `Adjust a card's score by a relative delta. Scores are unbounded
and may go negative.

Examples:
  # Upvote
  jotdeck card score --id=01JF... --by=1

  # Downvote by 3
  jotdeck card score --id=01JF... --by=-3
`,
		RunE: runScore,
	}

	// Required flags
	cmd.Flags().String("id", "", "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("by", 0, "Score delta (required, may be negative)")
	if err := cmd.MarkFlagRequired("by"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetString("id")
	delta, _ := cmd.Flags().GetInt("by")
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

	card, err := cliInstance.App.CardService.UpdateCardScore(ctx, cardID, delta)
	if err != nil {
		if fmtErr := formatter.Error("SCORE_ERROR", err.Error()); fmtErr != nil {
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
			"card": map[string]interface{}{
				"id":    card.ID,
				"score": card.Score,
			},
		})
	}

	fmt.Printf("✓ Card %s score is now %d\n", card.ID, card.Score)
	return nil
}
