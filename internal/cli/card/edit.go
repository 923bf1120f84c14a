package card

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// EditCmd returns the card edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replace a card's content",
		Long: `Replace a card's content. The hashtag index is updated to match
the new content: tags no longer mentioned are unlinked, new ones linked.

Examples:
  # Replace content
  jotdeck card edit --id=01JF... --content="Revised note #v2"
`,
		RunE: runEdit,
	}

	// Required flags
	cmd.Flags().String("id", "", "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("content", "", "New content (required, may be empty string)")
	if err := cmd.MarkFlagRequired("content"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetString("id")
	content, _ := cmd.Flags().GetString("content")
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

	card, err := cliInstance.App.CardService.UpdateCardContent(ctx, cardID, content)
	if err != nil {
		if fmtErr := formatter.Error("CARD_UPDATE_ERROR", err.Error()); fmtErr != nil {
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
				"id":      card.ID,
				"content": card.Content,
			},
		})
	}

	fmt.Printf("✓ Card %s updated successfully\n", card.ID)
	return nil
}
