package tag

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// CardsCmd returns the tag cards subcommand
func CardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List cards carrying a tag",
		Long: `List the IDs of active cards in a deck that carry a tag.

Examples:
  # Cards tagged #idea
  jotdeck tag cards --deck=01JF... --name=idea
`,
		RunE: runCards,
	}

	// Required flags
	cmd.Flags().String("deck", "", "Deck ID (required)")
	if err := cmd.MarkFlagRequired("deck"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("name", "", "Tag name without the # (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runCards(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deckID, _ := cmd.Flags().GetString("deck")
	tagName, _ := cmd.Flags().GetString("name")
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

	cardIDs, err := cliInstance.App.TagService.ListCardIDsByTag(ctx, deckID, tagName)
	if err != nil {
		if fmtErr := formatter.Error("TAG_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode
	if quietMode {
		for _, id := range cardIDs {
			fmt.Printf("%s\n", id)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"tag":      tagName,
			"card_ids": cardIDs,
		})
	}

	// Human-readable output
	if len(cardIDs) == 0 {
		fmt.Printf("No cards tagged #%s\n", tagName)
		return nil
	}

	fmt.Printf("Cards tagged #%s:\n", tagName)
	for _, id := range cardIDs {
		fmt.Printf("  %s\n", id)
	}
	return nil
}
