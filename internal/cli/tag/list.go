package tag

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	"github.com/jotdeck/jotdeck/internal/cli/styles"
)

// ListCmd returns the tag list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags used in a deck",
		Long: `List all tags used by active cards in a deck, alphabetically.

Tags whose only cards are in the trash do not appear.

Examples:
  # Human-readable list
  jotdeck tag list --deck=01JF...

  # Quiet mode (one name per line)
  jotdeck tag list --deck=01JF... --quiet
`,
		RunE: runList,
	}

	// Required flags
	cmd.Flags().String("deck", "", "Deck ID (required)")
	if err := cmd.MarkFlagRequired("deck"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deckID, _ := cmd.Flags().GetString("deck")
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

	tags, err := cliInstance.App.TagService.ListTagsByDeck(ctx, deckID)
	if err != nil {
		if fmtErr := formatter.Error("TAG_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode
	if quietMode {
		for _, t := range tags {
			fmt.Printf("%s\n", t.Name)
		}
		return nil
	}

	if jsonOutput {
		tagList := make([]map[string]interface{}, len(tags))
		for i, t := range tags {
			tagList[i] = map[string]interface{}{
				"id":   t.ID,
				"name": t.Name,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tags":    tagList,
		})
	}

	// Human-readable output
	if len(tags) == 0 {
		fmt.Println("No tags found")
		return nil
	}

	for _, t := range tags {
		fmt.Println(styles.TagStyle.Render("#" + t.Name))
	}
	return nil
}
