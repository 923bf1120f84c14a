package tag

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// SuggestCmd returns the tag suggest subcommand
func SuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest tags by prefix",
		Long: `Suggest tags used in a deck that start with a prefix, for
completion while typing. An empty prefix suggests from all tags.

Examples:
  # Complete "pro" -> #project, #prototype, ...
  jotdeck tag suggest --deck=01JF... --prefix=pro
`,
		RunE: runSuggest,
	}

	// Required flags
	cmd.Flags().String("deck", "", "Deck ID (required)")
	if err := cmd.MarkFlagRequired("deck"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("prefix", "", "Tag name prefix")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deckID, _ := cmd.Flags().GetString("deck")
	prefix, _ := cmd.Flags().GetString("prefix")
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

	tags, err := cliInstance.App.TagService.SuggestTags(ctx, deckID, prefix)
	if err != nil {
		if fmtErr := formatter.Error("TAG_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode
	if quietMode || !jsonOutput {
		for _, t := range tags {
			fmt.Printf("%s\n", t.Name)
		}
		return nil
	}

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
