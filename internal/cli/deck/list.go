package deck

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// ListCmd returns the deck list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all decks",
		Long: `List all decks, newest first.

Examples:
  # Human-readable list
  jotdeck deck list

  # JSON output for agents
  jotdeck deck list --json

  # Quiet mode (one ID per line)
  jotdeck deck list --quiet
`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	decks, err := cliInstance.App.DeckService.ListDecks(ctx)
	if err != nil {
		if fmtErr := formatter.Error("DECK_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode
	if quietMode {
		for _, d := range decks {
			fmt.Printf("%s\n", d.ID)
		}
		return nil
	}

	if jsonOutput {
		deckList := make([]map[string]interface{}, len(decks))
		for i, d := range decks {
			deckList[i] = map[string]interface{}{
				"id":         d.ID,
				"name":       d.Name,
				"sort_order": string(d.SortOrder),
				"created_at": d.CreatedAt,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"decks":   deckList,
		})
	}

	// Human-readable output
	if len(decks) == 0 {
		fmt.Println("No decks found")
		return nil
	}

	fmt.Println("Decks:")
	for i, d := range decks {
		fmt.Printf("  %d. %s (ID: %s)\n", i+1, d.Name, d.ID)
	}
	return nil
}
