package card

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards in a column",
		Long: `List all active cards in a column, in position order.

Examples:
  # Human-readable list
  jotdeck card list --column=01JF...

  # JSON output for agents
  jotdeck card list --column=01JF... --json

  # Quiet mode (one ID per line)
  jotdeck card list --column=01JF... --quiet
`,
		RunE: runList,
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

// firstLine trims a card's content to a single display line
func firstLine(content string) string {
	line := content
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	if len(line) > 72 {
		line = line[:69] + "..."
	}
	return line
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	columnID, _ := cmd.Flags().GetString("column")
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

	// Validate column exists
	column, err := cliInstance.App.ColumnService.GetColumnByID(ctx, columnID)
	if err != nil {
		if fmtErr := formatter.Error("COLUMN_NOT_FOUND", fmt.Sprintf("column %s not found", columnID)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	cards, err := cliInstance.App.CardService.ListCardsByColumn(ctx, columnID)
	if err != nil {
		if fmtErr := formatter.Error("CARD_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode
	if quietMode {
		for _, c := range cards {
			fmt.Printf("%s\n", c.ID)
		}
		return nil
	}

	if jsonOutput {
		cardList := make([]map[string]interface{}, len(cards))
		for i, c := range cards {
			cardList[i] = map[string]interface{}{
				"id":        c.ID,
				"column_id": c.ColumnID,
				"content":   c.Content,
				"score":     c.Score,
				"position":  c.Position,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"cards":   cardList,
		})
	}

	// Human-readable output
	if len(cards) == 0 {
		fmt.Printf("No cards in column '%s'\n", column.Name)
		return nil
	}

	fmt.Printf("Cards in column '%s':\n", column.Name)
	for _, c := range cards {
		fmt.Printf("  %d. %s (ID: %s, score %d)\n", c.Position, firstLine(c.Content), c.ID, c.Score)
	}
	return nil
}
