package column

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	columnservice "github.com/jotdeck/jotdeck/internal/services/column"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a new column in a deck.

If --name is omitted, a name is generated automatically (a-col, b-col, ...).
If --at is omitted, the column is appended at the end of the deck.

Examples:
  # Create column at end (human-readable output)
  jotdeck column create --deck=01JF... --name="Review"

  # Auto-generated name
  jotdeck column create --deck=01JF...

  # Insert at a specific position (existing columns shift right)
  jotdeck column create --deck=01JF... --name="Inbox" --at=0

  # Quiet mode for bash capture
  COLUMN_ID=$(jotdeck column create --deck=01JF... --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("deck", "", "Deck ID (required)")
	if err := cmd.MarkFlagRequired("deck"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("name", "", "Column name (auto-generated if omitted)")
	cmd.Flags().Int("at", 0, "Insert at position (appends if omitted)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deckID, _ := cmd.Flags().GetString("deck")
	columnName, _ := cmd.Flags().GetString("name")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := columnservice.CreateColumnRequest{
		DeckID: deckID,
		Name:   columnName,
	}
	if cmd.Flags().Changed("at") {
		at, _ := cmd.Flags().GetInt("at")
		req.Index = &at
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

	column, err := cliInstance.App.ColumnService.CreateColumn(ctx, req)
	if err != nil {
		if fmtErr := formatter.Error("COLUMN_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Output based on mode
	if quietMode {
		fmt.Printf("%s\n", column.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"column": map[string]interface{}{
				"id":       column.ID,
				"name":     column.Name,
				"deck_id":  column.DeckID,
				"position": column.Position,
			},
		})
	}

	// Human-readable output
	fmt.Printf("✓ Column '%s' created successfully (ID: %s)\n", column.Name, column.ID)
	fmt.Printf("  Position: %d\n", column.Position)
	return nil
}
