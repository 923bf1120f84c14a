package card

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	cardservice "github.com/jotdeck/jotdeck/internal/services/card"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new card",
		Long: `Create a new card in a column. Hashtags in the content (like #idea)
are indexed automatically.

Examples:
  # Create card at end of column
  jotdeck card create --column=01JF... --content="Read the #raft paper"

  # Insert at the top of the column
  jotdeck card create --column=01JF... --content="Urgent" --at=0

  # Quiet mode for bash capture
  CARD_ID=$(jotdeck card create --column=01JF... --content="..." --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("content", "", "Card content (may be empty)")
	cmd.Flags().Int("at", 0, "Insert at position (appends if omitted)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	columnID, _ := cmd.Flags().GetString("column")
	content, _ := cmd.Flags().GetString("content")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := cardservice.CreateCardRequest{
		ColumnID: columnID,
		Content:  content,
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

	card, err := cliInstance.App.CardService.CreateCard(ctx, req)
	if err != nil {
		if fmtErr := formatter.Error("CARD_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Output based on mode
	if quietMode {
		fmt.Printf("%s\n", card.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"card": map[string]interface{}{
				"id":        card.ID,
				"column_id": card.ColumnID,
				"position":  card.Position,
				"score":     card.Score,
			},
		})
	}

	// Human-readable output
	fmt.Printf("✓ Card created successfully (ID: %s, position %d)\n", card.ID, card.Position)
	return nil
}
