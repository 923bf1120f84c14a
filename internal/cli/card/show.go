package card

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/cli"
	"github.com/jotdeck/jotdeck/internal/cli/styles"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show card details",
		Long:  "Display a card's content (rendered as markdown), score, position, and tags.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Card ID (can also be provided as positional argument)")
	cmd.Flags().Bool("raw", false, "Print raw content without markdown rendering")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

// renderContent renders card content as markdown for the terminal,
// falling back to the raw text if rendering fails.
func renderContent(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(styles.CardWidth),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var cardID string
	if len(args) > 0 {
		cardID = args[0]
	} else {
		cardID, _ = cmd.Flags().GetString("id")
	}

	raw, _ := cmd.Flags().GetBool("raw")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if cardID == "" {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_CARD_ID",
			"card ID is required",
			"Usage: jotdeck card show <id> or jotdeck card show --id=<id>"); fmtErr != nil {
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

	card, err := cliInstance.App.CardService.GetCardByID(ctx, cardID)
	if err != nil {
		if fmtErr := formatter.Error("CARD_NOT_FOUND", fmt.Sprintf("card %s not found", cardID)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
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
				"id":         card.ID,
				"column_id":  card.ColumnID,
				"content":    card.Content,
				"score":      card.Score,
				"position":   card.Position,
				"created_at": card.CreatedAt,
				"updated_at": card.UpdatedAt,
				"deleted_at": card.DeletedAt,
			},
		})
	}

	// Human-readable output
	body := card.Content
	if !raw {
		body = renderContent(card.Content)
	}

	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(styles.LabelStyle.Render("Score: "))
	sb.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%d", card.Score)))
	sb.WriteString("  ")
	sb.WriteString(styles.LabelStyle.Render("Position: "))
	sb.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%d", card.Position)))
	if card.Deleted() {
		sb.WriteString("  ")
		sb.WriteString(styles.WarningStyle.Render("(in trash)"))
	}

	fmt.Println(styles.CardStyle.Render(sb.String()))
	return nil
}
