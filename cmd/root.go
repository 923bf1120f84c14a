package cmd

import (
	"github.com/spf13/cobra"

	cardcmd "github.com/jotdeck/jotdeck/internal/cli/card"
	cleanupcmd "github.com/jotdeck/jotdeck/internal/cli/cleanup"
	columncmd "github.com/jotdeck/jotdeck/internal/cli/column"
	deckcmd "github.com/jotdeck/jotdeck/internal/cli/deck"
	tagcmd "github.com/jotdeck/jotdeck/internal/cli/tag"
)

var rootCmd = &cobra.Command{
	Use:   "jotdeck",
	Short: "JotDeck - A hashtag-indexed note deck",
	Long:  `JotDeck stores quick notes as cards in columns, organized into decks, with automatic hashtag indexing and a recoverable trash.`,
}

func init() {
	rootCmd.AddCommand(deckcmd.DeckCmd())
	rootCmd.AddCommand(columncmd.ColumnCmd())
	rootCmd.AddCommand(cardcmd.CardCmd())
	rootCmd.AddCommand(tagcmd.TagCmd())
	rootCmd.AddCommand(cleanupcmd.CleanupCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
