package tag

import (
	"github.com/spf13/cobra"
)

// TagCmd returns the tag parent command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Browse the hashtag index",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CardsCmd())
	cmd.AddCommand(SuggestCmd())

	return cmd
}
