package card

import (
	"github.com/spf13/cobra"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(ScoreCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(RestoreCmd())
	cmd.AddCommand(TrashCmd())

	return cmd
}
