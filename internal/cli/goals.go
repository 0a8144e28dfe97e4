package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var goalsCmd = GroupCommand{
	Use:   "goals",
	Short: "Manage personal fitness goals",
	Subcommands: []*cobra.Command{
		goalsAddCmd,
		goalsListCmd,
		goalsProgressCmd,
		goalsToggleCmd,
		goalsRemoveCmd,
	},
}.Build()

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
