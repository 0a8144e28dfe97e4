package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/goals"
	"github.com/spf13/cobra"
)

var goalsToggleCmd = LeafCommand{
	Use:   "toggle <id>",
	Short: "Mark a goal completed or reopen it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runGoalsToggle(cmd, store, args[0], time.Now)
	},
}.Build()

func runGoalsToggle(cmd *cobra.Command, store goals.Storage, ref string, nowFn func() time.Time) error {
	g, err := goals.NewTracker(store, nowFn).Toggle(ref)
	if err != nil {
		return err
	}

	state := "reopened"
	if g.Completed {
		state = "completed"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text(state), Primary(g.Title))
	return nil
}
