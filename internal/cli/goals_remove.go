package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/goals"
	"github.com/spf13/cobra"
)

var goalsRemoveCmd = LeafCommand{
	Use:     "remove <id>",
	Short:   "Delete a goal",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		var confirm ConfirmFunc
		if yes {
			confirm = AlwaysYes()
		} else {
			confirm = NewPromptKit().Confirm
		}
		return runGoalsRemove(cmd, store, args[0], confirm, time.Now)
	},
}.Build()

func runGoalsRemove(cmd *cobra.Command, store goals.Storage, ref string, confirm ConfirmFunc, nowFn func() time.Time) error {
	tr := goals.NewTracker(store, nowFn)
	g, err := tr.Find(ref)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "  goal:     %s\n", Primary(g.Title))
	_, _ = fmt.Fprintf(w, "  progress: %s\n", Text(fmt.Sprintf("%s/%s %s", formatAmount(g.Current), formatAmount(g.Target), g.Unit)))

	ok, err := confirm("Remove this goal?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if _, err := tr.Remove(g.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "removed goal %s\n", Silent(g.ID))
	return nil
}
