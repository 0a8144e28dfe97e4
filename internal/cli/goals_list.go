package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/goals"
	"github.com/spf13/cobra"
)

var goalsListCmd = LeafCommand{
	Use:     "list",
	Short:   "List goals",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runGoalsList(cmd, store, time.Now)
	},
}.Build()

func runGoalsList(cmd *cobra.Command, store goals.Storage, nowFn func() time.Time) error {
	list, err := goals.NewTracker(store, nowFn).List()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(list) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no goals yet"))
		return nil
	}

	now := nowFn()
	for _, g := range list {
		mark := Silent("○")
		if g.Completed {
			mark = Info("●")
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n", mark, Silent(g.ID), Primary(g.Title))
		_, _ = fmt.Fprintf(w, "    %s %s\n",
			progressBar(g.Percent()),
			Text(fmt.Sprintf("%s/%s %s (%.0f%%)", formatAmount(g.Current), formatAmount(g.Target), g.Unit, g.Percent())),
		)
		if g.Category != "" {
			_, _ = fmt.Fprintf(w, "    %s %s\n", Silent("category:"), Text(g.Category))
		}
		if g.Deadline != nil {
			deadline := g.Deadline.Format("2006-01-02")
			if g.Overdue(now) {
				_, _ = fmt.Fprintf(w, "    %s %s\n", Silent("deadline:"), Warning(deadline+" (overdue)"))
			} else {
				_, _ = fmt.Fprintf(w, "    %s %s\n", Silent("deadline:"), Text(deadline))
			}
		}
	}
	return nil
}
