package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/goals"
	"github.com/spf13/cobra"
)

var goalsProgressCmd = LeafCommand{
	Use:   "progress <id> <delta>",
	Short: "Add progress to a goal (negative values subtract)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runGoalsProgress(cmd, store, args[0], args[1], time.Now)
	},
}.Build()

func runGoalsProgress(cmd *cobra.Command, store goals.Storage, ref, deltaArg string, nowFn func() time.Time) error {
	delta, err := strconv.ParseFloat(deltaArg, 64)
	if err != nil {
		return fmt.Errorf("invalid progress value %q", deltaArg)
	}

	tr := goals.NewTracker(store, nowFn)
	before, err := tr.Find(ref)
	if err != nil {
		return err
	}
	g, err := tr.Progress(ref, delta)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s %s\n",
		Primary(g.Title),
		progressBar(g.Percent()),
		Text(fmt.Sprintf("%s/%s %s", formatAmount(g.Current), formatAmount(g.Target), g.Unit)),
	)
	if g.Completed && !before.Completed {
		_, _ = fmt.Fprintln(w, Info("goal completed!"))
	}
	return nil
}
