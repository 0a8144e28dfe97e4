package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var waterStatsCmd = LeafCommand{
	Use:   "stats",
	Short: "Show weekly hydration statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runWaterStats(cmd, store, time.Now)
	},
}.Build()

func runWaterStats(cmd *cobra.Command, store water.Storage, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	week := water.LastWeek(tr.History())
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Today:"), Text(fmt.Sprintf("%s of %s (%.0f%%)",
		water.FormatML(tr.Intake()), water.FormatML(tr.Goal()), tr.Progress())))

	if len(week) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no archived days yet"))
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Weekly average:"), Primary(water.FormatML(tr.WeeklyAverage())))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Goals reached:"), Primary(fmt.Sprintf("%d/%d", tr.WeeklyGoalsReached(), len(week))))
	return nil
}
