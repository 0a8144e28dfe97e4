package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var waterHistoryCmd = LeafCommand{
	Use:   "history",
	Short: "List archived days, newest first",
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "maximum number of days to show", Default: water.HistoryLimit},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		return runWaterHistory(cmd, store, limit, time.Now)
	},
}.Build()

func runWaterHistory(cmd *cobra.Command, store water.Storage, limit int, nowFn func() time.Time) error {
	if limit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	history := tr.History()
	if len(history) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no archived days yet"))
		return nil
	}

	shown := 0
	for i := len(history) - 1; i >= 0 && shown < limit; i-- {
		r := history[i]
		mark := Silent("·")
		if r.Reached() {
			mark = Info("✓")
		}
		_, _ = fmt.Fprintf(w, "%s %s  %-8s %s %s\n",
			mark,
			Primary(r.Date),
			water.FormatML(r.Intake),
			Silent("of"),
			Text(water.FormatML(r.Goal)),
		)
		shown++
	}
	return nil
}
