package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var waterCmd = GroupCommand{
	Use:   "water",
	Short: "Track daily water intake",
	Subcommands: []*cobra.Command{
		waterStatusCmd,
		waterAddCmd,
		waterRemoveCmd,
		waterResetCmd,
		waterGoalCmd,
		waterHistoryCmd,
		waterStatsCmd,
		waterExportCmd,
		waterSummaryCmd,
		waterRemindCmd,
	},
}.Build()

// openTracker opens the tracker and reports a rollover that happened on open.
func openTracker(w io.Writer, store water.Storage, nowFn func() time.Time) (*water.Tracker, error) {
	tr, err := water.Open(store, nowFn)
	if err != nil {
		return nil, err
	}
	if rec := tr.Archived(); rec != nil {
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			Silent("archived"),
			Info(rec.Date),
			Text(fmt.Sprintf("%s of %s", water.FormatML(rec.Intake), water.FormatML(rec.Goal))),
		)
	}
	return tr, nil
}

// printWaterLine prints the one-line summary shown after every mutation.
func printWaterLine(w io.Writer, tr *water.Tracker) {
	_, _ = fmt.Fprintf(w, "%s %s  %s\n",
		Primary(fmt.Sprintf("%s / %s", water.FormatML(tr.Intake()), water.FormatML(tr.Goal()))),
		progressBar(tr.Progress()),
		Text(fmt.Sprintf("%.0f%%", tr.Progress())),
	)
}
