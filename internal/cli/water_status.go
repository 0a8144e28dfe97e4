package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var waterStatusCmd = LeafCommand{
	Use:   "status",
	Short: "Show today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, settings, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runWaterStatus(cmd, store, settings.Profile, time.Now)
	},
}.Build()

func runWaterStatus(cmd *cobra.Command, store water.Storage, profile string, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("Profile:"), Primary(profile))
	_, _ = fmt.Fprintf(w, "%s       %s\n", Silent("Date:"), Text(tr.Date()))
	_, _ = fmt.Fprintf(w, "%s     ", Silent("Intake:"))
	printWaterLine(w, tr)
	_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("Glasses:"), Text(fmt.Sprintf("%d x %d ml", tr.Glasses(), water.GlassML)))

	if tr.GoalReached() {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Remaining:"), Info("goal reached!"))
	} else {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Remaining:"), Text(water.FormatML(tr.Remaining())))
	}
	return nil
}
