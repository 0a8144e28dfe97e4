package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var waterRemoveCmd = LeafCommand{
	Use:   "remove",
	Short: "Remove one glass (250 ml)",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runWaterRemove(cmd, store, time.Now)
	},
}.Build()

func runWaterRemove(cmd *cobra.Command, store water.Storage, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	before := tr.Intake()
	if err := tr.RemoveWater(); err != nil {
		return err
	}

	if before == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Warning("nothing to remove"))
	} else {
		_, _ = fmt.Fprintf(w, "%s %s\n", Text("removed"), Primary("-"+water.FormatML(before-tr.Intake())))
	}
	printWaterLine(w, tr)
	return nil
}
