package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var waterResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Zero today's intake (not archived)",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		pk := NewPromptKit()
		if yes {
			pk.Confirm = AlwaysYes()
		}
		return runWaterReset(cmd, store, pk, time.Now)
	},
}.Build()

func runWaterReset(cmd *cobra.Command, store water.Storage, pk PromptKit, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	if tr.Intake() > 0 {
		ok, err := pk.Confirm(fmt.Sprintf("Zero today's %s?", water.FormatML(tr.Intake())))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, Silent("cancelled"))
			return nil
		}
	}

	if err := tr.ResetWater(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text("intake reset"))
	printWaterLine(w, tr)
	return nil
}
