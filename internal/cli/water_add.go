package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var waterAddCmd = LeafCommand{
	Use:   "add [amount]",
	Short: "Add water (default one 250 ml glass; e.g. 500ml, 0.5l, 2 glasses)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		amount := ""
		if len(args) > 0 {
			amount = args[0]
		}
		return runWaterAdd(cmd, store, amount, time.Now)
	},
}.Build()

func runWaterAdd(cmd *cobra.Command, store water.Storage, amountArg string, nowFn func() time.Time) error {
	amount := water.GlassML
	if amountArg != "" {
		var err error
		amount, err = water.ParseAmount(amountArg)
		if err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	before := tr.Intake()
	wasReached := tr.GoalReached()
	if err := tr.AddWater(amount); err != nil {
		return err
	}

	added := tr.Intake() - before
	_, _ = fmt.Fprintf(w, "%s %s\n", Text("added"), Primary("+"+water.FormatML(added)))
	if added < amount {
		_, _ = fmt.Fprintf(w, "%s\n", Warning(fmt.Sprintf("daily intake is capped at %s", water.FormatML(water.MaxIntakeML))))
	}
	printWaterLine(w, tr)
	if !wasReached && tr.GoalReached() {
		_, _ = fmt.Fprintf(w, "%s\n", Info("daily goal reached!"))
	}
	return nil
}
