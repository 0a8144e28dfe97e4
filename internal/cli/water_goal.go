package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var waterGoalCmd = LeafCommand{
	Use:   "goal [ml]",
	Short: "Show or change the daily goal (1500, 2000, 2500, 3000, 3500 or 4000 ml)",
	Args:  cobra.MaximumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "pick", Usage: "choose the goal from a list"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		goalArg := ""
		if len(args) > 0 {
			goalArg = args[0]
		}
		pick, _ := cmd.Flags().GetBool("pick")
		return runWaterGoal(cmd, store, goalArg, pick, NewPromptKit(), time.Now)
	},
}.Build()

func runWaterGoal(cmd *cobra.Command, store water.Storage, goalArg string, pick bool, pk PromptKit, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	var goal int
	switch {
	case goalArg != "":
		goal, err = water.ParseAmount(goalArg)
		if err != nil {
			return err
		}
	case pick:
		labels := make([]string, len(water.GoalOptions))
		for i, g := range water.GoalOptions {
			labels[i] = water.FormatML(g)
		}
		idx, err := pk.Select("Daily goal", labels)
		if err != nil {
			return err
		}
		goal = water.GoalOptions[idx]
	default:
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Daily goal:"), Primary(water.FormatML(tr.Goal())))
		return nil
	}

	if err := tr.UpdateGoal(goal); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Text("daily goal set to"), Primary(water.FormatML(goal)))
	printWaterLine(w, tr)
	return nil
}
