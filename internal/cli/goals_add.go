package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/goals"
	"github.com/projetonickjumper-byte/fitapp/internal/schedule"
	"github.com/spf13/cobra"
)

var goalsAddCmd = LeafCommand{
	Use:   "add <title>",
	Short: "Create a goal",
	Args:  cobra.MinimumNArgs(1),
	FloatFlags: []FloatFlag{
		{Name: "target", Usage: "target value (required)"},
	},
	StrFlags: []StringFlag{
		{Name: "unit", Usage: "unit of the target (kg, km, treinos, ...)"},
		{Name: "category", Usage: "category (weight, strength, cardio, ...)"},
		{Name: "deadline", Usage: "deadline (2025-12-31, 31/12/2025, next friday, ...)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		target, _ := cmd.Flags().GetFloat64("target")
		unit, _ := cmd.Flags().GetString("unit")
		category, _ := cmd.Flags().GetString("category")
		deadline, _ := cmd.Flags().GetString("deadline")
		in := goalInput{
			Title:    strings.Join(args, " "),
			Target:   target,
			Unit:     unit,
			Category: category,
			Deadline: deadline,
		}
		return runGoalsAdd(cmd, store, in, time.Now)
	},
}.Build()

type goalInput struct {
	Title    string
	Target   float64
	Unit     string
	Category string
	Deadline string
}

func runGoalsAdd(cmd *cobra.Command, store goals.Storage, in goalInput, nowFn func() time.Time) error {
	ng := goals.NewGoal{
		Title:    in.Title,
		Category: in.Category,
		Target:   in.Target,
		Unit:     in.Unit,
	}
	if in.Deadline != "" {
		d, err := schedule.ParseDate(in.Deadline, nowFn())
		if err != nil {
			return err
		}
		ng.Deadline = &d
	}

	g, err := goals.NewTracker(store, nowFn).Add(ng)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added goal %s %s %s\n",
		Primary(g.Title),
		Silent("("+g.ID+")"),
		Text(fmt.Sprintf("target %s %s", formatAmount(g.Target), g.Unit)),
	)
	return nil
}
