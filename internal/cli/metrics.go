package cli

import (
	"fmt"

	"github.com/projetonickjumper-byte/fitapp/internal/bodymetrics"
	"github.com/spf13/cobra"
)

var metricsCmd = GroupCommand{
	Use:   "metrics",
	Short: "Body metric calculators",
	Subcommands: []*cobra.Command{
		metricsIMCCmd,
		metricsTMBCmd,
	},
}.Build()

var bodyFlags = []FloatFlag{
	{Name: "weight", Usage: "weight in kg"},
	{Name: "height", Usage: "height in cm"},
}

var metricsIMCCmd = LeafCommand{
	Use:        "imc",
	Short:      "Body mass index",
	Aliases:    []string{"bmi"},
	FloatFlags: bodyFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, _ := cmd.Flags().GetFloat64("weight")
		height, _ := cmd.Flags().GetFloat64("height")
		return runMetricsIMC(cmd, weight, height)
	},
}.Build()

var metricsTMBCmd = LeafCommand{
	Use:        "tmb",
	Short:      "Basal metabolic rate and daily calories",
	Aliases:    []string{"bmr"},
	FloatFlags: bodyFlags,
	IntFlags: []IntFlag{
		{Name: "age", Usage: "age in years"},
	},
	StrFlags: []StringFlag{
		{Name: "sex", Usage: "male or female"},
		{Name: "activity", Usage: "sedentary, light, moderate, active or very-active"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, _ := cmd.Flags().GetFloat64("weight")
		height, _ := cmd.Flags().GetFloat64("height")
		age, _ := cmd.Flags().GetInt("age")
		sex, _ := cmd.Flags().GetString("sex")
		activity, _ := cmd.Flags().GetString("activity")
		return runMetricsTMB(cmd, weight, height, age, sex, activity)
	},
}.Build()

func runMetricsIMC(cmd *cobra.Command, weight, height float64) error {
	imc, err := bodymetrics.IMC(weight, height)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Silent("IMC:"),
		Primary(fmt.Sprintf("%.1f", imc)),
		Text("("+bodymetrics.IMCCategory(imc)+")"),
	)
	return nil
}

func runMetricsTMB(cmd *cobra.Command, weight, height float64, age int, sexArg, activity string) error {
	sex, err := bodymetrics.ParseSex(sexArg)
	if err != nil {
		return err
	}
	tmb, err := bodymetrics.TMB(weight, height, age, sex)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("TMB:"), Primary(fmt.Sprintf("%.0f kcal/day", tmb)))
	if activity == "" {
		return nil
	}
	kcal, err := bodymetrics.DailyCalories(tmb, activity)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s %s %s\n", Silent("Daily calories:"), Primary(fmt.Sprintf("%.0f kcal", kcal)), Silent("("+activity+")"))
	return nil
}
