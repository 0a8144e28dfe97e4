package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/schedule"
	"github.com/projetonickjumper-byte/fitapp/internal/storage"
	"github.com/spf13/cobra"
)

// planStore is the part of the store the reminder commands need.
type planStore interface {
	GetJSON(key string, v any) (bool, error)
	SetJSON(key string, v any) error
	RemoveItem(key string) error
}

var waterRemindCmd = GroupCommand{
	Use:   "remind",
	Short: "Plan hydration reminders",
	Subcommands: []*cobra.Command{
		waterRemindSetCmd,
		waterRemindShowCmd,
		waterRemindClearCmd,
	},
}.Build()

var waterRemindSetCmd = LeafCommand{
	Use:   "set",
	Short: "Set the reminder plan (e.g. --every weekdays --at 9am,12:30,15:00)",
	StrFlags: []StringFlag{
		{Name: "every", Usage: "recurrence: daily, weekdays, weekends, every monday, every 2 weeks or an RRULE", Default: "daily"},
		{Name: "at", Usage: "comma-separated times of day"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		every, _ := cmd.Flags().GetString("every")
		at, _ := cmd.Flags().GetString("at")
		return runWaterRemindSet(cmd, store, every, at, time.Now)
	},
}.Build()

var waterRemindShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show the reminders planned for a day",
	StrFlags: []StringFlag{
		{Name: "date", Usage: "day to show (today, tomorrow, monday, 2025-01-15, ...)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		return runWaterRemindShow(cmd, store, date, time.Now)
	},
}.Build()

var waterRemindClearCmd = LeafCommand{
	Use:   "clear",
	Short: "Remove the reminder plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runWaterRemindClear(cmd, store)
	},
}.Build()

func runWaterRemindSet(cmd *cobra.Command, store planStore, every, at string, nowFn func() time.Time) error {
	if at == "" {
		return fmt.Errorf("--at is required")
	}
	plan, err := schedule.NewPlan(every, at, nowFn())
	if err != nil {
		return err
	}
	if err := store.SetJSON(schedule.KeyReminders, plan); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s %s %s\n",
		Text("reminders set"),
		Primary(schedule.DescribeRecurrence(plan.Recurrence)),
		Silent("at"),
		Primary(joinTimes(plan.Times)),
	)
	printNextReminder(w, plan, nowFn())
	return nil
}

func runWaterRemindShow(cmd *cobra.Command, store planStore, dateArg string, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	plan, ok, err := loadPlan(store)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("no reminders set"))
		return nil
	}

	now := nowFn()
	day, err := schedule.ParseDate(dateArg, now)
	if err != nil {
		return err
	}
	at, err := schedule.Expand(plan, day, day.AddDate(0, 0, 1).Add(-time.Nanosecond))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Plan:"), Text(schedule.DescribeRecurrence(plan.Recurrence)+" at "+joinTimes(plan.Times)))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Day:"), Primary(day.Format("Monday, 2006-01-02")))
	if len(at) == 0 {
		_, _ = fmt.Fprintln(w, Silent("  no reminders on this day"))
	}
	for _, t := range at {
		mark := " "
		if !t.After(now) {
			mark = Silent("✓")
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", mark, Text(t.Format("15:04")))
	}
	printNextReminder(w, plan, now)
	return nil
}

func runWaterRemindClear(cmd *cobra.Command, store planStore) error {
	if err := store.RemoveItem(schedule.KeyReminders); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text("reminders cleared"))
	return nil
}

// loadPlan reads the stored plan. A corrupt plan is reported as absent.
func loadPlan(store planStore) (schedule.Plan, bool, error) {
	var plan schedule.Plan
	ok, err := store.GetJSON(schedule.KeyReminders, &plan)
	if errors.Is(err, storage.ErrCorrupt) {
		return schedule.Plan{}, false, nil
	}
	if err != nil || !ok {
		return schedule.Plan{}, false, err
	}
	if _, err := schedule.ParseRecurrence(plan.Recurrence); err != nil || len(plan.Times) == 0 {
		return schedule.Plan{}, false, nil
	}
	return plan, true, nil
}

func printNextReminder(w io.Writer, plan schedule.Plan, now time.Time) {
	next, ok, err := schedule.Next(plan, now)
	if err != nil || !ok {
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Next:"), Info(next.Format("Mon 2006-01-02 15:04")))
}

func joinTimes(times []string) string {
	return strings.Join(times, ", ")
}
