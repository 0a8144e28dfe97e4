package water

import "errors"

// Storage keys shared with the web client.
const (
	KeyTracker = "fitapp_water_tracker"
	KeyHistory = "fitapp_water_history"
	KeyGoal    = "fitapp_water_goal"
)

const (
	// GlassML is the size of one glass, used by RemoveWater and the glass counter.
	GlassML = 250
	// MaxIntakeML caps the intake of a single day.
	MaxIntakeML = 10000
	// DefaultGoalML is used when no valid goal has been persisted.
	DefaultGoalML = 2000
	// HistoryLimit is the number of archived days kept.
	HistoryLimit = 30
	// WeekDays is the window used for weekly statistics.
	WeekDays = 7

	dateLayout = "2006-01-02"
)

// GoalOptions lists the daily goals a user may pick, in ml.
var GoalOptions = []int{1500, 2000, 2500, 3000, 3500, 4000}

var (
	ErrInvalidGoal   = errors.New("invalid daily goal")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Record is one archived day. Records are immutable once archived.
type Record struct {
	Date   string `json:"date"`
	Intake int    `json:"intake"`
	Goal   int    `json:"goal"`
}

// Reached reports whether the day met the goal recorded for it.
func (r Record) Reached() bool {
	return r.Goal > 0 && r.Intake >= r.Goal
}

// State is the persisted working state of the current day.
type State struct {
	Intake int    `json:"intake"`
	Date   string `json:"date"`
}

// IsGoalOption reports whether ml is one of GoalOptions.
func IsGoalOption(ml int) bool {
	for _, g := range GoalOptions {
		if g == ml {
			return true
		}
	}
	return false
}
