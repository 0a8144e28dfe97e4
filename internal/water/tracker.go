package water

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Storage is the subset of a localStorage-like store the tracker needs.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// Tracker holds the reconciled water intake state for the current day.
// Every mutation is written back to storage before it returns.
type Tracker struct {
	store   Storage
	now     func() time.Time
	intake  int
	goal    int
	date    string
	history []Record

	archived *Record
}

// Open loads persisted state and reconciles it against the current day.
// Corrupted values are treated as absent; storage failures are returned.
func Open(store Storage, now func() time.Time) (*Tracker, error) {
	if now == nil {
		now = time.Now
	}

	goal, err := loadGoal(store)
	if err != nil {
		return nil, err
	}
	prev, err := loadState(store)
	if err != nil {
		return nil, err
	}
	history, err := loadHistory(store)
	if err != nil {
		return nil, err
	}

	today := now().Format(dateLayout)
	state, newHistory, archived := Reconcile(prev, goal, history, today)

	t := &Tracker{
		store:    store,
		now:      now,
		intake:   state.Intake,
		goal:     goal,
		date:     state.Date,
		history:  newHistory,
		archived: archived,
	}

	if len(newHistory) != len(history) || archived != nil {
		if err := t.saveHistory(); err != nil {
			return nil, err
		}
	}
	if prev == nil || prev.Date != today {
		if err := t.saveState(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Reconcile applies the day rollover rule. A nil prev means nothing was persisted.
// When prev belongs to another day with a positive intake it is archived with goal.
// History is always trimmed to the most recent HistoryLimit records.
// The returned record is the one archived, if any.
func Reconcile(prev *State, goal int, history []Record, today string) (State, []Record, *Record) {
	state := State{Intake: 0, Date: today}
	out := history
	var archived *Record

	switch {
	case prev == nil:
	case prev.Date == today:
		state = *prev
	case prev.Intake > 0:
		rec := Record{Date: prev.Date, Intake: prev.Intake, Goal: goal}
		out = append(append([]Record(nil), history...), rec)
		archived = &rec
	}
	if len(out) > HistoryLimit {
		out = append([]Record(nil), out[len(out)-HistoryLimit:]...)
	}
	return state, out, archived
}

// AddWater increases the intake by amount ml, capped at MaxIntakeML.
func (t *Tracker) AddWater(amount int) error {
	if amount >= MaxIntakeML-t.intake {
		t.intake = MaxIntakeML
	} else {
		t.intake = clampIntake(t.intake + amount)
	}
	return t.saveState()
}

// RemoveWater takes one glass off the intake, never going below zero.
func (t *Tracker) RemoveWater() error {
	t.intake = clampIntake(t.intake - GlassML)
	return t.saveState()
}

// ResetWater zeroes the intake. The manual reset is never archived.
func (t *Tracker) ResetWater() error {
	t.intake = 0
	return t.saveState()
}

// UpdateGoal replaces the daily goal. Archived records keep their own goal.
func (t *Tracker) UpdateGoal(goal int) error {
	if !IsGoalOption(goal) {
		return fmt.Errorf("%w: %d ml (choose one of %s)", ErrInvalidGoal, goal, goalOptionsString())
	}
	t.goal = goal
	if err := t.store.SetItem(KeyGoal, strconv.Itoa(goal)); err != nil {
		return err
	}
	return t.saveState()
}

// Intake returns today's intake in ml.
func (t *Tracker) Intake() int { return t.intake }

// Goal returns the daily goal in ml.
func (t *Tracker) Goal() int { return t.goal }

// Date returns the day the working state represents (YYYY-MM-DD).
func (t *Tracker) Date() string { return t.date }

// History returns a copy of the archived records, oldest first.
func (t *Tracker) History() []Record {
	return append([]Record(nil), t.history...)
}

// Archived returns the record created by the rollover performed in Open, if any.
func (t *Tracker) Archived() *Record { return t.archived }

func (t *Tracker) saveState() error {
	data, err := json.Marshal(State{Intake: t.intake, Date: t.date})
	if err != nil {
		return err
	}
	return t.store.SetItem(KeyTracker, string(data))
}

func (t *Tracker) saveHistory() error {
	history := t.history
	if history == nil {
		history = []Record{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return t.store.SetItem(KeyHistory, string(data))
}

func loadState(store Storage) (*State, error) {
	raw, ok, err := store.GetItem(KeyTracker)
	if err != nil || !ok {
		return nil, err
	}
	var s State
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s.Date == "" {
		return nil, nil
	}
	s.Intake = clampIntake(s.Intake)
	return &s, nil
}

func loadHistory(store Storage) ([]Record, error) {
	raw, ok, err := store.GetItem(KeyHistory)
	if err != nil || !ok {
		return nil, err
	}
	var history []Record
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, nil
	}
	return history, nil
}

func loadGoal(store Storage) (int, error) {
	raw, ok, err := store.GetItem(KeyGoal)
	if err != nil {
		return 0, err
	}
	if !ok {
		return DefaultGoalML, nil
	}
	goal, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !IsGoalOption(goal) {
		return DefaultGoalML, nil
	}
	return goal, nil
}

func clampIntake(ml int) int {
	if ml < 0 {
		return 0
	}
	if ml > MaxIntakeML {
		return MaxIntakeML
	}
	return ml
}

func goalOptionsString() string {
	parts := make([]string, len(GoalOptions))
	for i, g := range GoalOptions {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, ", ")
}
