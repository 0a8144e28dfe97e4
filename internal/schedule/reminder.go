package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// KeyReminders is the storage key of the hydration reminder plan.
const KeyReminders = "fitapp_water_reminders"

// lookahead bounds the search performed by Next.
const lookahead = 8 * 24 * time.Hour

const startLayout = "2006-01-02"

// Plan is the storable hydration reminder plan.
type Plan struct {
	Recurrence string   `json:"recurrence"`
	Times      []string `json:"times"`           // "HH:MM"
	Start      string   `json:"start,omitempty"` // "YYYY-MM-DD", first day of interval rules
}

// NewPlan validates a recurrence and a comma-separated list of times and
// returns a normalized plan whose intervals count from start's day.
func NewPlan(recurrence, times string, start time.Time) (Plan, error) {
	if _, err := ParseRecurrence(recurrence); err != nil {
		return Plan{}, err
	}
	parsed, err := ParseTimes(times)
	if err != nil {
		return Plan{}, err
	}
	p := Plan{
		Recurrence: recurrence,
		Times:      make([]string, len(parsed)),
		Start:      start.Format(startLayout),
	}
	for i, t := range parsed {
		p.Times[i] = t.String()
	}
	return p, nil
}

// Expand returns every reminder instant between from and to (inclusive),
// sorted ascending. Days come from the plan's recurrence, evaluated in from's
// location and anchored at the plan's start day. Plans saved without a start
// are anchored at from's day.
func Expand(p Plan, from, to time.Time) ([]time.Time, error) {
	r, err := ParseRecurrence(p.Recurrence)
	if err != nil {
		return nil, err
	}
	times, err := planTimes(p)
	if err != nil {
		return nil, err
	}

	opts := r.OrigOptions
	if opts.Dtstart.IsZero() {
		opts.Dtstart, err = planStart(p, from)
		if err != nil {
			return nil, err
		}
	}
	r, err = rrule.NewRRule(opts)
	if err != nil {
		return nil, err
	}

	var out []time.Time
	for _, day := range r.Between(StartOfDay(from), to, true) {
		day = StartOfDay(day.In(from.Location()))
		for _, t := range times {
			at := time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, from.Location())
			if at.Before(from) || at.After(to) {
				continue
			}
			out = append(out, at)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

// Next returns the first reminder strictly after now, or false when none
// falls within the next eight days.
func Next(p Plan, now time.Time) (time.Time, bool, error) {
	all, err := Expand(p, now, now.Add(lookahead))
	if err != nil {
		return time.Time{}, false, err
	}
	for _, at := range all {
		if at.After(now) {
			return at, true, nil
		}
	}
	return time.Time{}, false, nil
}

func planStart(p Plan, from time.Time) (time.Time, error) {
	if p.Start == "" {
		return StartOfDay(from), nil
	}
	start, err := time.ParseInLocation(startLayout, p.Start, from.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder start %q: %w", p.Start, err)
	}
	return start, nil
}

func planTimes(p Plan) ([]TimeOfDay, error) {
	if len(p.Times) == 0 {
		return nil, fmt.Errorf("reminder plan has no times")
	}
	times := make([]TimeOfDay, len(p.Times))
	for i, s := range p.Times {
		t, err := ParseTimeOfDay(s)
		if err != nil {
			return nil, err
		}
		times[i] = t
	}
	return times, nil
}
