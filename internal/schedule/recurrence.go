package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/teambition/rrule-go"
)

var everyNWeeks = regexp.MustCompile(`^every (\d+) weeks?$`)

// ParseRecurrence parses a natural language recurrence ("daily", "weekdays",
// "every monday", "every 2 weeks") or a raw RRULE string.
func ParseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if isRawRRule(s) {
		raw := strings.TrimPrefix(strings.ToUpper(s), "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	switch s {
	case "every day", "daily":
		return rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY})
	case "every weekday", "weekdays":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		})
	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})
	case "every other day":
		return rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY, Interval: 2})
	}

	if m := everyNWeeks.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n < 1 {
			return nil, fmt.Errorf("interval must be at least 1 in %q", s)
		}
		return rrule.NewRRule(rrule.ROption{Freq: rrule.WEEKLY, Interval: n})
	}

	if day, ok := strings.CutPrefix(s, "every "); ok {
		if wd, ok := rruleWeekdays[day]; ok {
			return rrule.NewRRule(rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: []rrule.Weekday{wd},
			})
		}
	}

	return nil, fmt.Errorf("unrecognized recurrence %q", s)
}

// DescribeRecurrence returns a human-readable form of a recurrence string.
// Unknown input is returned unchanged.
func DescribeRecurrence(s string) string {
	r, err := ParseRecurrence(s)
	if err != nil {
		return s
	}
	opts := r.OrigOptions
	interval := opts.Interval
	if interval < 1 {
		interval = 1
	}

	switch opts.Freq {
	case rrule.DAILY:
		if interval > 1 {
			return fmt.Sprintf("every %d days", interval)
		}
		return "every day"
	case rrule.WEEKLY:
		days := weekdayCodes(opts.Byweekday)
		switch {
		case sameSet(days, "MO", "TU", "WE", "TH", "FR"):
			return "every weekday"
		case sameSet(days, "SA", "SU"):
			return "every weekend"
		case len(days) > 0:
			names := make([]string, len(days))
			for i, d := range days {
				names[i] = dayNames[d]
			}
			return "every " + strings.Join(names, ", ")
		case interval > 1:
			return fmt.Sprintf("every %d weeks", interval)
		}
		return "every week"
	}
	return s
}

// isRawRRule works on both lowercased and original-case input.
func isRawRRule(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "freq=") || strings.HasPrefix(lower, "rrule:")
}

var rruleWeekdays = map[string]rrule.Weekday{
	"sunday":    rrule.SU,
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
}

var dayNames = map[string]string{
	"MO": "Monday",
	"TU": "Tuesday",
	"WE": "Wednesday",
	"TH": "Thursday",
	"FR": "Friday",
	"SA": "Saturday",
	"SU": "Sunday",
}

func weekdayCodes(days []rrule.Weekday) []string {
	codes := make([]string, len(days))
	for i, d := range days {
		codes[i] = d.String()
	}
	return codes
}

// sameSet reports whether actual holds exactly the expected strings, in any order.
func sameSet(actual []string, expected ...string) bool {
	if len(actual) != len(expected) {
		return false
	}
	want := make(map[string]bool, len(expected))
	for _, e := range expected {
		want[e] = true
	}
	for _, a := range actual {
		if !want[a] {
			return false
		}
		delete(want, a)
	}
	return len(want) == 0
}
