package schedule

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"jan 2",
	"jan 2 2006",
	"january 2",
	"january 2 2006",
	"2 jan",
	"2 jan 2006",
	"2 january",
	"2 january 2006",
}

// ParseDate parses a date expression relative to now and returns midnight of
// that day in now's location.
// Supports: "today", "tomorrow", "yesterday", weekday names (optionally prefixed
// with "next" or "on"), "2025-01-15", "15/01/2025", "jan 2", "2 january 2006".
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "", "today":
		return StartOfDay(now), nil
	case "tomorrow":
		return StartOfDay(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return StartOfDay(now).AddDate(0, 0, -1), nil
	}

	if wd, ok := weekdays[strings.TrimPrefix(s, "next ")]; ok {
		return nextWeekday(now, wd), nil
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// nextWeekday returns the next occurrence of wd after now.
// If now is that weekday, it returns the following week.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	today := StartOfDay(now)
	ahead := int(wd) - int(today.Weekday())
	if ahead <= 0 {
		ahead += 7
	}
	return today.AddDate(0, 0, ahead)
}
