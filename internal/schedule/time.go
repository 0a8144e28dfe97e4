package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDay is a clock time without a date component.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// String returns the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is earlier in the day than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.minutes() < o.minutes()
}

// Format12h returns the time as "H:MM AM".
func (t TimeOfDay) Format12h() string {
	suffix := "AM"
	h := t.Hour
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute, suffix)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

var (
	// 9am, 9:30pm, 9.30 pm
	time12h = regexp.MustCompile(`^(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm)$`)
	// 14:00, 09.30
	time24h = regexp.MustCompile(`^(\d{1,2})[:.](\d{2})$`)
)

// ParseTimeOfDay parses "9am", "9:30am", "9.30pm", "14:00" or "14.00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if m := time12h.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, fmt.Errorf("hour %d out of range for 12-hour format", hour)
		}
		if minute > 59 {
			return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
		}
		if m[3] == "am" && hour == 12 {
			hour = 0
		} else if m[3] == "pm" && hour != 12 {
			hour += 12
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	if m := time24h.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 {
			return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
		}
		if minute > 59 {
			return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	return TimeOfDay{}, fmt.Errorf("unrecognized time format %q", s)
}

// ParseTimes parses a comma-separated list of times, e.g. "9am, 13:00, 5pm".
// The result is sorted and free of duplicates.
func ParseTimes(s string) ([]TimeOfDay, error) {
	var times []TimeOfDay
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := ParseTimeOfDay(part)
		if err != nil {
			return nil, err
		}
		if seen[t.minutes()] {
			continue
		}
		seen[t.minutes()] = true
		times = append(times, t)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("no reminder times given")
	}
	sortTimes(times)
	return times, nil
}

func sortTimes(times []TimeOfDay) {
	for i := 1; i < len(times); i++ {
		for j := i; j > 0 && times[j].Before(times[j-1]); j-- {
			times[j], times[j-1] = times[j-1], times[j]
		}
	}
}
