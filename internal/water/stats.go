package water

import "math"

// Progress returns the share of the goal consumed today, capped at 100.
func (t *Tracker) Progress() float64 {
	return Progress(t.intake, t.goal)
}

// Glasses returns the number of full glasses drunk today.
func (t *Tracker) Glasses() int {
	return t.intake / GlassML
}

// Remaining returns how many ml are left to reach the goal.
func (t *Tracker) Remaining() int {
	if r := t.goal - t.intake; r > 0 {
		return r
	}
	return 0
}

// GoalReached reports whether today's intake met the goal.
func (t *Tracker) GoalReached() bool {
	return t.intake >= t.goal
}

// WeeklyAverage returns the rounded mean intake over the last WeekDays archived days.
func (t *Tracker) WeeklyAverage() int {
	return WeeklyAverage(t.history)
}

// WeeklyGoalsReached counts archived days in the last week that met their goal.
func (t *Tracker) WeeklyGoalsReached() int {
	return WeeklyGoalsReached(t.history)
}

// Progress computes min(intake/goal*100, 100).
func Progress(intake, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(float64(intake)/float64(goal)*100, 100)
}

// LastWeek returns the most recent WeekDays records, oldest first.
func LastWeek(history []Record) []Record {
	if len(history) <= WeekDays {
		return history
	}
	return history[len(history)-WeekDays:]
}

// WeeklyAverage returns the rounded mean intake of the last week of history, or 0.
func WeeklyAverage(history []Record) int {
	week := LastWeek(history)
	if len(week) == 0 {
		return 0
	}
	total := 0
	for _, r := range week {
		total += r.Intake
	}
	return int(math.Round(float64(total) / float64(len(week))))
}

// WeeklyGoalsReached counts records of the last week that reached their goal.
func WeeklyGoalsReached(history []Record) int {
	n := 0
	for _, r := range LastWeek(history) {
		if r.Reached() {
			n++
		}
	}
	return n
}
