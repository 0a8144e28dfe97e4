package water

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name   string
		intake int
		goal   int
		want   float64
	}{
		{name: "empty", intake: 0, goal: 2000, want: 0},
		{name: "half", intake: 1000, goal: 2000, want: 50},
		{name: "ninety", intake: 1800, goal: 2000, want: 90},
		{name: "capped", intake: 5000, goal: 2000, want: 100},
		{name: "zero goal", intake: 500, goal: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.intake, tt.goal), 0.0001)
		})
	}
}

func TestWeeklyStatsEmpty(t *testing.T) {
	assert.Equal(t, 0, WeeklyAverage(nil))
	assert.Equal(t, 0, WeeklyGoalsReached(nil))
}

func TestWeeklyStatsUseLastSevenRecords(t *testing.T) {
	history := []Record{
		{Date: "2025-06-01", Intake: 9000, Goal: 2000}, // outside the window
		{Date: "2025-06-08", Intake: 2000, Goal: 2000},
		{Date: "2025-06-09", Intake: 1000, Goal: 2000},
		{Date: "2025-06-10", Intake: 2500, Goal: 2500},
		{Date: "2025-06-11", Intake: 1500, Goal: 2000},
		{Date: "2025-06-12", Intake: 3000, Goal: 3000},
		{Date: "2025-06-13", Intake: 500, Goal: 2000},
		{Date: "2025-06-14", Intake: 1501, Goal: 2000},
	}

	assert.Len(t, LastWeek(history), WeekDays)
	assert.Equal(t, "2025-06-08", LastWeek(history)[0].Date)
	// (2000+1000+2500+1500+3000+500+1501)/7 = 1714.43
	assert.Equal(t, 1714, WeeklyAverage(history))
	assert.Equal(t, 3, WeeklyGoalsReached(history))
}

func TestWeeklyStatsShortHistory(t *testing.T) {
	history := []Record{
		{Date: "2025-06-13", Intake: 1000, Goal: 2000},
		{Date: "2025-06-14", Intake: 2001, Goal: 2000},
	}
	assert.Equal(t, 1501, WeeklyAverage(history))
	assert.Equal(t, 1, WeeklyGoalsReached(history))
}
