package water

import "time"

// ExportRow is one day in an export, archived or in progress.
type ExportRow struct {
	Date       time.Time
	Intake     int
	Goal       int
	Percent    float64
	Reached    bool
	InProgress bool
}

// ExportData holds everything needed to render a hydration report.
type ExportData struct {
	Profile       string
	GeneratedAt   time.Time
	Rows          []ExportRow
	TotalIntake   int
	DaysReached   int
	AverageIntake int
	WeeklyAverage int
	WeeklyReached int
}

// BuildExport assembles report data from archived history plus today's
// in-progress state. Rows are ordered oldest first; records with unparseable
// dates are skipped.
func BuildExport(profile string, t *Tracker) ExportData {
	history := t.History()
	data := ExportData{
		Profile:       profile,
		GeneratedAt:   t.now(),
		WeeklyAverage: WeeklyAverage(history),
		WeeklyReached: WeeklyGoalsReached(history),
	}

	for _, r := range history {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			continue
		}
		data.Rows = append(data.Rows, ExportRow{
			Date:    d,
			Intake:  r.Intake,
			Goal:    r.Goal,
			Percent: Progress(r.Intake, r.Goal),
			Reached: r.Reached(),
		})
	}

	if today, err := time.Parse(dateLayout, t.date); err == nil {
		data.Rows = append(data.Rows, ExportRow{
			Date:       today,
			Intake:     t.intake,
			Goal:       t.goal,
			Percent:    t.Progress(),
			Reached:    t.GoalReached(),
			InProgress: true,
		})
	}

	for _, row := range data.Rows {
		data.TotalIntake += row.Intake
		if row.Reached {
			data.DaysReached++
		}
	}
	if len(data.Rows) > 0 {
		data.AverageIntake = data.TotalIntake / len(data.Rows)
	}
	return data
}
