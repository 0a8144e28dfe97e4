package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfGoalColor   = props.Color{Red: 0, Green: 150, Blue: 200}
)

var waterExportCmd = LeafCommand{
	Use:   "export",
	Short: "Export the hydration history as a PDF report",
	StrFlags: []StringFlag{
		{Name: "output", Usage: "output file path (default water-<date>.pdf)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, settings, err := openStore(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return runWaterExport(cmd, store, settings.Profile, output, time.Now)
	},
}.Build()

func runWaterExport(cmd *cobra.Command, store water.Storage, profile, output string, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	if output == "" {
		output = fmt.Sprintf("water-%s.pdf", tr.Date())
	}
	if !strings.HasSuffix(strings.ToLower(output), ".pdf") {
		output += ".pdf"
	}

	data := water.BuildExport(profile, tr)
	if err := renderWaterPDF(data, output); err != nil {
		return err
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		abs = output
	}
	days := fmt.Sprintf("%d days", len(data.Rows))
	if len(data.Rows) == 1 {
		days = "1 day"
	}
	_, _ = fmt.Fprintf(w, "%s %s %s\n", Text("exported"), Primary(days), Silent("to "+abs))
	return nil
}

// renderWaterPDF generates a hydration report from the export data and saves
// it to the given path.
func renderWaterPDF(data water.ExportData, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Hydration report", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s, generated %s", data.Profile, data.GeneratedAt.Format("02/01/2006 15:04")), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	m.AddRow(8,
		text.NewCol(4, "Date", props.Text{Style: fontstyle.Bold, Size: 10, Color: &pdfHeaderColor}),
		text.NewCol(3, "Intake", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: &pdfHeaderColor}),
		text.NewCol(3, "Goal", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: &pdfHeaderColor}),
		text.NewCol(2, "%", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: &pdfHeaderColor}),
	)

	for _, row := range data.Rows {
		label := fmt.Sprintf("%s, %s", row.Date.Format("02/01/2006"), row.Date.Weekday())
		if row.InProgress {
			label += " (today)"
		}
		rowText := props.Text{Size: 9}
		if row.Reached {
			rowText.Color = &pdfGoalColor
		}
		right := rowText
		right.Align = align.Right

		m.AddRow(6,
			text.NewCol(4, label, rowText),
			text.NewCol(3, water.FormatML(row.Intake), right),
			text.NewCol(3, water.FormatML(row.Goal), right),
			text.NewCol(2, fmt.Sprintf("%.0f%%", row.Percent), right),
		)
	}

	m.AddRow(4)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	summary := []struct {
		label string
		value string
	}{
		{"Total", water.FormatML(data.TotalIntake)},
		{"Daily average", water.FormatML(data.AverageIntake)},
		{"Days at goal", fmt.Sprintf("%d/%d", data.DaysReached, len(data.Rows))},
		{"Last 7 days average", water.FormatML(data.WeeklyAverage)},
	}
	for _, s := range summary {
		m.AddRow(8,
			text.NewCol(9, s.label, props.Text{Style: fontstyle.Bold, Size: 11, Color: &pdfHeaderColor}),
			text.NewCol(3, s.value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: &pdfHeaderColor}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
