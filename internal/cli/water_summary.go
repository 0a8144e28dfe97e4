package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var waterSummaryCmd = LeafCommand{
	Use:   "summary",
	Short: "Print a markdown hydration summary, or write it as HTML",
	StrFlags: []StringFlag{
		{Name: "output", Usage: "write an HTML page to this path instead of printing markdown"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, settings, err := openStore(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return runWaterSummary(cmd, store, settings.Profile, output, time.Now)
	},
}.Build()

func runWaterSummary(cmd *cobra.Command, store water.Storage, profile, output string, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()
	tr, err := openTracker(w, store, nowFn)
	if err != nil {
		return err
	}

	md := waterMarkdown(water.BuildExport(profile, tr))
	if output == "" {
		_, _ = fmt.Fprint(w, md)
		return nil
	}

	page, err := renderSummaryHTML(md)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, page, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Text("summary written to"), Primary(output))
	return nil
}

// waterMarkdown renders the export data as a GitHub-flavored markdown document.
func waterMarkdown(data water.ExportData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Hydration summary: %s\n\n", data.Profile)
	fmt.Fprintf(&b, "_Generated %s_\n\n", data.GeneratedAt.Format("2006-01-02 15:04"))

	b.WriteString("| Date | Intake | Goal | Progress | |\n")
	b.WriteString("|---|---:|---:|---:|---|\n")
	for i := len(data.Rows) - 1; i >= 0; i-- {
		row := data.Rows[i]
		date := row.Date.Format("2006-01-02")
		if row.InProgress {
			date += " (today)"
		}
		mark := ""
		if row.Reached {
			mark = "✓"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %.0f%% | %s |\n",
			date, water.FormatML(row.Intake), water.FormatML(row.Goal), row.Percent, mark)
	}

	b.WriteString("\n## Totals\n\n")
	fmt.Fprintf(&b, "- Total: **%s**\n", water.FormatML(data.TotalIntake))
	fmt.Fprintf(&b, "- Daily average: **%s**\n", water.FormatML(data.AverageIntake))
	fmt.Fprintf(&b, "- Days at goal: **%d/%d**\n", data.DaysReached, len(data.Rows))
	fmt.Fprintf(&b, "- Last 7 days: **%s** average, goal reached %d times\n",
		water.FormatML(data.WeeklyAverage), data.WeeklyReached)
	return b.String()
}

const summaryPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Hydration summary</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; color: #222; }
table { border-collapse: collapse; width: 100%%; }
th, td { padding: .3rem .6rem; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
%s</body>
</html>
`

func renderSummaryHTML(md string) ([]byte, error) {
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := gm.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return []byte(fmt.Sprintf(summaryPageTemplate, body.String())), nil
}
