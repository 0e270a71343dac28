package scunit

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderResultsTable prints a per-suite results table after the summary.
func renderResultsTable(cfg *Config, result *RunResult) {
	t := table.NewWriter()
	t.SetOutputMirror(cfg.Stdout)
	t.SetTitle(fmt.Sprintf("SCUnit Results (%s)", result.RunID))
	t.AppendHeader(table.Row{
		"Suite", "Passed", "Skipped", "Failed", "Total", "Status", "Wall", "CPU",
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Suite", WidthMax: 50},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Total", Align: text.AlignRight},
		{Name: "Wall", Align: text.AlignRight},
		{Name: "CPU", Align: text.AlignRight},
	})
	for _, suite := range result.Suites {
		t.AppendRow(table.Row{
			suite.Name,
			suite.Summary.Passed,
			suite.Summary.Skipped,
			suite.Summary.Failed,
			suite.Summary.Total(),
			suiteStatusString(suite.Summary),
			suite.Wall.String(),
			suite.CPU.String(),
		})
	}
	if result.Summary.Failed > 0 {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	} else if result.Summary.Skipped > 0 && result.Summary.Passed == 0 {
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}
	t.AppendFooter(table.Row{
		"TOTAL",
		result.Summary.Passed,
		result.Summary.Skipped,
		result.Summary.Failed,
		result.Summary.Total(),
		suiteStatusString(result.Summary),
		result.Wall.String(),
		result.CPU.String(),
	})
	t.Render()
}

// suiteStatusString returns a short status marker for a summary.
func suiteStatusString(summary Summary) string {
	switch {
	case summary.Failed > 0:
		return "✗ fail"
	case summary.Passed == 0 && summary.Skipped > 0:
		return "- skip"
	default:
		return "✓ pass"
	}
}
