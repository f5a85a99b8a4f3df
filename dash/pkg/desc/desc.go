// Package desc renders summary statistics as text tables for the CLI and
// for logs.
package desc

import (
	"fmt"

	"glucodash/dash/defs"
	"glucodash/dash/pkg/stats"

	"github.com/jedib0t/go-pretty/v6/table"
)

// StatsTable renders one row per statistics group. Empty groups show the
// "not available" sentinel in every value column.
func StatsTable(s stats.Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Group", "Count", "Average", "Max", "Min"})
	t.AppendRows([]table.Row{
		groupRow("overall", s.Overall),
		groupRow("fasting", s.Fasting),
		groupRow("random", s.Random),
	})
	return t.Render()
}

func groupRow(name string, g stats.Group) table.Row {
	return table.Row{name, g.Count, g.AverageString(), g.MaxString(), g.MinString()}
}

// ReferenceTable renders the fixed reference ranges in mg/dL.
func ReferenceTable() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Context", "Normal", "Prediabetes", "Diabetes"})
	t.AppendRows([]table.Row{
		{
			"fasting",
			fmt.Sprintf("< %.0f", defs.ThresholdNormalFasting),
			fmt.Sprintf("%.0f-%.0f", defs.ThresholdNormalFasting, defs.ThresholdDiabetesFasting-1),
			fmt.Sprintf(">= %.0f", defs.ThresholdDiabetesFasting),
		},
		{
			"post-meal / random",
			fmt.Sprintf("< %.0f", defs.ThresholdNormalPostMeal),
			fmt.Sprintf("%.0f-%.0f", defs.ThresholdNormalPostMeal, defs.ThresholdDiabetesRandom-1),
			fmt.Sprintf(">= %.0f", defs.ThresholdDiabetesRandom),
		},
	})
	return t.Render()
}
