package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pkgscope/pkgscope/internal/domain/dataset"
)

// Column is one named column of a describe table.
type Column struct {
	Name    string
	Summary dataset.Summary
}

var statRows = []struct {
	label string
	value func(dataset.Summary) float64
}{
	{"count", func(s dataset.Summary) float64 { return float64(s.Count) }},
	{"mean", func(s dataset.Summary) float64 { return s.Mean }},
	{"std", func(s dataset.Summary) float64 { return s.Std }},
	{"min", func(s dataset.Summary) float64 { return s.Min }},
	{"25%", func(s dataset.Summary) float64 { return s.P25 }},
	{"50%", func(s dataset.Summary) float64 { return s.P50 }},
	{"75%", func(s dataset.Summary) float64 { return s.P75 }},
	{"max", func(s dataset.Summary) float64 { return s.Max }},
}

// RenderDescribe renders summaries as a table with one row per statistic and
// one column per input column.
func RenderDescribe(cols []Column) string {
	headers := []string{""}
	for _, c := range cols {
		headers = append(headers, c.Name)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return titleStyle.Padding(0, 1)
			case col == 0:
				return dimStyle.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Foreground(fg).Padding(0, 1).Align(lipgloss.Right)
			}
		})

	for _, stat := range statRows {
		row := []string{stat.label}
		for _, c := range cols {
			row = append(row, FormatStat(stat.value(c.Summary)))
		}
		t.Row(row...)
	}
	return t.Render()
}

// FormatStat prints v with two decimals, or "NaN" when undefined.
func FormatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strings.TrimSpace(fmt.Sprintf("%10.2f", v))
}
