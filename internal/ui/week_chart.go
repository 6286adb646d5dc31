package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/theme"
)

const (
	weekChartHeight   = 8
	weekChartBarWidth = 3
	weekChartBarGap   = 2
)

// RenderWeekChart renders minutes worked per day of the current week.
// Used by both the TUI progress screen and the stats command.
func RenderWeekChart(week []domain.DayStat, workColor string) string {
	var sb strings.Builder

	maxMinutes := 0
	total := 0
	for _, d := range week {
		maxMinutes = max(maxMinutes, d.Minutes)
		total += d.Minutes
	}

	sb.WriteString(theme.HelpLabelStyle.Render("This week: ") +
		theme.StatValueStyle.Render(fmt.Sprintf("%d min", total)) +
		theme.HelpLabelStyle.Render(fmt.Sprintf("  (best day: %d min)", maxMinutes)))
	sb.WriteString("\n\n")

	axisStyle := lipgloss.NewStyle().Foreground(theme.ColorMuted)
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	width := len(week)*(weekChartBarWidth+weekChartBarGap) + 2
	chart := barchart.New(width, weekChartHeight,
		barchart.WithStyles(axisStyle, labelStyle),
	)
	chart.SetBarWidth(weekChartBarWidth)
	chart.SetBarGap(weekChartBarGap)
	chart.SetMax(float64(max(maxMinutes, 1)))

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(workColor))
	for _, d := range week {
		chart.Push(barchart.BarData{
			Label: d.Day,
			Values: []barchart.BarValue{
				{Name: d.Day, Value: float64(d.Minutes), Style: barStyle},
			},
		})
	}

	chart.Draw()
	sb.WriteString(chart.View())

	return sb.String()
}

// RenderWeekDays renders the Mon..Sun completion row
func RenderWeekDays(week []domain.DayStat) string {
	cells := make([]string, len(week))
	for i, d := range week {
		if d.Completed {
			cells[i] = theme.CompletedDayStyle.Render("✓ " + d.Day)
		} else {
			cells[i] = theme.MutedStyle.Render("· " + d.Day)
		}
	}
	return strings.Join(cells, "  ")
}
