package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/ui"
)

// StatsCmd shows progress statistics
type StatsCmd struct {
	Format string `help:"Output format (table, chart or json)" default:"table" enum:"table,chart,json"`
}

// statsJSON is the JSON shape of the progress summary
type statsJSON struct {
	Achievements       []string   `json:"achievements"`
	CurrentStreakDays  int        `json:"current_streak_days"`
	LongestStreakDays  int        `json:"longest_streak_days"`
	MemberSince        *time.Time `json:"member_since,omitempty"`
	TotalExercises     int        `json:"total_exercises"`
	TotalWorkedSeconds int        `json:"total_worked_seconds"`
	TotalWorkouts      int        `json:"total_workouts"`
	WeekCompletedDays  int        `json:"week_completed_days"`
	WeekMinutes        int        `json:"week_minutes"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	stats, err := cli.Container.StatsService.Summary(context.Background(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	switch s.Format {
	case "json":
		earned := make([]string, 0)
		for _, a := range stats.Achievements {
			if a.Earned {
				earned = append(earned, a.Title)
			}
		}
		return printJSON(statsJSON{
			Achievements:       earned,
			CurrentStreakDays:  stats.CurrentStreakDays,
			LongestStreakDays:  stats.LongestStreakDays,
			MemberSince:        stats.MemberSince,
			TotalExercises:     stats.TotalExercises,
			TotalWorkedSeconds: stats.TotalWorkedSeconds,
			TotalWorkouts:      stats.TotalWorkouts,
			WeekCompletedDays:  stats.WeekCompletedDays(),
			WeekMinutes:        stats.WeekMinutes(),
		})
	case "chart":
		s.renderChart(stats, cli.settings)
	default:
		s.renderTable(stats)
	}

	return nil
}

// renderTable displays totals, the current month and achievements
func (s *StatsCmd) renderTable(stats domain.ProgressStats) {
	fmt.Printf("Progress - %s\n\n", time.Now().Format("2006-01-02"))

	if stats.TotalWorkouts == 0 && stats.TotalExercises == 0 {
		fmt.Println("No workouts recorded yet.")
		return
	}

	fmt.Printf("Workouts completed   %d\n", stats.TotalWorkouts)
	fmt.Printf("Exercises completed  %d\n", stats.TotalExercises)
	fmt.Printf("Time worked          %s\n", domain.FormatClock(stats.TotalWorkedSeconds))
	fmt.Printf("Current streak       %d days\n", stats.CurrentStreakDays)
	fmt.Printf("Longest streak       %d days\n", stats.LongestStreakDays)
	fmt.Printf("This week            %d min on %d days\n", stats.WeekMinutes(), stats.WeekCompletedDays())

	if len(stats.MonthByWeek) > 0 {
		fmt.Println()
		fmt.Println("Week      Minutes  Workouts")
		fmt.Println(strings.Repeat("─", 27))
		for _, w := range stats.MonthByWeek {
			fmt.Printf("%-9s %-8d %d\n", w.Label, w.Minutes, w.Workouts)
		}
	}

	fmt.Println()
	fmt.Println("Achievements")
	fmt.Println(strings.Repeat("─", 27))
	for _, a := range stats.Achievements {
		mark := "☆"
		if a.Earned {
			mark = "★"
		}
		fmt.Printf("%s %-20s %s\n", mark, a.Title, a.Description)
	}
}

// renderChart displays the current week as a bar chart
func (s *StatsCmd) renderChart(stats domain.ProgressStats, settings *config.Settings) {
	fmt.Printf("Progress - %s\n\n", time.Now().Format("2006-01-02"))

	colors := ""
	if settings != nil {
		colors = strings.Join(settings.PhaseColors, ",")
	}
	workColor := config.NewPhaseColorConfig(colors).Work

	fmt.Println(ui.RenderWeekChart(stats.Week, workColor))
	fmt.Println()
	fmt.Println(ui.RenderWeekDays(stats.Week))
}
