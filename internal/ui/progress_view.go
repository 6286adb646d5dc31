package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/services"
	"github.com/lagreeflow/lagree/internal/theme"
)

// ProgressView shows streaks, weekly minutes and achievements
type ProgressView struct {
	Completed bool
	colors    *config.PhaseColorConfig
	err       error
	keys      *KeyMap
	loaded    bool
	stats     domain.ProgressStats
	service   *services.StatsService
	userName  string
	viewport  viewport.Model
}

// NewProgressView creates the progress screen. Stats load asynchronously on Init.
func NewProgressView(service *services.StatsService, keys *KeyMap, colors *config.PhaseColorConfig, userName string) *ProgressView {
	if colors == nil {
		colors = config.NewPhaseColorConfig("")
	}
	return &ProgressView{
		colors:   colors,
		keys:     keys,
		service:  service,
		userName: userName,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (p *ProgressView) Init() tea.Cmd {
	service := p.service
	return func() tea.Msg {
		stats, err := service.Summary(context.Background(), time.Now())
		return statsLoadedMsg{err: err, stats: stats}
	}
}

// Update implements tea.Model
func (p *ProgressView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		p.loaded = true
		p.err = msg.err
		p.stats = msg.stats
		p.viewport.SetContent(p.content())
		return p, nil

	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = max(msg.Height-6, 5)
		if p.loaded {
			p.viewport.SetContent(p.content())
		}
		return p, nil

	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Navigation.Back.Binding, p.keys.Application.Quit.Binding, p.keys.Application.Progress.Binding) {
			p.Completed = true
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements tea.Model
func (p *ProgressView) View() string {
	if !p.loaded {
		return "Loading progress..."
	}
	footer := theme.HelpShortcutStyle.Render(p.keys.Navigation.Back.Binding.Help().Key) +
		theme.HelpLabelStyle.Render(" back  ↑↓ scroll")
	return p.viewport.View() + "\n\n" + footer
}

func (p *ProgressView) content() string {
	if p.err != nil {
		return theme.ErrorStyle.Render(formatErrorForDisplay(p.err, max(p.viewport.Width, 40)))
	}

	s := p.stats
	var sb strings.Builder

	name := p.userName
	if name == "" {
		name = config.DefaultUserName
	}
	since := "no workouts yet"
	if s.MemberSince != nil {
		since = "member since " + s.MemberSince.Local().Format("Jan 2, 2006")
	}
	sb.WriteString(theme.ExerciseNameStyle.Render(name) + theme.MutedStyle.Render("  "+since) + "\n")

	sb.WriteString(theme.SectionStyle.Render("Totals") + "\n")
	sb.WriteString(statLine("Workouts", fmt.Sprintf("%d", s.TotalWorkouts)))
	sb.WriteString(statLine("Exercises", fmt.Sprintf("%d", s.TotalExercises)))
	sb.WriteString(statLine("Time worked", domain.FormatClock(s.TotalWorkedSeconds)))
	sb.WriteString(statLine("Current streak", pluralDays(s.CurrentStreakDays)))
	sb.WriteString(statLine("Longest streak", pluralDays(s.LongestStreakDays)))

	sb.WriteString(theme.SectionStyle.Render("This week") + "\n")
	sb.WriteString(RenderWeekDays(s.Week) + "\n\n")
	sb.WriteString(RenderWeekChart(s.Week, p.colors.Work) + "\n")

	if len(s.MonthByWeek) > 0 {
		sb.WriteString(theme.SectionStyle.Render("This month") + "\n")
		for _, w := range s.MonthByWeek {
			sb.WriteString(theme.HelpKeyStyle.Width(12).Render("  "+w.Label) +
				theme.StatValueStyle.Render(fmt.Sprintf("%3d min", w.Minutes)) +
				theme.HelpLabelStyle.Render(fmt.Sprintf("  %d workouts", w.Workouts)) + "\n")
		}
	}

	sb.WriteString(theme.SectionStyle.Render("Achievements") + "\n")
	for _, a := range s.Achievements {
		if a.Earned {
			sb.WriteString(theme.AchievementEarnedStyle.Render("  ★ "+a.Title) + theme.HelpLabelStyle.Render("  "+a.Description) + "\n")
		} else {
			sb.WriteString(theme.AchievementLockedStyle.Render("  ☆ "+a.Title+"  "+a.Description) + "\n")
		}
	}

	return sb.String()
}

func statLine(label, value string) string {
	return theme.HelpKeyStyle.Width(18).Render("  "+label) + theme.StatValueStyle.Render(value) + "\n"
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
