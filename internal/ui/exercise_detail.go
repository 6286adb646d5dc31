package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/theme"
)

const safetyNote = "Safety first: listen to your body and stop if you feel pain. " +
	"Focus on proper form over speed or intensity. If you are new to exercise or have " +
	"health concerns, consult a healthcare provider before starting."

// ExerciseDetail explains how to perform one exercise. Easier and harder
// variants stay collapsed until the modifications key is pressed.
type ExerciseDetail struct {
	Completed         bool
	exercise          domain.Exercise
	initialized       bool
	keys              *KeyMap
	showModifications bool
	viewport          viewport.Model
}

// NewExerciseDetail creates a detail screen for exercise
func NewExerciseDetail(exercise domain.Exercise, keys *KeyMap) *ExerciseDetail {
	return &ExerciseDetail{
		exercise: exercise,
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (e *ExerciseDetail) Init() tea.Cmd {
	e.viewport.KeyMap.Up.SetKeys("up", "k")
	e.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (e *ExerciseDetail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.viewport.Width = msg.Width
		e.viewport.Height = max(msg.Height-6, 5)
		e.viewport.SetContent(e.content())
		e.initialized = true
		return e, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, e.keys.Navigation.Modifications.Binding):
			if e.exercise.Modifications != nil {
				e.showModifications = !e.showModifications
				e.viewport.SetContent(e.content())
			}
			return e, nil
		case key.Matches(msg, e.keys.Navigation.Back.Binding, e.keys.Application.Quit.Binding):
			e.Completed = true
			return e, nil
		}
	}

	var cmd tea.Cmd
	e.viewport, cmd = e.viewport.Update(msg)
	return e, cmd
}

// View implements tea.Model
func (e *ExerciseDetail) View() string {
	if !e.initialized {
		return "Loading exercise..."
	}

	var footer string
	if e.exercise.Modifications != nil {
		label := " show modifications  "
		if e.showModifications {
			label = " hide modifications  "
		}
		footer = theme.HelpShortcutStyle.Render(e.keys.Navigation.Modifications.Binding.Help().Key) +
			theme.HelpLabelStyle.Render(label)
	}
	footer += theme.HelpShortcutStyle.Render(e.keys.Navigation.Back.Binding.Help().Key) +
		theme.HelpLabelStyle.Render(" back  ↑↓ scroll")
	return e.viewport.View() + "\n\n" + footer
}

// ModificationsVisible reports whether the easier and harder variants are expanded
func (e *ExerciseDetail) ModificationsVisible() bool {
	return e.showModifications
}

func (e *ExerciseDetail) content() string {
	ex := e.exercise
	var sb strings.Builder

	sb.WriteString(theme.DifficultyStyle(ex.Difficulty).Render(ex.Difficulty.Symbol() + " " + string(ex.Difficulty)))
	sb.WriteString(theme.LessonMetaStyle.Render(fmt.Sprintf("  ·  %s work  ·  %s rest",
		domain.FormatClock(ex.WorkSeconds), domain.FormatClock(ex.RestSeconds))))
	sb.WriteString("\n\n")
	if ex.Description != "" {
		sb.WriteString(theme.NormalStyle.Render(ex.Description) + "\n")
	}

	if len(ex.TargetMuscles) > 0 {
		sb.WriteString(theme.SectionStyle.Render("Target muscles") + "\n")
		sb.WriteString(theme.NormalStyle.Render("  "+strings.Join(ex.TargetMuscles, " · ")) + "\n")
	}

	if len(ex.Instructions) > 0 {
		sb.WriteString(theme.SectionStyle.Render("How to perform") + "\n")
		for i, step := range ex.Instructions {
			sb.WriteString(theme.HelpShortcutStyle.Render(fmt.Sprintf("  %d. ", i+1)) + theme.NormalStyle.Render(step) + "\n")
		}
	}

	if len(ex.Tips) > 0 {
		sb.WriteString(theme.SectionStyle.Render("Pro tips") + "\n")
		for _, tip := range ex.Tips {
			sb.WriteString(theme.NormalStyle.Render("  ✓ "+tip) + "\n")
		}
	}

	if len(ex.Equipment) > 0 {
		sb.WriteString(theme.SectionStyle.Render("Equipment needed") + "\n")
		sb.WriteString(theme.NormalStyle.Render("  "+strings.Join(ex.Equipment, ", ")) + "\n")
	}

	if mods := ex.Modifications; mods != nil {
		sb.WriteString(theme.SectionStyle.Render("Modifications") + "\n")
		if e.showModifications {
			sb.WriteString(theme.EasierStyle.Render("  ▼ Make it easier") + "\n")
			sb.WriteString(theme.NormalStyle.Render("    "+mods.Easier) + "\n")
			sb.WriteString(theme.HarderStyle.Render("  ▲ Make it harder") + "\n")
			sb.WriteString(theme.NormalStyle.Render("    "+mods.Harder) + "\n")
		} else {
			sb.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  press %s to show easier and harder variants",
				e.keys.Navigation.Modifications.Binding.Help().Key)) + "\n")
		}
	}

	sb.WriteString("\n" + theme.SafetyStyle.Width(max(min(e.viewport.Width-4, 76), 20)).Render(safetyNote) + "\n")
	return sb.String()
}
