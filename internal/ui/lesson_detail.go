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

// LessonDetail shows a lesson's objectives and exercise plan before starting it.
// A cursor walks the warm-up, timed and cool-down exercises; enter opens one.
type LessonDetail struct {
	Completed   bool
	cursor      int
	entries     []domain.Exercise // Selectable exercises in display order
	initialized bool
	keys        *KeyMap
	lesson      domain.Lesson
	lines       []int // Content line of each entry
	viewport    viewport.Model
}

// NewLessonDetail creates a detail screen for lesson
func NewLessonDetail(lesson domain.Lesson, keys *KeyMap) *LessonDetail {
	entries := make([]domain.Exercise, 0, len(lesson.WarmUp)+len(lesson.Exercises)+len(lesson.CoolDown))
	entries = append(entries, lesson.WarmUp...)
	entries = append(entries, lesson.Exercises...)
	entries = append(entries, lesson.CoolDown...)

	return &LessonDetail{
		entries:  entries,
		keys:     keys,
		lesson:   lesson,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (d *LessonDetail) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (d *LessonDetail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		d.viewport.Width = msg.Width
		d.viewport.Height = max(msg.Height-6, 5)
		d.refresh()
		d.initialized = true
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, d.keys.Workout.Start.Binding):
			d.Completed = true
			return d, emit(StartLessonMsg{LessonID: d.lesson.ID})
		case key.Matches(msg, d.keys.Navigation.Open.Binding):
			if len(d.entries) == 0 {
				return d, nil
			}
			return d, emit(OpenExerciseMsg{Exercise: d.Selected()})
		case key.Matches(msg, d.keys.Navigation.Up.Binding):
			d.moveCursor(-1)
			return d, nil
		case key.Matches(msg, d.keys.Navigation.Down.Binding):
			d.moveCursor(1)
			return d, nil
		case key.Matches(msg, d.keys.Navigation.Back.Binding, d.keys.Application.Quit.Binding):
			d.Completed = true
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View implements tea.Model
func (d *LessonDetail) View() string {
	if !d.initialized {
		return "Loading lesson..."
	}

	footer := theme.HelpShortcutStyle.Render(d.keys.Workout.Start.Binding.Help().Key) +
		theme.HelpLabelStyle.Render(" start workout  ") +
		theme.HelpShortcutStyle.Render(d.keys.Navigation.Open.Binding.Help().Key) +
		theme.HelpLabelStyle.Render(" exercise details  ") +
		theme.HelpShortcutStyle.Render(d.keys.Navigation.Back.Binding.Help().Key) +
		theme.HelpLabelStyle.Render(" back  ↑↓ select")
	return d.viewport.View() + "\n\n" + footer
}

// Selected returns the exercise under the cursor
func (d *LessonDetail) Selected() domain.Exercise {
	if len(d.entries) == 0 {
		return domain.Exercise{}
	}
	return d.entries[d.cursor]
}

func (d *LessonDetail) moveCursor(delta int) {
	if len(d.entries) == 0 {
		return
	}
	d.cursor = min(max(d.cursor+delta, 0), len(d.entries)-1)
	d.refresh()
}

// refresh rebuilds the content with the cursor highlighted and scrolls so the
// selected row stays visible
func (d *LessonDetail) refresh() {
	content, lines := buildLessonContent(d.lesson, d.cursor)
	d.lines = lines
	d.viewport.SetContent(content)

	if d.cursor >= len(lines) {
		return
	}
	line := lines[d.cursor]
	switch {
	case line < d.viewport.YOffset:
		d.viewport.SetYOffset(line)
	case line >= d.viewport.YOffset+d.viewport.Height:
		d.viewport.SetYOffset(line - d.viewport.Height + 1)
	}
}

// buildLessonContent renders the lesson and returns the line index of every
// selectable exercise row
func buildLessonContent(lesson domain.Lesson, cursor int) (string, []int) {
	var sb strings.Builder

	sb.WriteString(theme.DifficultyStyle(lesson.Difficulty).Render(lesson.Difficulty.Symbol()+" "+string(lesson.Difficulty)))
	sb.WriteString(theme.LessonMetaStyle.Render(fmt.Sprintf("  ·  %d min  ·  %s  ·  %d exercises  ·  %s timed",
		lesson.DurationMinutes, lesson.Category, len(lesson.Exercises), domain.FormatClock(lesson.TimedSeconds()))))
	sb.WriteString("\n\n")
	if lesson.Description != "" {
		sb.WriteString(theme.NormalStyle.Render(lesson.Description) + "\n")
	}

	if len(lesson.LearningObjectives) > 0 {
		sb.WriteString(theme.SectionStyle.Render("What you'll learn") + "\n")
		for _, o := range lesson.LearningObjectives {
			sb.WriteString(theme.NormalStyle.Render("  • "+o) + "\n")
		}
	}

	var lines []int
	index := 0
	for _, block := range []struct {
		title     string
		exercises []domain.Exercise
		numbered  bool
	}{
		{"Warm-up", lesson.WarmUp, false},
		{"Exercises", lesson.Exercises, true},
		{"Cool-down", lesson.CoolDown, false},
	} {
		if len(block.exercises) == 0 {
			continue
		}
		sb.WriteString(theme.SectionStyle.Render(block.title) + "\n")
		for i, ex := range block.exercises {
			lines = append(lines, strings.Count(sb.String(), "\n"))
			writeExerciseRow(&sb, ex, i, block.numbered, index == cursor)
			index++
		}
	}

	return sb.String(), lines
}

func writeExerciseRow(sb *strings.Builder, ex domain.Exercise, position int, numbered, selected bool) {
	prefix := "  • "
	if numbered {
		prefix = fmt.Sprintf("  %2d. ", position+1)
	}
	timing := fmt.Sprintf("  %s work", domain.FormatClock(ex.WorkSeconds))
	if ex.RestSeconds > 0 {
		timing += fmt.Sprintf(" / %s rest", domain.FormatClock(ex.RestSeconds))
	}

	if selected {
		sb.WriteString(theme.SelectedRowStyle.Render(strings.TrimRight(prefix, " ")+" "+ex.Name) +
			theme.LessonMetaStyle.Render(timing) + "\n")
	} else {
		sb.WriteString(theme.NormalStyle.Render(prefix) +
			theme.ExerciseNameStyle.Render(ex.Name) +
			theme.LessonMetaStyle.Render(timing) + "\n")
	}
	if len(ex.TargetMuscles) > 0 {
		sb.WriteString(theme.MutedStyle.Render("      "+strings.Join(ex.TargetMuscles, ", ")) + "\n")
	}
}
