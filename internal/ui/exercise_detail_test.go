package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/domain"
)

func plankToPike() domain.Exercise {
	return domain.Exercise{
		Description:   "Dynamic core movement",
		Difficulty:    domain.DifficultyIntermediate,
		Equipment:     []string{"Mat"},
		ID:            1,
		Instructions:  []string{"Start in a high plank", "Lift your hips"},
		Modifications: &domain.Modifications{Easier: "Perform on knees", Harder: "Add leg lifts"},
		Name:          "Plank to Pike",
		RestSeconds:   15,
		TargetMuscles: []string{"Core", "Shoulders"},
		Tips:          []string{"Keep your core tight"},
		WorkSeconds:   45,
	}
}

func newTestExerciseDetail(t *testing.T, ex domain.Exercise) *ExerciseDetail {
	t.Helper()
	keys := NewKeyMap(nil)
	e := NewExerciseDetail(ex, &keys)
	e.Init()
	e.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return e
}

func TestExerciseDetail_RendersSections(t *testing.T) {
	view := newTestExerciseDetail(t, plankToPike()).View()

	for _, want := range []string{
		"▲▲ Intermediate", "0:45 work", "0:15 rest",
		"Target muscles", "Core · Shoulders",
		"How to perform", "1. ", "Start in a high plank", "2. ", "Lift your hips",
		"Pro tips", "✓ Keep your core tight",
		"Equipment needed", "Mat",
		"Modifications", "press m to show easier and harder variants",
		"Safety first",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Perform on knees", "modifications start collapsed")
}

func TestExerciseDetail_ToggleModifications(t *testing.T) {
	e := newTestExerciseDetail(t, plankToPike())

	e.Update(keyRune('m'))
	require.True(t, e.ModificationsVisible())
	view := e.View()
	assert.Contains(t, view, "Make it easier")
	assert.Contains(t, view, "Perform on knees")
	assert.Contains(t, view, "Make it harder")
	assert.Contains(t, view, "Add leg lifts")
	assert.Contains(t, view, "hide modifications")

	e.Update(keyRune('m'))
	assert.False(t, e.ModificationsVisible())
	assert.NotContains(t, e.View(), "Add leg lifts")
}

func TestExerciseDetail_WithoutModificationsOrEquipment(t *testing.T) {
	ex := plankToPike()
	ex.Modifications = nil
	ex.Equipment = nil
	e := newTestExerciseDetail(t, ex)

	e.Update(keyRune('m'))
	assert.False(t, e.ModificationsVisible(), "nothing to expand")

	view := e.View()
	assert.NotContains(t, view, "Modifications")
	assert.NotContains(t, view, "Equipment needed")
	assert.NotContains(t, view, "show modifications")
}

func TestExerciseDetail_BackCompletes(t *testing.T) {
	e := newTestExerciseDetail(t, plankToPike())

	e.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, e.Completed)
}

func TestLessonDetail_CursorSelectsExercises(t *testing.T) {
	keys := NewKeyMap(nil)
	lesson := testLesson()
	lesson.WarmUp = []domain.Exercise{{Name: "Cat-Cow", WorkSeconds: 30}}
	d := NewLessonDetail(lesson, &keys)
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, "Cat-Cow", d.Selected().Name, "warm-up comes first")

	d.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Bear Crawl", d.Selected().Name)

	// The cursor stops at both ends
	d.Update(keyRune('j'))
	d.Update(keyRune('j'))
	assert.Equal(t, "Plank", d.Selected().Name)
	d.Update(keyRune('k'))
	d.Update(keyRune('k'))
	d.Update(keyRune('k'))
	assert.Equal(t, "Cat-Cow", d.Selected().Name)

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenExerciseMsg{Exercise: lesson.WarmUp[0]}, cmd())
	assert.False(t, d.Completed, "opening an exercise keeps the lesson open")

	_, cmd = d.Update(keyRune('s'))
	require.NotNil(t, cmd)
	assert.Equal(t, StartLessonMsg{LessonID: 1}, cmd())
	assert.True(t, d.Completed)
}

func TestLessonDetail_RowLinesTrackContent(t *testing.T) {
	content, lines := buildLessonContent(testLesson(), 0)
	rows := splitLines(content)

	require.Len(t, lines, 2)
	assert.Contains(t, rows[lines[0]], "Bear Crawl")
	assert.Contains(t, rows[lines[1]], "Plank")
}

func splitLines(s string) []string {
	var rows []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			rows = append(rows, s[start:i])
			start = i + 1
		}
	}
	return append(rows, s[start:])
}
