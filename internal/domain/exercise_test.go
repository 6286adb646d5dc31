package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLessonMatches(t *testing.T) {
	lesson := Lesson{
		Category:    "Core",
		Description: "Intensive core workout focusing on stability",
		Title:       "Core Power Flow",
	}

	tests := []struct {
		name     string
		category string
		query    string
		expected bool
	}{
		{"no filter", "", "", true},
		{"all category", "All", "", true},
		{"matching category", "Core", "", true},
		{"category case insensitive", "core", "", true},
		{"other category", "Lower Body", "", false},
		{"title query", "", "power", true},
		{"description query", "", "STABILITY", true},
		{"query miss", "", "squat", false},
		{"category and query", "Core", "flow", true},
		{"category hit query miss", "Core", "squat", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lesson.Matches(tt.category, tt.query))
		})
	}
}

func TestLessonTimedSeconds(t *testing.T) {
	lesson := Lesson{Exercises: []Exercise{
		{WorkSeconds: 45, RestSeconds: 15},
		{WorkSeconds: 30},
	}}

	assert.Equal(t, 90, lesson.TimedSeconds())
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{45, "0:45"},
		{60, "1:00"},
		{305, "5:05"},
		{-3, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.seconds))
		})
	}
}

func TestDifficultySymbol(t *testing.T) {
	assert.Equal(t, SymbolBeginner, DifficultyBeginner.Symbol())
	assert.Equal(t, SymbolIntermediate, DifficultyIntermediate.Symbol())
	assert.Equal(t, SymbolAdvanced, DifficultyAdvanced.Symbol())
	assert.Equal(t, SymbolBeginner, Difficulty("").Symbol())
}

func TestGetActionsForContext(t *testing.T) {
	workout := GetActionsForContext(true)
	browse := GetActionsForContext(false)

	for _, a := range workout {
		assert.NotEqual(t, ScopeBrowse, a.Scope, a.Name)
	}
	for _, a := range browse {
		assert.NotEqual(t, ScopeWorkout, a.Scope, a.Name)
	}
	assert.Equal(t, len(Actions)+2, len(workout)+len(browse), "global actions appear in both contexts")
	assert.NotNil(t, GetActionByName("skip"))
	assert.Nil(t, GetActionByName("missing"))
}
