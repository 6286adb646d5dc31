package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/domain"
)

// LessonAwareMsg is implemented by messages that need the selected lesson.
// Messages without lesson requirements don't need to implement this.
type LessonAwareMsg interface {
	WithLesson(lesson *domain.Lesson) tea.Msg
}

// Application messages

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowProgressMsg requests showing the progress screen
type ShowProgressMsg struct{}

// ShowCommandPaletteMsg requests showing the command palette
type ShowCommandPaletteMsg struct{}

// Browsing messages

// CycleCategoryMsg moves the category filter forward (Delta 1) or backward (Delta -1)
type CycleCategoryMsg struct {
	Delta int
}

// OpenLessonMsg requests showing the detail screen of a lesson
type OpenLessonMsg struct {
	LessonID int
}

func (m OpenLessonMsg) WithLesson(l *domain.Lesson) tea.Msg {
	return OpenLessonMsg{LessonID: l.ID}
}

// OpenExerciseMsg requests showing the detail screen of an exercise.
// Warm-up and cool-down moves are not in the catalog index, so the exercise travels whole.
type OpenExerciseMsg struct {
	Exercise domain.Exercise
}

// StartLessonMsg requests starting a workout on a lesson
type StartLessonMsg struct {
	LessonID int
}

func (m StartLessonMsg) WithLesson(l *domain.Lesson) tea.Msg {
	return StartLessonMsg{LessonID: l.ID}
}

// Workout messages

// ExitWorkoutMsg requests leaving the running workout (asks for confirmation)
type ExitWorkoutMsg struct{}

// ResetPhaseMsg requests restarting the current phase
type ResetPhaseMsg struct{}

// SkipPhaseMsg requests ending the current phase now
type SkipPhaseMsg struct{}

// ToggleInstructionsMsg requests showing or hiding the instructions panel
type ToggleInstructionsMsg struct{}

// TogglePlayMsg requests switching between running and paused
type TogglePlayMsg struct{}

// workoutTickMsg is one second of the countdown. loopID ties it to the tick
// loop that scheduled it; ticks from a superseded loop are dropped.
type workoutTickMsg struct {
	at     time.Time
	loopID int
}

// statsLoadedMsg carries progress stats loaded off the update loop
type statsLoadedMsg struct {
	err   error
	stats domain.ProgressStats
}
