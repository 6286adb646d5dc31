package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/domain"
)

// ActionDispatcher maps key definitions to UI messages.
// This keeps the command palette and key handling decoupled from specific message types.
type ActionDispatcher struct {
	lesson *domain.Lesson
}

// NewActionDispatcher creates a new action dispatcher.
// lesson can be nil if no lesson is selected.
func NewActionDispatcher(lesson *domain.Lesson) *ActionDispatcher {
	return &ActionDispatcher{lesson: lesson}
}

// Dispatch returns the appropriate tea.Msg for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if lessonMsg, ok := def.Msg.(LessonAwareMsg); ok {
		if d.lesson == nil {
			return nil
		}
		return lessonMsg.WithLesson(d.lesson)
	}

	return def.Msg
}
