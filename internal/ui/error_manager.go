package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/domain"
)

// clearErrorMsg expires the error shown as number seq
type clearErrorMsg struct {
	seq int
}

// ErrorManager holds the error shown in the bottom section of the lesson list.
// Each error gets its own expiry; a newer error is never cleared by the timer
// of one it replaced.
type ErrorManager struct {
	current error
	delay   time.Duration
	seq     int
}

// NewErrorManager creates an ErrorManager that hides errors after delay
func NewErrorManager(delay time.Duration) *ErrorManager {
	return &ErrorManager{delay: delay}
}

// Show displays err and returns the command that will expire it
func (em *ErrorManager) Show(err error) tea.Cmd {
	em.seq++
	em.current = err
	seq := em.seq
	return tea.Tick(em.delay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// Expire clears the error if msg belongs to the one still on screen
func (em *ErrorManager) Expire(msg clearErrorMsg) {
	if msg.seq == em.seq {
		em.current = nil
	}
}

// GetError returns the error on screen, or nil
func (em *ErrorManager) GetError() error {
	return em.current
}

// HasError reports whether an error is on screen
func (em *ErrorManager) HasError() bool {
	return em.current != nil
}

// Render formats the error for a bottom line of the given width, followed by
// what the user can do about it when that is known.
func (em *ErrorManager) Render(width int) string {
	if em.current == nil {
		return ""
	}
	return formatErrorForDisplay(withHint(em.current), width)
}

type hintedError struct {
	err  error
	hint string
}

func (e hintedError) Error() string { return e.err.Error() + ". " + e.hint }
func (e hintedError) Unwrap() error { return e.err }

// withHint appends a next step to the catalog errors a user can run into
func withHint(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidLesson):
		return hintedError{err: err, hint: "This lesson cannot be timed, pick another one."}
	case errors.Is(err, domain.ErrLessonNotFound), errors.Is(err, domain.ErrExerciseNotFound):
		return hintedError{err: err, hint: "The catalog may have changed, pick another lesson."}
	}
	return err
}
