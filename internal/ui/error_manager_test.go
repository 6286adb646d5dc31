package ui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/domain"
)

func TestErrorManager_StaleExpiryKeepsNewerError(t *testing.T) {
	em := NewErrorManager(time.Millisecond)

	require.NotNil(t, em.Show(errors.New("first")))
	first := clearErrorMsg{seq: em.seq}
	em.Show(errors.New("second"))

	em.Expire(first)
	require.True(t, em.HasError(), "the first error's timer must not hide the second")
	assert.EqualError(t, em.GetError(), "second")

	em.Expire(clearErrorMsg{seq: em.seq})
	assert.False(t, em.HasError())
	assert.Empty(t, em.Render(80))
}

func TestErrorManager_ShowExpiresAfterDelay(t *testing.T) {
	em := NewErrorManager(time.Millisecond)

	msg := em.Show(errors.New("boom"))()
	require.IsType(t, clearErrorMsg{}, msg)

	em.Expire(msg.(clearErrorMsg))
	assert.False(t, em.HasError())
}

func TestErrorManager_RenderAddsHints(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "missing lesson",
			err:      fmt.Errorf("failed to open lesson: %w", domain.ErrLessonNotFound),
			expected: "Error: failed to open lesson: lesson not found. The catalog may have changed, pick another lesson.",
		},
		{
			name:     "lesson that cannot be timed",
			err:      fmt.Errorf("%w: lesson 4 has no exercises", domain.ErrInvalidLesson),
			expected: "Error: invalid lesson: lesson 4 has no exercises. This lesson cannot be timed, pick another one.",
		},
		{
			name:     "other errors pass through",
			err:      errors.New("disk full"),
			expected: "Error: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := NewErrorManager(time.Second)
			em.Show(tt.err)
			assert.Equal(t, tt.expected, em.Render(200))
			assert.ErrorIs(t, withHint(tt.err), tt.err)
		})
	}
}
