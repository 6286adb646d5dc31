package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			width:    80,
			expected: "",
		},
		{
			name:     "short error fits on one line",
			err:      errors.New("lesson not found"),
			width:    80,
			expected: "Error: lesson not found",
		},
		{
			name:     "wraps on word boundaries",
			err:      errors.New("failed to start workout: lesson not found"),
			width:    30,
			expected: "Error: failed to start\nworkout: lesson not found",
		},
		{
			name:     "blank message",
			err:      errors.New("   "),
			width:    80,
			expected: "Error: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_TruncatesAfterTwoLines(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 40))

	result := formatErrorForDisplay(err, 30)

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], "Error: "))
	assert.True(t, strings.HasSuffix(lines[1], "..."))
	for _, line := range lines[1:] {
		assert.LessOrEqual(t, len(line), 30)
	}
}
