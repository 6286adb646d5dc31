package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/domain"
)

// AssertSuccess verifies lagree exited with 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode, "lagree %s\nstdout: %s\nstderr: %s",
		strings.Join(result.Args, " "), result.Stdout, result.Stderr)
}

// AssertFailure verifies lagree exited non-zero and that stderr mentions
// every given fragment
func AssertFailure(tb testing.TB, result CommandResult, stderr ...string) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode, "lagree %s succeeded\nstdout: %s",
		strings.Join(result.Args, " "), result.Stdout)
	assert.False(tb, result.TimedOut, "lagree %s hung", strings.Join(result.Args, " "))
	for _, want := range stderr {
		assert.Contains(tb, result.Stderr, want)
	}
}

// AssertStdoutContains verifies stdout contains every fragment
func AssertStdoutContains(tb testing.TB, result CommandResult, fragments ...string) {
	tb.Helper()
	for _, want := range fragments {
		assert.Contains(tb, result.Stdout, want)
	}
}

// AssertStdoutNotContains verifies stdout contains none of the fragments
func AssertStdoutNotContains(tb testing.TB, result CommandResult, fragments ...string) {
	tb.Helper()
	for _, unwanted := range fragments {
		assert.NotContains(tb, result.Stdout, unwanted)
	}
}

// DecodeJSON parses stdout of a --format json command
func DecodeJSON[T any](tb testing.TB, result CommandResult) T {
	tb.Helper()
	var v T
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), &v), "stdout: %s", result.Stdout)
	return v
}

// AssertStat finds the "label   value" row of the stats table and compares its value
func AssertStat(tb testing.TB, result CommandResult, label, want string) {
	tb.Helper()
	for _, line := range strings.Split(result.Stdout, "\n") {
		if rest, ok := strings.CutPrefix(line, label); ok && strings.HasPrefix(rest, " ") {
			assert.Equal(tb, want, strings.TrimSpace(rest), "stats row %q", label)
			return
		}
	}
	tb.Errorf("stats row %q not found in:\n%s", label, result.Stdout)
}

// AssertAchievement verifies an achievement is listed as earned (★) or locked (☆)
func AssertAchievement(tb testing.TB, result CommandResult, title string, earned bool) {
	tb.Helper()
	mark := "☆ "
	if earned {
		mark = "★ "
	}
	assert.Contains(tb, result.Stdout, mark+title)
}

// historyEvent mirrors the fields of `lagree history --format json` the tests check
type historyEvent struct {
	ExerciseID int    `json:"exercise_id"`
	Kind       string `json:"kind"`
	LessonID   int    `json:"lesson_id"`
	SessionID  string `json:"session_id"`
}

// AssertHistoryKinds decodes history JSON and compares the event kinds, newest first
func AssertHistoryKinds(tb testing.TB, result CommandResult, kinds ...domain.WorkoutEventKind) {
	tb.Helper()
	events := DecodeJSON[[]historyEvent](tb, result)

	got := make([]domain.WorkoutEventKind, 0, len(events))
	for _, e := range events {
		got = append(got, domain.WorkoutEventKind(e.Kind))
	}
	if kinds == nil {
		kinds = []domain.WorkoutEventKind{}
	}
	assert.Equal(tb, kinds, got)
}
