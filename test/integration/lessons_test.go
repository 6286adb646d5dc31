package integration_test

import (
	"testing"

	"github.com/lagreeflow/lagree/test/integration/harness"
)

func TestLessons(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "list shows built-in catalog",
			args:         []string{"lessons"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Lagree Fundamentals")
				harness.AssertStdoutContains(t, result, "Core Power Flow")
				harness.AssertStdoutContains(t, result, "lagree start <id>")
			},
		},
		{
			name:         "list filters by category",
			args:         []string{"lessons", "list", "--category", "Core"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Core Power Flow")
				harness.AssertStdoutNotContains(t, result, "Lagree Fundamentals")
			},
		},
		{
			name:         "list with no match",
			args:         []string{"lessons", "list", "--query", "underwater basket weaving"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No lessons match.")
			},
		},
		{
			name:         "list JSON format",
			args:         []string{"lessons", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				lessons := harness.DecodeJSON[[]map[string]any](t, result)
				if len(lessons) == 0 {
					t.Fatal("Expected at least one lesson")
				}
				if lessons[0]["title"] != "Lagree Fundamentals" {
					t.Errorf("Expected first lesson to be Lagree Fundamentals, got %v", lessons[0]["title"])
				}
			},
		},
		{
			name:         "view shows exercises and untimed sections",
			args:         []string{"lessons", "view", "1"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Lesson 1: Lagree Fundamentals")
				harness.AssertStdoutContains(t, result, "Slow Motion Squats")
				harness.AssertStdoutContains(t, result, "Warm-up:")
				harness.AssertStdoutContains(t, result, "Cool-down:")
			},
		},
		{
			name:         "view unknown lesson fails",
			args:         []string{"lessons", "view", "999"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result, "lesson not found")
			},
		},
		{
			name: "custom catalog from settings",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				path := env.WriteFile("studio.yaml", `
categories: [All, Studio]
exercises:
  - id: 1
    name: Studio Lunge
    work_seconds: 30
    rest_seconds: 10
lessons:
  - id: 42
    title: Studio Special
    duration_minutes: 5
    difficulty: Beginner
    category: Studio
    exercises: [1]
`)
				env.WriteSettings(`{"catalog_file": "` + path + `"}`)
			},
			args:         []string{"lessons"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Studio Special")
				harness.AssertStdoutNotContains(t, result, "Lagree Fundamentals")
			},
		},
		{
			name:         "start unknown lesson fails before the TUI opens",
			args:         []string{"start", "999"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result, "cannot start lesson 999")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
