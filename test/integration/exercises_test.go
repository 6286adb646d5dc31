package integration_test

import (
	"testing"

	"github.com/lagreeflow/lagree/test/integration/harness"
)

func TestExercises(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "list shows the exercise library",
			args:         []string{"exercises"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Plank to Pike")
				harness.AssertStdoutContains(t, result, "Wall Sit Pulses")
				harness.AssertStdoutContains(t, result, "lagree exercises view <id>")
			},
		},
		{
			name:         "list filters by target muscle",
			args:         []string{"exercises", "list", "--muscle", "chest"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Modified Push-ups")
				harness.AssertStdoutNotContains(t, result, "Dead Bug")
			},
		},
		{
			name:         "list with no match",
			args:         []string{"exercises", "list", "--muscle", "earlobes"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No exercises match.")
			},
		},
		{
			name:         "view shows equipment and modifications",
			args:         []string{"exercises", "view", "7"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Exercise 7: Bear Crawl Hold")
				harness.AssertStdoutContains(t, result, "Difficulty: ▲▲▲ Advanced")
				harness.AssertStdoutContains(t, result, "Timing: 0:30 work, 0:15 rest")
				harness.AssertStdoutContains(t, result, "  1. Start on hands and knees")
				harness.AssertStdoutContains(t, result, "Equipment: Mat")
				harness.AssertStdoutContains(t, result, "Easier: Hold static position without movement")
				harness.AssertStdoutContains(t, result, "Harder: Add leg lifts or arm reaches")
			},
		},
		{
			name:         "view JSON carries modifications",
			args:         []string{"exercises", "view", "7", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				exercise := harness.DecodeJSON[struct {
					Equipment     []string `json:"equipment"`
					Modifications struct {
						Easier string `json:"easier"`
						Harder string `json:"harder"`
					} `json:"modifications"`
					Name string `json:"name"`
				}](t, result)
				if exercise.Name != "Bear Crawl Hold" {
					t.Errorf("Expected Bear Crawl Hold, got %q", exercise.Name)
				}
				if exercise.Modifications.Harder != "Add leg lifts or arm reaches" {
					t.Errorf("Unexpected harder modification %q", exercise.Modifications.Harder)
				}
				if len(exercise.Equipment) != 1 || exercise.Equipment[0] != "Mat" {
					t.Errorf("Expected equipment [Mat], got %v", exercise.Equipment)
				}
			},
		},
		{
			name:         "view unknown exercise fails",
			args:         []string{"exercises", "view", "999"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result, "exercise not found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
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
