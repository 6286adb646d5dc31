package integration_test

import (
	"testing"

	"github.com/lagreeflow/lagree/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "meta")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Settings file:")
	harness.AssertStdoutContains(t, result, "phase_colors")
	harness.AssertStdoutContains(t, result, "sound_enabled")

	result = harness.RunCommand(t, env, "settings", "meta", "--format", "json")
	harness.AssertSuccess(t, result)
	output := harness.DecodeJSON[map[string]any](t, result)
	if _, ok := output["settings_file"]; !ok {
		t.Error("Expected 'settings_file' field in JSON output")
	}
}

func TestSettingsKeys(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "list shows defaults",
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "play_pause")
				harness.AssertStdoutContains(t, result, "skip")
			},
		},
		{
			name: "set then list shows custom binding",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "skip", "ctrl+n"))
			},
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				keys := harness.DecodeJSON[map[string]map[string]any](t, result)
				custom, ok := keys["skip"]["custom"].([]any)
				if !ok || len(custom) != 1 || custom[0] != "ctrl+n" {
					t.Errorf("Expected skip custom binding [ctrl+n], got %v", keys["skip"]["custom"])
				}
			},
		},
		{
			name: "reset removes custom binding",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "skip", "ctrl+n"))
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "reset", "skip"))
			},
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				keys := harness.DecodeJSON[map[string]map[string]any](t, result)
				if _, ok := keys["skip"]["custom"]; ok {
					t.Error("Expected skip to have no custom binding after reset")
				}
			},
		},
		{
			name:         "set unknown key fails",
			args:         []string{"settings", "keys", "set", "teleport", "t"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result, "unknown key")
			},
		},
		{
			name: "set conflicting key fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "skip", "k"))
			},
			args:         []string{"settings", "keys", "set", "reset", "k"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result, "conflict")
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
