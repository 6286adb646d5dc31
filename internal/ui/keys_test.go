package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/config"
)

func TestNewKeyMap_Defaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.Equal(t, "space", keys.Workout.PlayPause.Binding.Help().Key)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, keys.Workout.PlayPause.Binding))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, keys.Application.Help.Binding))
	assert.Equal(t, "h/?", keys.Application.Help.Binding.Help().Key)
	assert.Equal(t, []string{"esc"}, keys.Navigation.Back.Binding.Keys())
}

func TestNewKeyMap_CustomBindings(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{
		"play_pause": {"p", "space"},
		"skip":       {"ctrl+n"},
	})

	assert.Equal(t, []string{"p", " "}, keys.Workout.PlayPause.Binding.Keys())
	assert.Equal(t, "p/space", keys.Workout.PlayPause.Binding.Help().Key)
	assert.Equal(t, []string{"ctrl+n"}, keys.Workout.Skip.Binding.Keys())
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, keys.Workout.Skip.Binding))
	// Untouched bindings keep their defaults
	assert.Equal(t, []string{"r"}, keys.Workout.Reset.Binding.Keys())
}

func TestBuildBinding_UnknownNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		buildBinding("does_not_exist", GetDefaultKeyBindings(), nil)
	})
}

func TestKeyDefinitions_NamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range AllKeyDefinitions {
		require.False(t, seen[def.Name], "duplicate key definition %q", def.Name)
		seen[def.Name] = true
		assert.NotEmpty(t, def.Defaults, "key definition %q has no default keys", def.Name)
	}
	assert.ElementsMatch(t, GetValidKeyNames(), mapKeys(seen))
	assert.True(t, IsValidKeyName("play_pause"))
	assert.False(t, IsValidKeyName("kill"))
}

func TestGetPaletteActions(t *testing.T) {
	tests := []struct {
		name      string
		inWorkout bool
		included  []string
		excluded  []string
	}{
		{
			name:      "browsing",
			inWorkout: false,
			included:  []string{"help", "next_category", "progress", "quit", "start"},
			excluded:  []string{"exit", "play_pause", "reset", "skip"},
		},
		{
			name:      "in workout",
			inWorkout: true,
			included:  []string{"exit", "help", "instructions", "play_pause", "quit", "reset", "skip"},
			excluded:  []string{"next_category", "progress", "start"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := make([]string, 0)
			for _, def := range GetPaletteActions(tt.inWorkout) {
				assert.True(t, def.IsPaletteAction)
				names = append(names, def.Name)
			}
			for _, name := range tt.included {
				assert.Contains(t, names, name)
			}
			for _, name := range tt.excluded {
				assert.NotContains(t, names, name)
			}
		})
	}
}

func TestTips_AreRegisteredOnce(t *testing.T) {
	NewKeyMap(nil)
	before := len(GetTips())
	NewKeyMap(nil)
	assert.Equal(t, before, len(GetTips()), "building a second key map must not duplicate tips")
	assert.NotZero(t, before)
}

func mapKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
