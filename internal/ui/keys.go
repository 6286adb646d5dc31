package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/lagreeflow/lagree/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Workout     WorkoutKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
		Workout:     newWorkoutKeys(defaults, keysConfig),
	}
}

// ShortHelp returns a curated list of key bindings for the lesson list bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Open.Binding,
		k.Workout.Start.Binding,
		k.Navigation.NextCategory.Binding,
		k.Navigation.Filter.Binding,
		k.Application.Progress.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// WorkoutHelp returns the key bindings shown under the timer
func (k KeyMap) WorkoutHelp() []key.Binding {
	return []key.Binding{
		k.Workout.PlayPause.Binding,
		k.Workout.Skip.Binding,
		k.Workout.Reset.Binding,
		k.Workout.Instructions.Binding,
		k.Workout.Exit.Binding,
	}
}
