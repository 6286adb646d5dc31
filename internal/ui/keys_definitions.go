package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/domain"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults, help text, and tips.
// Palette entries are further filtered by domain.GetActionsForContext.
// If Msg is set, the action can be dispatched via the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"P"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "progress", Defaults: []string{"p"}, Help: "show progress", IsPaletteAction: true, Msg: ShowProgressMsg{}, TipFormat: "press %s to see your streaks and achievements"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Navigation keys
	{Name: "back", Defaults: []string{"esc"}, Help: "go back (press twice to clear filter)", TipFormat: "press %s twice to clear the filter"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next lesson"},
	{Name: "filter", Defaults: []string{"/"}, Help: "filter lessons", TipFormat: "press %s to search lessons by title or description"},
	{Name: "modifications", Defaults: []string{"m"}, Help: "show easier and harder variants", TipFormat: "press %s on an exercise to see how to make it easier or harder"},
	{Name: "next_category", Defaults: []string{"tab"}, Help: "next category", IsPaletteAction: true, Msg: CycleCategoryMsg{Delta: 1}, TipFormat: "press %s to cycle through lesson categories"},
	{Name: "open", Defaults: []string{"enter"}, Help: "view lesson or exercise details", TipFormat: "press %s to see the exercises of a lesson, and again to study one"},
	{Name: "prev_category", Defaults: []string{"shift+tab"}, Help: "previous category", Msg: CycleCategoryMsg{Delta: -1}},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous lesson"},

	// Workout keys
	{Name: "exit", Defaults: []string{"x"}, Help: "exit workout", IsPaletteAction: true, Msg: ExitWorkoutMsg{}},
	{Name: "instructions", Defaults: []string{"i"}, Help: "toggle instructions", IsPaletteAction: true, Msg: ToggleInstructionsMsg{}, TipFormat: "press %s during a workout to show how to perform the exercise"},
	{Name: "play_pause", Defaults: []string{"space"}, Help: "play/pause", IsPaletteAction: true, Msg: TogglePlayMsg{}},
	{Name: "reset", Defaults: []string{"r"}, Help: "restart current phase", IsPaletteAction: true, Msg: ResetPhaseMsg{}, TipFormat: "press %s to restart the current interval"},
	{Name: "skip", Defaults: []string{"n"}, Help: "skip to next phase", IsPaletteAction: true, Msg: SkipPhaseMsg{}, TipFormat: "press %s to skip the rest of an interval"},
	{Name: "start", Defaults: []string{"s"}, Help: "start workout", IsPaletteAction: true, Msg: StartLessonMsg{}, TipFormat: "press %s to start the selected lesson right away"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette.
// inWorkout selects which domain actions are available.
func GetPaletteActions(inWorkout bool) []KeyDefinition {
	available := make(map[string]bool)
	for _, a := range domain.GetActionsForContext(inWorkout) {
		available[a.Name] = true
	}

	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		if !available[def.Name] {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
