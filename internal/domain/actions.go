package domain

// ActionScope tells where an action can be invoked
type ActionScope string

const (
	ScopeBrowse  ActionScope = "browse"  // Lesson list and detail
	ScopeGlobal  ActionScope = "global"  // Everywhere
	ScopeWorkout ActionScope = "workout" // Running or completed workout
)

// Action represents a user-invocable action in the system.
// This is the domain-level definition of what actions exist.
type Action struct {
	Description string
	Name        string
	Scope       ActionScope
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "exit", Description: "Leave the current workout", Scope: ScopeWorkout},
	{Name: "help", Description: "Show keyboard shortcuts", Scope: ScopeGlobal},
	{Name: "instructions", Description: "Toggle exercise instructions", Scope: ScopeWorkout},
	{Name: "next_category", Description: "Cycle lesson category filter", Scope: ScopeBrowse},
	{Name: "play_pause", Description: "Start or pause the countdown", Scope: ScopeWorkout},
	{Name: "progress", Description: "Show progress statistics", Scope: ScopeBrowse},
	{Name: "quit", Description: "Exit lagree", Scope: ScopeGlobal},
	{Name: "reset", Description: "Restart the current phase", Scope: ScopeWorkout},
	{Name: "skip", Description: "End the current phase now", Scope: ScopeWorkout},
	{Name: "start", Description: "Start the selected lesson", Scope: ScopeBrowse},
}

// GetActions returns all available actions.
func GetActions() []Action {
	return Actions
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// GetActionsForContext returns the global actions plus the workout actions
// when inWorkout is true, or the browse actions otherwise.
func GetActionsForContext(inWorkout bool) []Action {
	want := ScopeBrowse
	if inWorkout {
		want = ScopeWorkout
	}

	var filtered []Action
	for _, a := range Actions {
		if a.Scope == ScopeGlobal || a.Scope == want {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
