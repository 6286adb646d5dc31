package ui

import (
	"github.com/lagreeflow/lagree/internal/config"
)

// WorkoutKeys defines key bindings for driving the interval timer
type WorkoutKeys struct {
	Exit         KeyWithTip
	Instructions KeyWithTip
	PlayPause    KeyWithTip
	Reset        KeyWithTip
	Skip         KeyWithTip
	Start        KeyWithTip
}

// newWorkoutKeys creates workout key bindings
func newWorkoutKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) WorkoutKeys {
	return WorkoutKeys{
		Exit:         buildBinding("exit", defaults, customKeys),
		Instructions: buildBinding("instructions", defaults, customKeys),
		PlayPause:    buildBinding("play_pause", defaults, customKeys),
		Reset:        buildBinding("reset", defaults, customKeys),
		Skip:         buildBinding("skip", defaults, customKeys),
		Start:        buildBinding("start", defaults, customKeys),
	}
}
