package ui

import (
	"github.com/lagreeflow/lagree/internal/config"
)

// NavigationKeys defines key bindings for browsing lessons and exercises
type NavigationKeys struct {
	Back          KeyWithTip
	Down          KeyWithTip
	Filter        KeyWithTip
	Modifications KeyWithTip
	NextCategory  KeyWithTip
	Open          KeyWithTip
	PrevCategory  KeyWithTip
	Up            KeyWithTip
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Back:          buildBinding("back", defaults, customKeys),
		Down:          buildBinding("down", defaults, customKeys),
		Filter:        buildBinding("filter", defaults, customKeys),
		Modifications: buildBinding("modifications", defaults, customKeys),
		NextCategory:  buildBinding("next_category", defaults, customKeys),
		Open:          buildBinding("open", defaults, customKeys),
		PrevCategory:  buildBinding("prev_category", defaults, customKeys),
		Up:            buildBinding("up", defaults, customKeys),
	}
}
