package config

import "strings"

// Default phase colors (ANSI 256)
const (
	DefaultRestColor = "141"
	DefaultWorkColor = "205"
)

// PhaseColorConfig holds the colors used to render the work and rest phases
type PhaseColorConfig struct {
	Rest string
	Work string
}

// NewPhaseColorConfig creates a PhaseColorConfig from a "work,rest" list.
// Missing entries fall back to the defaults.
func NewPhaseColorConfig(colors string) *PhaseColorConfig {
	config := &PhaseColorConfig{
		Rest: DefaultRestColor,
		Work: DefaultWorkColor,
	}

	parsed := parseCommaSeparated(colors)
	if len(parsed) > 0 {
		config.Work = parsed[0]
	}
	if len(parsed) > 1 {
		config.Rest = parsed[1]
	}

	return config
}

// String returns the "work,rest" representation
func (c *PhaseColorConfig) String() string {
	return strings.Join([]string{c.Work, c.Rest}, ",")
}
