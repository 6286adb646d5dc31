package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "205" // Pink - app name, titles
	ColorSecondary Color = "141" // Purple - subtitles
)

// Phase colors (overridable through settings phase_colors)
const (
	ColorRest Color = "141" // Purple
	ColorWork Color = "205" // Pink
)

// UI semantic colors
const (
	ColorDimmed    Color = "240" // Background behind overlays
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorAchievement     Color = "220" // Gold - earned achievements
	ColorCompleted       Color = "42"  // Green - completed days
	ColorHelpGroup       Color = "141" // Purple
	ColorHintKey         Color = "226" // Yellow - key hints
	ColorPaletteSelected Color = "236" // Dark gray - selected palette row
	ColorScrollIndicator Color = "245"
)

// Difficulty colors
const (
	ColorAdvanced     Color = "203" // Red
	ColorBeginner     Color = "78"  // Green
	ColorIntermediate Color = "214" // Orange
)
