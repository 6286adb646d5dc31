package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lagreeflow/lagree/internal/domain"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Lesson list styles
var (
	CategoryActiveStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 1)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Padding(0, 1)

	LessonMetaStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Border(lipgloss.RoundedBorder()).
			Padding(1, 4)

	ExerciseNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)

	InstructionsStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), true, false, false, false).
				BorderForeground(ColorMuted).
				Foreground(ColorNormal).
				Padding(0, 1)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Exercise detail styles
var (
	EasierStyle = lipgloss.NewStyle().
			Foreground(ColorBeginner).
			Bold(true)

	HarderStyle = lipgloss.NewStyle().
			Foreground(ColorIntermediate).
			Bold(true)

	SafetyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Foreground(ColorNormal).
			Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorPaletteSelected).
				Foreground(ColorHighlight).
				Bold(true)
)

// Progress styles
var (
	AchievementEarnedStyle = lipgloss.NewStyle().
				Foreground(ColorAchievement).
				Bold(true)

	AchievementLockedStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	CompletedDayStyle = lipgloss.NewStyle().
				Foreground(ColorCompleted).
				Bold(true)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)
)

// PhaseStyle returns a bold style for a given phase color string
func PhaseStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// DifficultyStyle returns the style for a difficulty badge
func DifficultyStyle(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyAdvanced:
		return lipgloss.NewStyle().Foreground(ColorAdvanced)
	case domain.DifficultyIntermediate:
		return lipgloss.NewStyle().Foreground(ColorIntermediate)
	default:
		return lipgloss.NewStyle().Foreground(ColorBeginner)
	}
}
