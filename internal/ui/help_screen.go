package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	height      int            // Terminal height
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
	width       int            // Terminal width
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	// Browsing
	content += theme.HelpGroupStyle.Render("Lessons") + "\n"
	content += renderBinding(keys.Navigation.Up.Binding)
	content += renderBinding(keys.Navigation.Down.Binding)
	content += renderBinding(keys.Navigation.Open.Binding)
	content += renderBinding(keys.Workout.Start.Binding)
	content += renderBinding(keys.Navigation.NextCategory.Binding)
	content += renderBinding(keys.Navigation.PrevCategory.Binding)
	content += renderBinding(keys.Navigation.Filter.Binding)
	content += renderBinding(keys.Navigation.Modifications.Binding)
	content += renderBinding(keys.Navigation.Back.Binding)

	// Workout
	content += "\n" + theme.HelpGroupStyle.Render("Workout") + "\n"
	content += renderBinding(keys.Workout.PlayPause.Binding)
	content += renderBinding(keys.Workout.Skip.Binding)
	content += renderBinding(keys.Workout.Reset.Binding)
	content += renderBinding(keys.Workout.Instructions.Binding)
	content += renderBinding(keys.Workout.Exit.Binding)

	// Application
	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.CommandPalette.Binding)
	content += renderBinding(keys.Application.Progress.Binding)
	content += renderBinding(keys.Application.Help.Binding)
	content += renderBinding(keys.Application.Quit.Binding)
	content += renderBinding(keys.Application.ForceQuit.Binding)

	// Phases
	content += "\n" + theme.HelpGroupStyle.Render("Timer (read-only)") + "\n"
	content += renderShortcut("Exercise Time", "work phase, counts toward your minutes")
	content += renderShortcut("Rest Time", "recovery before the next exercise")
	content += renderShortcut("paused", "every exercise starts paused until you press play")
	content += renderShortcut(domain.SymbolBeginner+" "+domain.SymbolIntermediate+" "+domain.SymbolAdvanced, "beginner, intermediate, advanced")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	content := buildHelpContent(keys)
	return &HelpScreen{
		Completed:   false,
		content:     content,
		initialized: false,
		keys:        keys,
		viewport:    viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Navigation.Back.Binding, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}
