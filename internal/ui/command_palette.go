package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/theme"
)

const paletteRows = 6

// PaletteContext is what the palette knows about the screen that opened it.
// Snapshot and Exercise are nil while browsing lessons.
type PaletteContext struct {
	Exercise *domain.Exercise
	Lesson   *domain.Lesson
	Snapshot *domain.Snapshot
}

// InWorkout reports whether the palette was opened over the timer
func (c PaletteContext) InWorkout() bool {
	return c.Snapshot != nil
}

// paletteEntry is an action together with the label it has in this context
type paletteEntry struct {
	def   KeyDefinition
	label string
}

// CommandPalette lists the actions that make sense right now, most useful
// first, and lets the user narrow them down by typing.
type CommandPalette struct {
	Completed bool
	colors    *config.PhaseColorConfig
	context   PaletteContext
	cursor    int
	entries   []paletteEntry // Ranked, before filtering
	filter    textinput.Model
	keys      KeyMap
	query     string
	Result    CommandPaletteResult
	visible   []paletteEntry
	width     int
}

// CommandPaletteResult is the outcome of the palette once Completed is set
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette builds the palette for ctx
func NewCommandPalette(ctx PaletteContext, keys KeyMap, colors *config.PhaseColorConfig) *CommandPalette {
	if colors == nil {
		colors = config.NewPhaseColorConfig("")
	}

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.CharLimit = 50
	ti.Width = 40
	ti.Focus()

	entries := rankActions(GetPaletteActions(ctx.InWorkout()), ctx)
	return &CommandPalette{
		colors:  colors,
		context: ctx,
		entries: entries,
		filter:  ti,
		keys:    keys,
		visible: entries,
	}
}

// Lesson returns the lesson the palette acts on (can be nil)
func (cp *CommandPalette) Lesson() *domain.Lesson {
	return cp.context.Lesson
}

// Init implements tea.Model
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		return cp, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, cp.keys.Navigation.Back.Binding),
			key.Matches(msg, cp.keys.Application.ForceQuit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil
		case key.Matches(msg, cp.keys.Navigation.Open.Binding):
			if cp.cursor < len(cp.visible) {
				def := cp.visible[cp.cursor].def
				cp.Completed = true
				cp.Result.Action = &def
			}
			return cp, nil
		case msg.Type == tea.KeyUp:
			cp.cursor = max(cp.cursor-1, 0)
			return cp, nil
		case msg.Type == tea.KeyDown:
			cp.cursor = min(cp.cursor+1, max(len(cp.visible)-1, 0))
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filter, cmd = cp.filter.Update(msg)
	cp.applyFilter()
	return cp, cmd
}

// View renders the palette as a full-width bottom panel
func (cp *CommandPalette) View() string {
	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.context.Lesson != nil {
		header += " " + theme.DimmedStyle.Render("("+cp.context.Lesson.Title+")")
	}
	if status := cp.workoutStatus(); status != "" {
		header += "\n" + status
	}

	width := cp.width
	if width <= 0 {
		width = 80
	}
	inner := header + "\n\n" + cp.filter.View() + "\n\n" + strings.Join(cp.rows(), "\n")
	return theme.PaletteBorderStyle.Width(width - 2).Render(inner)
}

// workoutStatus summarizes the timer the palette was opened over, e.g.
// "Work · Bear Crawl · 0:32 left · 2 of 6 · paused". Empty while browsing.
func (cp *CommandPalette) workoutStatus() string {
	snap := cp.context.Snapshot
	if snap == nil {
		return ""
	}

	phase, color := "Work", cp.colors.Work
	if snap.Phase == domain.PhaseRest {
		phase, color = "Rest", cp.colors.Rest
	}

	parts := []string{}
	if cp.context.Exercise != nil {
		parts = append(parts, cp.context.Exercise.Name)
	}
	parts = append(parts, domain.FormatClock(snap.RemainingSeconds)+" left")
	if cp.context.Lesson != nil {
		parts = append(parts, fmt.Sprintf("%d of %d", snap.CurrentIndex+1, len(cp.context.Lesson.Exercises)))
	}
	if !snap.Running {
		parts = append(parts, "paused")
	}
	return theme.PhaseStyle(color).Render(phase) + theme.DimmedStyle.Render(" · "+strings.Join(parts, " · "))
}

func (cp *CommandPalette) rows() []string {
	if len(cp.visible) == 0 {
		rows := []string{theme.PaletteDescStyle.Render("  No matching actions")}
		for len(rows) < paletteRows {
			rows = append(rows, "")
		}
		return rows
	}

	labelWidth := 0
	for _, e := range cp.entries {
		labelWidth = max(labelWidth, len(e.label))
	}

	start := min(max(cp.cursor-paletteRows/2, 0), max(len(cp.visible)-paletteRows, 0))
	end := min(start+paletteRows, len(cp.visible))

	rows := make([]string, 0, paletteRows)
	for i := start; i < end; i++ {
		prefix := "  "
		switch {
		case i == cp.cursor:
			prefix = "> "
		case i == start && start > 0:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && end < len(cp.visible):
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		}
		e := cp.visible[i]
		label := e.label + strings.Repeat(" ", labelWidth-len(e.label))
		rows = append(rows, prefix+theme.PaletteItemStyle.Render(label)+theme.PaletteShortcutStyle.Render("  "+e.def.Defaults[0]))
	}
	for len(rows) < paletteRows {
		rows = append(rows, "")
	}
	return rows
}

func (cp *CommandPalette) applyFilter() {
	query := strings.ToLower(cp.filter.Value())
	if query == cp.query {
		return
	}
	cp.query = query

	cp.visible = cp.entries
	if query != "" {
		cp.visible = nil
		for _, e := range cp.entries {
			if fuzzyMatch(query, e.label) {
				cp.visible = append(cp.visible, e)
			}
		}
	}
	cp.cursor = 0
}

// fuzzyMatch reports whether the runes of query appear in order in target
func fuzzyMatch(query, target string) bool {
	q := []rune(query)
	i := 0
	for _, c := range strings.ToLower(target) {
		if i < len(q) && c == q[i] {
			i++
		}
	}
	return i == len(q)
}

// actionOrder lists the actions that matter most in ctx, best first.
// Actions not named here keep their definition order after these.
func actionOrder(ctx PaletteContext) []string {
	snap := ctx.Snapshot
	switch {
	case snap == nil && ctx.Lesson != nil:
		return []string{"start", "progress", "next_category"}
	case snap == nil:
		return []string{"next_category", "progress"}
	case !snap.Running:
		return []string{"play_pause", "reset", "instructions", "skip", "exit"}
	case snap.Phase == domain.PhaseRest:
		return []string{"skip", "play_pause", "instructions"}
	default:
		return []string{"play_pause", "instructions", "skip", "reset"}
	}
}

// rankActions orders defs for ctx and labels each one for it. Starting a
// lesson is left out when none is selected since there is nothing to start.
func rankActions(defs []KeyDefinition, ctx PaletteContext) []paletteEntry {
	order := actionOrder(ctx)
	rank := func(name string) int {
		if i := slices.Index(order, name); i >= 0 {
			return i
		}
		return len(order)
	}

	entries := make([]paletteEntry, 0, len(defs))
	for _, def := range defs {
		if def.Name == "start" && ctx.Lesson == nil {
			continue
		}
		entries = append(entries, paletteEntry{def: def, label: actionLabel(def, ctx)})
	}
	slices.SortStableFunc(entries, func(a, b paletteEntry) int {
		return rank(a.def.Name) - rank(b.def.Name)
	})
	return entries
}

// actionLabel phrases def for the current workout state
func actionLabel(def KeyDefinition, ctx PaletteContext) string {
	snap := ctx.Snapshot
	switch {
	case def.Name == "start" && ctx.Lesson != nil:
		return "Start " + ctx.Lesson.Title
	case def.Name == "play_pause" && snap != nil && snap.Running:
		return "Pause the timer"
	case def.Name == "play_pause" && snap != nil:
		return "Resume the timer"
	case def.Name == "skip" && snap != nil && snap.Phase == domain.PhaseRest:
		return "Skip the rest"
	case def.Name == "skip" && snap != nil && ctx.Exercise != nil:
		return "Finish " + ctx.Exercise.Name + " early"
	}
	if def.Help == "" {
		return def.Name
	}
	return strings.ToUpper(def.Help[:1]) + def.Help[1:]
}
