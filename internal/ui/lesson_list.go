package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
	"github.com/lagreeflow/lagree/internal/theme"
)

const escTimeout = 500 * time.Millisecond

type hideTipMsg struct{} // Time to hide the current tip
type showTipMsg struct{} // Time to show a new random tip

// LessonItem implements list.Item and list.DefaultItem
type LessonItem struct {
	Lesson domain.Lesson
}

// FilterValue implements list.Item
func (i LessonItem) FilterValue() string {
	return i.Lesson.Title + " " + i.Lesson.Description
}

// Title implements list.DefaultItem
func (i LessonItem) Title() string {
	return i.Lesson.Title
}

// Description implements list.DefaultItem
func (i LessonItem) Description() string {
	return i.Lesson.Description
}

// LessonDelegate renders lesson items on two lines
type LessonDelegate struct{}

// Height implements list.ItemDelegate
func (d LessonDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d LessonDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d LessonDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d LessonDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(LessonItem)
	if !ok {
		return
	}
	lesson := item.Lesson

	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}

	difficulty := theme.DifficultyStyle(lesson.Difficulty).Render(lesson.Difficulty.Symbol())
	line1 := theme.NormalStyle.Render(fmt.Sprintf("%s %02d. ", cursor, index+1)) +
		difficulty + " " +
		theme.ExerciseNameStyle.Render(lesson.Title) +
		theme.LessonMetaStyle.Render(fmt.Sprintf("  %d min · %s · %d exercises",
			lesson.DurationMinutes, lesson.Category, len(lesson.Exercises)))

	line2 := ""
	if lesson.Description != "" {
		description := lesson.Description
		if limit := m.Width() - 8; limit > 10 && len([]rune(description)) > limit {
			description = string([]rune(description)[:limit-1]) + "…"
		}
		line2 = theme.MutedStyle.Render("        " + description)
	}

	fmt.Fprint(w, line1+"\n"+line2)
}

// LessonList is a Bubble Tea component for browsing lessons by category
type LessonList struct {
	catalog     ports.LessonCatalog
	categories  []string
	categoryIdx int
	devMode     bool
	keys        KeyMap
	list        list.Model

	// Tips feature
	currentTip *Tip       // Currently displayed tip (nil = hidden)
	tipsConfig TipsConfig // Tips display configuration

	// Escape handling for filter clearing
	escPressCount int
	escPressTime  time.Time

	// Window dimensions
	height     int
	listHeight int // Height available for the list component
	width      int
}

// NewLessonList creates a new lesson list showing every category
func NewLessonList(catalog ports.LessonCatalog, keys KeyMap, devMode bool, tipsConfig TipsConfig) *LessonList {
	categories := catalog.Categories()
	if len(categories) == 0 {
		categories = []string{domain.CategoryAll}
	}

	// Initial height: assume 40 line terminal, resized on WindowSizeMsg
	l := list.New(nil, LessonDelegate{}, 80, 28)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	var initialTip *Tip
	allTips := GetTips()
	if tipsConfig.Enabled && len(allTips) > 0 {
		initialTip = &allTips[rand.Intn(len(allTips))]
	}

	ll := &LessonList{
		catalog:    catalog,
		categories: categories,
		currentTip: initialTip,
		devMode:    devMode,
		keys:       keys,
		list:       l,
		tipsConfig: tipsConfig,
	}
	ll.reloadItems()
	return ll
}

// Init schedules hiding of the startup tip
func (ll *LessonList) Init() tea.Cmd {
	if ll.tipsConfig.Enabled && ll.currentTip != nil {
		return tea.Tick(time.Duration(ll.tipsConfig.DisplayDurationSeconds)*time.Second, func(time.Time) tea.Msg {
			return hideTipMsg{}
		})
	}
	return nil
}

// Update handles messages for the lesson list component.
// Actions are reported to Model as messages.
func (ll *LessonList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showTipMsg:
		allTips := GetTips()
		if len(allTips) > 0 {
			ll.currentTip = &allTips[rand.Intn(len(allTips))]
			return ll, tea.Tick(time.Duration(ll.tipsConfig.DisplayDurationSeconds)*time.Second, func(time.Time) tea.Msg {
				return hideTipMsg{}
			})
		}
		return ll, nil

	case hideTipMsg:
		ll.currentTip = nil
		if ll.tipsConfig.Enabled {
			return ll, tea.Tick(time.Duration(ll.tipsConfig.ShowIntervalSeconds)*time.Second, func(time.Time) tea.Msg {
				return showTipMsg{}
			})
		}
		return ll, nil

	case CycleCategoryMsg:
		ll.CycleCategory(msg.Delta)
		return ll, nil

	case tea.KeyMsg:
		// When actively filtering, bypass shortcuts to allow typing
		if ll.list.FilterState() == list.Filtering {
			if key.Matches(msg, ll.keys.Navigation.Back.Binding) && ll.isDoubleEsc() {
				ll.list.ResetFilter()
				return ll, nil
			}
			var cmd tea.Cmd
			ll.list, cmd = ll.list.Update(msg)
			return ll, cmd
		}

		switch {
		case key.Matches(msg, ll.keys.Application.Quit.Binding, ll.keys.Application.ForceQuit.Binding):
			return ll, emit(QuitMsg{})

		case key.Matches(msg, ll.keys.Application.Help.Binding):
			return ll, emit(ShowHelpMsg{})

		case key.Matches(msg, ll.keys.Application.Progress.Binding):
			return ll, emit(ShowProgressMsg{})

		case key.Matches(msg, ll.keys.Application.CommandPalette.Binding):
			return ll, emit(ShowCommandPaletteMsg{})

		case key.Matches(msg, ll.keys.Navigation.NextCategory.Binding):
			ll.CycleCategory(1)
			return ll, nil

		case key.Matches(msg, ll.keys.Navigation.PrevCategory.Binding):
			ll.CycleCategory(-1)
			return ll, nil

		case key.Matches(msg, ll.keys.Navigation.Open.Binding):
			if lesson := ll.SelectedLesson(); lesson != nil {
				return ll, emit(OpenLessonMsg{LessonID: lesson.ID})
			}
			return ll, nil

		case key.Matches(msg, ll.keys.Workout.Start.Binding):
			if lesson := ll.SelectedLesson(); lesson != nil {
				return ll, emit(StartLessonMsg{LessonID: lesson.ID})
			}
			return ll, nil

		case key.Matches(msg, ll.keys.Navigation.Back.Binding):
			// Double-ESC clears an applied filter; otherwise ESC does nothing here
			if ll.list.FilterState() != list.Unfiltered && ll.isDoubleEsc() {
				ll.list.ResetFilter()
			}
			return ll, nil
		}

	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseWheelUp:
			ll.list.CursorUp()
			return ll, nil
		case tea.MouseWheelDown:
			ll.list.CursorDown()
			return ll, nil
		}

	case tea.WindowSizeMsg:
		// Actual sizing is done by Model via SetSize()
		ll.width = msg.Width
		ll.height = msg.Height
	}

	var cmd tea.Cmd
	ll.list, cmd = ll.list.Update(msg)
	return ll, cmd
}

// View renders the lesson list component
func (ll *LessonList) View() string {
	var s string

	s += renderHeader(ll.devMode, "")

	tabs := make([]string, len(ll.categories))
	for i, c := range ll.categories {
		if i == ll.categoryIdx {
			tabs[i] = theme.CategoryActiveStyle.Render(c)
		} else {
			tabs[i] = theme.CategoryStyle.Render(c)
		}
	}
	s += theme.HelpStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)+
		"  "+theme.HelpShortcutStyle.Render(ll.keys.Application.Help.Binding.Help().Key)+
		theme.HelpLabelStyle.Render(" shortcuts")) + "\n"

	if len(ll.list.Items()) == 0 {
		s += theme.HelpLabelStyle.Render("No lessons in this category. Press ") +
			theme.HelpShortcutStyle.Render(ll.keys.Navigation.NextCategory.Binding.Help().Key) +
			theme.HelpLabelStyle.Render(" to try another one.") + "\n"
	} else {
		s += ll.list.View()
	}

	// Keep a stable height so the bottom bar does not jump
	expectedHeight := 4 + ll.listHeight
	if actual := lipgloss.Height(s); actual < expectedHeight {
		s += strings.Repeat("\n", expectedHeight-actual)
	}

	return s
}

// Category returns the active category name
func (ll *LessonList) Category() string {
	return ll.categories[ll.categoryIdx]
}

// CycleCategory moves the category filter by delta, wrapping around
func (ll *LessonList) CycleCategory(delta int) {
	n := len(ll.categories)
	ll.categoryIdx = ((ll.categoryIdx+delta)%n + n) % n
	ll.list.ResetFilter()
	ll.reloadItems()
	logging.Logger.Debug("Lesson category changed", "category", ll.Category(), "lessons", len(ll.list.Items()))
}

// SelectedLesson returns the highlighted lesson, or nil when the list is empty
func (ll *LessonList) SelectedLesson() *domain.Lesson {
	if item, ok := ll.list.SelectedItem().(LessonItem); ok {
		lesson := item.Lesson
		return &lesson
	}
	return nil
}

// GetCurrentTip returns the current tip text with highlighted keys (empty if no tip to show)
func (ll *LessonList) GetCurrentTip() string {
	if ll.currentTip == nil {
		return ""
	}
	return RenderTip(*ll.currentTip)
}

// ClearCurrentTip clears the current tip (called when an error is shown)
func (ll *LessonList) ClearCurrentTip() {
	ll.currentTip = nil
}

// SetSize sets the available size for the lesson list.
// width/height are the full terminal dimensions,
// listHeight is the height available for the list component.
func (ll *LessonList) SetSize(width, height, listHeight int) {
	ll.width = width
	ll.height = height
	ll.listHeight = listHeight
	ll.list.SetSize(width, listHeight)
}

func (ll *LessonList) reloadItems() {
	lessons := ll.catalog.List(ports.LessonFilter{Category: ll.Category()})
	items := make([]list.Item, len(lessons))
	for i, l := range lessons {
		items[i] = LessonItem{Lesson: l}
	}
	ll.list.SetItems(items)
	ll.list.Select(0)
}

func (ll *LessonList) isDoubleEsc() bool {
	now := time.Now()
	if now.Sub(ll.escPressTime) < escTimeout && ll.escPressCount >= 1 {
		ll.escPressCount = 0
		return true
	}
	ll.escPressCount = 1
	ll.escPressTime = now
	return false
}

// emit wraps a message into a command
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
