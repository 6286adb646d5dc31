package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
	"github.com/lagreeflow/lagree/internal/services"
	"github.com/lagreeflow/lagree/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateCommandPalette
	stateConfirmingExit
	stateExerciseDetail
	stateHelp
	stateLessonDetail
	stateProgress
	stateWorkout
)

type Model struct {
	catalog          ports.LessonCatalog      // Lesson content
	commandPalette   *CommandPalette          // Command palette overlay
	devMode          bool                     // Development mode (shows version info in dialogs)
	errorManager     *ErrorManager            // Error display and auto-clearing
	exitConfirm      *Dialog                  // Leave workout confirmation
	exerciseDetail   *Dialog                  // Exercise detail dialog, opened from the lesson detail
	exitConfirmed    *bool                    // Exit decision (pointer to persist across updates)
	height           int
	helpScreen       *Dialog                  // Help screen dialog
	initialLessonID  int                      // Lesson started right away (0 = none)
	keys             KeyMap                   // Keyboard shortcuts
	lessonDetail     *Dialog                  // Lesson detail dialog
	lessonList       *LessonList              // Lesson list component
	phaseColors      *config.PhaseColorConfig // Work and rest colors
	progressView     *Dialog                  // Progress dialog
	returnState      uiState                  // State restored when help or the palette closes
	showInstructions bool                     // Show the instructions panel when a workout starts
	state            uiState
	statsService     *services.StatsService
	userName         string
	width            int
	workout          *WorkoutView             // Active workout (nil when browsing)
	workoutService   *services.WorkoutService
}

func NewModel(
	errorClearDelay time.Duration,
	phaseColors *config.PhaseColorConfig,
	devMode bool,
	showInstructions bool,
	userName string,
	tipsConfig TipsConfig,
	keysConfig config.KeyBindingsConfig,
	catalog ports.LessonCatalog,
	statsService *services.StatsService,
	workoutService *services.WorkoutService,
) *Model {
	if phaseColors == nil {
		phaseColors = config.NewPhaseColorConfig("")
	}

	// Create shared key map
	keys := NewKeyMap(keysConfig)

	return &Model{
		catalog:          catalog,
		devMode:          devMode,
		errorManager:     NewErrorManager(errorClearDelay),
		keys:             keys,
		lessonList:       NewLessonList(catalog, keys, devMode, tipsConfig),
		phaseColors:      phaseColors,
		showInstructions: showInstructions,
		state:            stateList,
		statsService:     statsService,
		userName:         userName,
		workoutService:   workoutService,
	}
}

// WithInitialLesson starts the given lesson as soon as the program runs
func (m *Model) WithInitialLesson(lessonID int) *Model {
	m.initialLessonID = lessonID
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.lessonList.Init()}
	if m.initialLessonID != 0 {
		cmds = append(cmds, emit(StartLessonMsg{LessonID: m.initialLessonID}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages that concern components regardless of the active screen
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg)

	case clearErrorMsg:
		m.errorManager.Expire(msg)
		return m, nil

	case workoutTickMsg:
		// The countdown keeps going behind help, the palette and the exit confirmation
		if m.workout == nil {
			return m, nil
		}
		_, cmd := m.workout.Update(msg)
		return m, cmd

	case statsLoadedMsg:
		if m.progressView == nil {
			return m, nil
		}
		updated, cmd := m.progressView.Update(msg)
		m.progressView = updated.(*Dialog)
		return m, cmd
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateConfirmingExit:
		return m.updateConfirmingExit(msg)
	case stateExerciseDetail:
		return m.updateExerciseDetail(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateLessonDetail:
		return m.updateLessonDetail(msg)
	case stateProgress:
		return m.updateProgress(msg)
	case stateWorkout:
		return m.updateWorkout(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle action messages from LessonList and the command palette
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit

	case ShowHelpMsg:
		return m, m.showHelp(stateList)

	case ShowCommandPaletteMsg:
		return m, m.showCommandPalette(PaletteContext{Lesson: m.lessonList.SelectedLesson()}, stateList)

	case ShowProgressMsg:
		content := NewProgressView(m.statsService, &m.keys, m.phaseColors, m.userName)
		m.progressView = NewDialog("Your Progress", content, m.devMode)
		m.state = stateProgress
		initCmd := m.progressView.Init()
		updated, sizeCmd := m.progressView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.progressView = updated.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case OpenLessonMsg:
		lesson, err := m.catalog.Get(msg.LessonID)
		if err != nil {
			return m, m.showError(fmt.Errorf("failed to open lesson: %w", err))
		}
		content := NewLessonDetail(lesson, &m.keys)
		m.lessonDetail = NewDialog(lesson.Title, content, m.devMode)
		m.state = stateLessonDetail
		initCmd := m.lessonDetail.Init()
		updated, sizeCmd := m.lessonDetail.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.lessonDetail = updated.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case StartLessonMsg:
		return m, m.startWorkout(msg.LessonID)
	}

	updated, cmd := m.lessonList.Update(msg)
	m.lessonList = updated.(*LessonList)
	return m, cmd
}

// startWorkout creates a session for lessonID and switches to the timer.
// Lookup and validation failures stay on the list with an error.
func (m *Model) startWorkout(lessonID int) tea.Cmd {
	workout, err := m.workoutService.Start(context.Background(), lessonID)
	if err != nil {
		m.state = stateList
		return m.showError(err)
	}

	m.workout = NewWorkoutView(workout, &m.keys, m.phaseColors, m.userName, m.showInstructions)
	m.workout.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.state = stateWorkout
	return m.workout.Init()
}

func (m *Model) updateWorkout(msg tea.Msg) (tea.Model, tea.Cmd) {
	complete := m.workout.Snapshot().Complete

	switch msg := msg.(type) {
	case ExitWorkoutMsg:
		if complete {
			m.closeWorkout()
			return m, nil
		}
		return m, m.showExitConfirm()

	case QuitMsg:
		m.workout.Exit()
		return m, tea.Quit

	case ShowHelpMsg:
		return m, m.showHelp(stateWorkout)

	case ShowCommandPaletteMsg:
		lesson := m.workout.workout.Lesson()
		exercise := m.workout.workout.CurrentExercise()
		snapshot := m.workout.Snapshot()
		return m, m.showCommandPalette(PaletteContext{Exercise: &exercise, Lesson: &lesson, Snapshot: &snapshot}, stateWorkout)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Application.ForceQuit.Binding):
			m.workout.Exit()
			return m, tea.Quit
		case !complete && key.Matches(msg, m.keys.Application.CommandPalette.Binding):
			return m.updateWorkout(ShowCommandPaletteMsg{})
		case !complete && key.Matches(msg, m.keys.Application.Help.Binding):
			return m.updateWorkout(ShowHelpMsg{})
		}
	}

	_, cmd := m.workout.Update(msg)
	if m.workout.Closed {
		m.closeWorkout()
	}
	return m, cmd
}

func (m *Model) closeWorkout() {
	m.workout = nil
	m.state = stateList
}

func (m *Model) showExitConfirm() tea.Cmd {
	leave := false
	m.exitConfirmed = &leave

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Leave this workout?").
				Description("The remaining exercises will not be recorded.").
				Value(m.exitConfirmed). // Already a pointer, don't take address again
				Affirmative("Leave").
				Negative("Keep going"),
		),
	)
	m.exitConfirm = NewDialog("Leave Workout", form, m.devMode)
	m.state = stateConfirmingExit
	initCmd := m.exitConfirm.Init()
	_, sizeCmd := m.exitConfirm.Update(tea.WindowSizeMsg{Width: min(m.width, 60), Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateConfirmingExit(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Navigation.Back.Binding, m.keys.Application.ForceQuit.Binding) {
			m.cancelExitConfirm()
			return m, nil
		}
	}

	// Safety check for nil form or a workout closed while the dialog was up
	if m.exitConfirm == nil || m.workout == nil {
		m.cancelExitConfirm()
		return m, nil
	}

	updated, cmd := m.exitConfirm.Update(msg)
	m.exitConfirm = updated.(*Dialog)

	// Access wrapped huh.Form to check completion
	if form, ok := m.exitConfirm.Content().(*huh.Form); ok {
		switch form.State {
		case huh.StateCompleted:
			leave := *m.exitConfirmed
			logging.Logger.Info("Exit workout decision", "leave", leave, "session_id", m.workout.workout.SessionID())
			m.exitConfirm = nil
			m.exitConfirmed = nil
			if leave {
				m.workout.Exit()
				m.closeWorkout()
				return m, nil
			}
			m.state = stateWorkout
			return m, nil
		case huh.StateAborted:
			m.cancelExitConfirm()
			return m, nil
		}
	}

	return m, cmd
}

func (m *Model) cancelExitConfirm() {
	m.exitConfirm = nil
	m.exitConfirmed = nil
	if m.workout != nil {
		m.state = stateWorkout
	} else {
		m.state = stateList
	}
}

func (m *Model) showHelp(returnState uiState) tea.Cmd {
	contentForm := NewHelpScreen(&m.keys)
	m.helpScreen = NewDialog("Help", contentForm, m.devMode)
	m.returnState = returnState
	m.state = stateHelp
	// Send initial WindowSizeMsg so viewport can initialize
	initCmd := m.helpScreen.Init()
	updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.helpScreen = updatedDialog.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Delegate to dialog (it handles cancel internally)
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	// Check if dialog completed
	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.restoreState()
		return m, nil
	}

	return m, cmd
}

func (m *Model) showCommandPalette(ctx PaletteContext, returnState uiState) tea.Cmd {
	m.commandPalette = NewCommandPalette(ctx, m.keys, m.phaseColors)
	m.returnState = returnState
	m.state = stateCommandPalette
	initCmd := m.commandPalette.Init()
	_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Delegate to palette
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	// Check if palette completed
	if m.commandPalette.Completed {
		result := m.commandPalette.Result
		lesson := m.commandPalette.Lesson()
		m.commandPalette = nil
		m.restoreState()

		if result.Cancelled || result.Action == nil {
			return m, nil
		}

		// Dispatch the action
		dispatcher := NewActionDispatcher(lesson)
		actionMsg := dispatcher.Dispatch(*result.Action)
		if actionMsg == nil {
			return m, nil
		}

		// Process the action message in the restored state
		return m.Update(actionMsg)
	}

	return m, cmd
}

func (m *Model) updateLessonDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if open, ok := msg.(OpenExerciseMsg); ok {
		return m, m.showExerciseDetail(open.Exercise)
	}

	updated, cmd := m.lessonDetail.Update(msg)
	m.lessonDetail = updated.(*Dialog)

	// A start request arrives as a StartLessonMsg once we are back on the list
	if content, ok := m.lessonDetail.Content().(*LessonDetail); ok && content.Completed {
		m.lessonDetail = nil
		m.state = stateList
	}

	return m, cmd
}

func (m *Model) showExerciseDetail(exercise domain.Exercise) tea.Cmd {
	content := NewExerciseDetail(exercise, &m.keys)
	m.exerciseDetail = NewDialog(exercise.Name, content, m.devMode)
	m.state = stateExerciseDetail
	initCmd := m.exerciseDetail.Init()
	updated, sizeCmd := m.exerciseDetail.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.exerciseDetail = updated.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

// updateExerciseDetail returns to the lesson detail that opened it
func (m *Model) updateExerciseDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.exerciseDetail.Update(msg)
	m.exerciseDetail = updated.(*Dialog)

	if content, ok := m.exerciseDetail.Content().(*ExerciseDetail); ok && content.Completed {
		m.exerciseDetail = nil
		m.state = stateLessonDetail
		if m.lessonDetail == nil {
			m.state = stateList
		}
	}

	return m, cmd
}

func (m *Model) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.progressView.Update(msg)
	m.progressView = updated.(*Dialog)

	if content, ok := m.progressView.Content().(*ProgressView); ok && content.Completed {
		m.progressView = nil
		m.state = stateList
	}

	return m, cmd
}

// restoreState returns to the screen that opened help or the palette.
// Falls back to the list when the workout ended in the meantime.
func (m *Model) restoreState() {
	if m.returnState == stateWorkout && m.workout == nil {
		m.state = stateList
		return
	}
	m.state = m.returnState
}

// showError displays err in the bottom section and schedules clearing it
func (m *Model) showError(err error) tea.Cmd {
	logging.Logger.Warn("Showing error", "error", err)
	m.lessonList.ClearCurrentTip()
	return m.errorManager.Show(err)
}

// resize propagates the terminal size to every live component
func (m *Model) resize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height
	m.recalculateListHeight()

	var cmds []tea.Cmd
	if m.workout != nil {
		_, cmd := m.workout.Update(msg)
		cmds = append(cmds, cmd)
	}
	for _, dialog := range []*Dialog{m.helpScreen, m.lessonDetail, m.exerciseDetail, m.progressView, m.exitConfirm} {
		if dialog != nil {
			_, cmd := dialog.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	if m.commandPalette != nil {
		_, cmd := m.commandPalette.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// recalculateListHeight calculates and sets the list height based on current state
func (m *Model) recalculateListHeight() {
	// Layout breakdown:
	// - Header (2 lines) + category tabs (1 line) + spacing (1) = 4 lines from LessonList fixed content
	// - Bottom section: separator (1) + tip/error (2) = 3 lines
	overhead := 7
	listHeight := max(m.height-overhead, 1)
	m.lessonList.SetSize(m.width, m.height, listHeight)
}

func (m *Model) View() string {
	switch m.state {
	case stateList:
		return m.listView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			background := m.listView()
			if m.returnState == stateWorkout && m.workout != nil {
				background = m.workout.View()
			}
			return bottomAnchoredOverlay(background, m.commandPalette.View(), m.width, m.height)
		}
	case stateConfirmingExit:
		if m.exitConfirm != nil && m.workout != nil {
			box := theme.PaletteBorderStyle.Render(m.exitConfirm.View())
			return compositeOverlay(m.workout.View(), box, m.width, m.height)
		}
	case stateExerciseDetail:
		if m.exerciseDetail != nil {
			return m.exerciseDetail.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateLessonDetail:
		if m.lessonDetail != nil {
			return m.lessonDetail.View()
		}
	case stateProgress:
		if m.progressView != nil {
			return m.progressView.View()
		}
	case stateWorkout:
		if m.workout != nil {
			view := m.workout.View()
			if m.errorManager.HasError() {
				view += "\n" + theme.ErrorStyle.Render(m.errorManager.Render(m.width))
			}
			return view
		}
	}
	return ""
}

func (m *Model) listView() string {
	view := m.lessonList.View()

	// Bottom section - fixed 2 lines (error or tip or key hints)
	// Error takes priority over tip (tip is hidden while error displays)
	view += "\n"
	if m.errorManager.HasError() {
		view += theme.ErrorStyle.Render(m.errorManager.Render(m.width))
	} else if tip := m.lessonList.GetCurrentTip(); tip != "" {
		view += tip + "\n "
	} else {
		view += renderKeyHints(m.keys.ShortHelp()) + "\n "
	}

	return view
}
