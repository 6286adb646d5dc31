package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/services"
	"github.com/lagreeflow/lagree/internal/theme"
)

const tickInterval = time.Second

// WorkoutView drives one workout session: the countdown screen and, once the
// lesson is finished, the completion summary.
//
// Exactly one tick loop is live at a time. Every play/skip/reset bumps loopID
// so ticks scheduled by an older loop are dropped when they arrive.
type WorkoutView struct {
	Closed           bool // Set when control returns to the lesson list
	colors           *config.PhaseColorConfig
	height           int
	keys             *KeyMap
	loopID           int
	progress         progress.Model
	showInstructions bool
	snapshot         domain.Snapshot
	userName         string
	width            int
	workout          *services.Workout
}

// NewWorkoutView creates the timer screen for a started workout
func NewWorkoutView(workout *services.Workout, keys *KeyMap, colors *config.PhaseColorConfig, userName string, showInstructions bool) *WorkoutView {
	if colors == nil {
		colors = config.NewPhaseColorConfig("")
	}
	if userName == "" {
		userName = config.DefaultUserName
	}

	return &WorkoutView{
		colors:           colors,
		keys:             keys,
		progress:         progress.New(progress.WithSolidFill(colors.Work), progress.WithoutPercentage()),
		showInstructions: showInstructions,
		snapshot:         workout.Snapshot(),
		userName:         userName,
		workout:          workout,
	}
}

// Init implements tea.Model. Sessions start paused, so no tick is scheduled.
func (v *WorkoutView) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *WorkoutView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.progress.Width = min(max(msg.Width-4, 10), 60)
		return v, nil

	case workoutTickMsg:
		if msg.loopID != v.loopID {
			return v, nil
		}
		v.snapshot = v.workout.Tick(ctx)
		if v.snapshot.Running {
			return v, v.tickCmd()
		}
		return v, nil

	case TogglePlayMsg:
		return v, v.command(v.workout.TogglePlay(ctx))

	case SkipPhaseMsg:
		return v, v.command(v.workout.Skip(ctx))

	case ResetPhaseMsg:
		return v, v.command(v.workout.Reset(ctx))

	case ToggleInstructionsMsg:
		v.showInstructions = !v.showInstructions
		return v, nil

	case tea.KeyMsg:
		if v.snapshot.Complete {
			if key.Matches(msg, v.keys.Navigation.Open.Binding, v.keys.Navigation.Back.Binding,
				v.keys.Application.Quit.Binding, v.keys.Workout.Exit.Binding) {
				v.Close()
			}
			return v, nil
		}

		switch {
		case key.Matches(msg, v.keys.Workout.PlayPause.Binding):
			return v.Update(TogglePlayMsg{})
		case key.Matches(msg, v.keys.Workout.Skip.Binding):
			return v.Update(SkipPhaseMsg{})
		case key.Matches(msg, v.keys.Workout.Reset.Binding):
			return v.Update(ResetPhaseMsg{})
		case key.Matches(msg, v.keys.Workout.Instructions.Binding):
			return v.Update(ToggleInstructionsMsg{})
		case key.Matches(msg, v.keys.Workout.Exit.Binding, v.keys.Navigation.Back.Binding, v.keys.Application.Quit.Binding):
			return v, emit(ExitWorkoutMsg{})
		}
	}

	return v, nil
}

// command records the snapshot produced by a user command and restarts the
// tick loop when the session is running
func (v *WorkoutView) command(snapshot domain.Snapshot) tea.Cmd {
	v.snapshot = snapshot
	v.loopID++
	if snapshot.Running {
		return v.tickCmd()
	}
	return nil
}

func (v *WorkoutView) tickCmd() tea.Cmd {
	loopID := v.loopID
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return workoutTickMsg{at: t, loopID: loopID}
	})
}

// Exit tears the session down and stops the tick loop
func (v *WorkoutView) Exit() {
	v.snapshot = v.workout.Exit(context.Background())
	v.loopID++
	v.Close()
}

// Close hands control back to the lesson list
func (v *WorkoutView) Close() {
	logging.Logger.Debug("Closing workout view",
		"session_id", v.workout.SessionID(),
		"complete", v.snapshot.Complete,
		"exited", v.snapshot.Exited)
	v.Closed = true
}

// Running reports whether the countdown is live
func (v *WorkoutView) Running() bool {
	return v.snapshot.Running
}

// Snapshot returns the last state seen by the view
func (v *WorkoutView) Snapshot() domain.Snapshot {
	return v.snapshot
}

// View implements tea.Model
func (v *WorkoutView) View() string {
	if v.snapshot.Complete {
		return v.completionView()
	}
	return v.timerView()
}

func (v *WorkoutView) timerView() string {
	lesson := v.workout.Lesson()
	exercise := v.workout.CurrentExercise()
	total := len(lesson.Exercises)

	color := v.colors.Work
	label := "Exercise Time"
	if v.snapshot.Phase == domain.PhaseRest {
		color = v.colors.Rest
		label = "Rest Time"
	}

	var sb strings.Builder
	sb.WriteString(renderHeader(false, lesson.Title))
	sb.WriteString("\n")

	v.progress.FullColor = color
	sb.WriteString(v.progress.ViewAs(float64(v.snapshot.CurrentIndex+1)/float64(total)) + "\n")
	sb.WriteString(theme.MutedStyle.Render(fmt.Sprintf("Exercise %d of %d", v.snapshot.CurrentIndex+1, total)) + "\n\n")

	sb.WriteString(theme.ExerciseNameStyle.Render(exercise.Name) + "\n")
	sb.WriteString(theme.PhaseStyle(color).Render(label) + "\n")

	clock := theme.ClockStyle.BorderForeground(lipgloss.Color(color)).
		Render(domain.FormatClock(v.snapshot.RemainingSeconds))
	sb.WriteString(clock + "\n")

	if !v.snapshot.Running {
		sb.WriteString(theme.PausedStyle.Render("paused, press "+v.keys.Workout.PlayPause.Binding.Help().Key+" to go") + "\n")
	} else {
		sb.WriteString("\n")
	}

	if next, ok := v.workout.NextExercise(); ok {
		sb.WriteString(theme.HelpLabelStyle.Render("Next: ") + theme.NormalStyle.Render(next.Name) + "\n")
	}

	if v.showInstructions {
		sb.WriteString("\n" + v.instructionsPanel(exercise) + "\n")
	}

	sb.WriteString(theme.HelpStyle.Render(renderKeyHints(v.keys.WorkoutHelp())))
	return sb.String()
}

func (v *WorkoutView) instructionsPanel(exercise domain.Exercise) string {
	var sb strings.Builder
	sb.WriteString(theme.SectionStyle.UnsetMarginTop().Render("How to perform:") + "\n")
	if len(exercise.Instructions) == 0 {
		sb.WriteString(theme.MutedStyle.Render(exercise.Description) + "\n")
	}
	for i, step := range exercise.Instructions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	if len(exercise.Tips) > 0 {
		sb.WriteString(theme.SectionStyle.Render("Key tip:") + "\n")
		sb.WriteString(exercise.Tips[0])
	}

	width := v.width
	if width <= 0 {
		width = 80
	}
	return theme.InstructionsStyle.Width(min(width-2, 78)).Render(strings.TrimRight(sb.String(), "\n"))
}

func (v *WorkoutView) completionView() string {
	lesson := v.workout.Lesson()

	var sb strings.Builder
	sb.WriteString(renderHeader(false, "Lesson Complete!"))
	sb.WriteString("\n")
	sb.WriteString(theme.NormalStyle.Render(fmt.Sprintf("Excellent work, %s! You completed %q", v.userName, lesson.Title)) + "\n\n")

	stats := []string{
		theme.StatValueStyle.Render(fmt.Sprintf("%d", len(lesson.Exercises))) + theme.HelpLabelStyle.Render(" Exercises"),
		theme.StatValueStyle.Render(fmt.Sprintf("%d", lesson.DurationMinutes)) + theme.HelpLabelStyle.Render(" Minutes"),
		theme.StatValueStyle.Render(domain.FormatClock(v.workout.TotalWorkedSeconds())) + theme.HelpLabelStyle.Render(" worked"),
	}
	sb.WriteString(strings.Join(stats, "     ") + "\n")

	sb.WriteString(theme.HelpStyle.Render(theme.HelpShortcutStyle.Render(v.keys.Navigation.Open.Binding.Help().Key) +
		theme.HelpLabelStyle.Render(" back to lessons")))
	return sb.String()
}

// renderKeyHints renders "key desc" pairs for a bottom bar
func renderKeyHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+theme.HelpLabelStyle.Render(" "+help.Desc))
	}
	return strings.Join(parts, theme.HelpLabelStyle.Render(" • "))
}
