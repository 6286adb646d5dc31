package server

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/lagreeflow/lagree/internal/adapters/sound"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
	"github.com/lagreeflow/lagree/internal/services"
	"github.com/lagreeflow/lagree/internal/ui"
)

// programHandler creates the Bubble Tea program for each SSH session. The
// renderer and the bell share one output so a cue never splits a frame.
func (s *Server) programHandler(sess ssh.Session) *tea.Program {
	input, output := sessionStreams(sess)
	terminal := sound.NewSharedTerminal(output)

	return tea.NewProgram(
		s.newSessionModel(sess, terminal),
		tea.WithInput(input),
		tea.WithOutput(terminal),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}

// newSessionModel creates the model and per-session workout service
func (s *Server) newSessionModel(sess ssh.Session, terminal io.Writer) tea.Model {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
	startTime := time.Now()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	// Cues ring the bell on the client terminal, not on the server
	var player ports.SoundPlayer
	if s.opts.SoundEnabled {
		player = sound.NewBellPlayer(terminal)
	}
	workouts := services.NewWorkoutService(s.catalog, s.workoutLog, player, s.stats)

	// A dropped connection never reaches the model, so close abandoned workouts here
	go func() {
		<-sess.Context().Done()
		exited := workouts.ExitActive(context.Background())
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"duration", time.Since(startTime).String(),
			"workouts_exited", exited)
	}()

	userName := s.opts.UserName
	if userName == "" {
		userName = sess.User()
	}

	return ui.NewModel(
		s.opts.ErrorClearDelay,
		s.opts.PhaseColors,
		false, // SSH mode never uses dev mode
		s.opts.ShowInstructions,
		userName,
		s.opts.TipsConfig,
		s.opts.KeysConfig,
		s.catalog,
		s.stats,
		workouts,
	)
}
