package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/muesli/termenv"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
	"github.com/lagreeflow/lagree/internal/services"
	"github.com/lagreeflow/lagree/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Options configures the TUI served to every SSH session
type Options struct {
	AuthorizedKeys   []string // authorized_keys files checked in order
	ErrorClearDelay  time.Duration
	HostKeyPath      string
	KeysConfig       config.KeyBindingsConfig
	PhaseColors      *config.PhaseColorConfig
	ShowInstructions bool
	SoundEnabled     bool
	TipsConfig       ui.TipsConfig
	UserName         string // Empty uses the SSH user name
}

// Server serves the lagree TUI over SSH. Each session gets its own model
// and sound cues; the lesson catalog, workout log and stats cache are shared.
type Server struct {
	address    string
	catalog    ports.LessonCatalog
	opts       Options
	stats      *services.StatsService
	wishServer *ssh.Server
	workoutLog ports.WorkoutLogWriter
}

// NewServer creates a new SSH server instance
func NewServer(
	host string,
	port int,
	catalog ports.LessonCatalog,
	workoutLog ports.WorkoutLogWriter,
	stats *services.StatsService,
	opts Options,
) (*Server, error) {
	if opts.HostKeyPath == "" {
		opts.HostKeyPath = config.GetHostKeyPath()
	}
	if len(opts.AuthorizedKeys) == 0 {
		opts.AuthorizedKeys = []string{config.GetAuthorizedKeysPath()}
	}

	// Ensure SSH directory exists; wish generates the host key on first start
	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address:    net.JoinHostPort(host, strconv.Itoa(port)),
		catalog:    catalog,
		opts:       opts,
		stats:      stats,
		workoutLog: workoutLog,
	}

	// Note: Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.MiddlewareWithProgramHandler(s.programHandler, termenv.Ascii),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Start starts the SSH server and blocks until ctx is cancelled or an
// interrupt is received, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.address)
	fmt.Printf("SSH server listening on %s\n", s.address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("SSH server failed: %w", err)
	case <-ctx.Done():
	}
	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
