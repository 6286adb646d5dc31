package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Catalog     string           `help:"Path to a YAML lesson catalog (defaults to the built-in catalog)" type:"path" env:"LAGREE_CATALOG"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the lagree TUI (default)" default:"1"`
	Start     StartCmd     `cmd:"start" help:"Start a lesson directly by id"`
	Exercises ExercisesCmd `cmd:"exercises" help:"Browse the exercise library (list, view)"`
	Lessons   LessonsCmd   `cmd:"lessons" help:"Browse the lesson catalog (list, view)"`
	Stats     StatsCmd     `cmd:"stats" help:"Show streaks, weekly minutes and achievements"`
	History   HistoryCmd   `cmd:"history" help:"Show recorded workout events"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("LAGREE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("LAGREE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Catalog == "" && c.settings.CatalogFile != "" {
			c.Catalog = c.settings.CatalogFile
		}
	}

	err := logging.Initialize(logging.Options{
		Debug:    c.Debug,
		Dir:      filepath.Join(config.GetLagreeHome(), "logs"),
		File:     c.DebugFile,
		MaxFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// Create container AFTER logging is initialized so GORM's logger has a target
	container, err := NewContainer(c.Catalog, c.soundEnabled())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) soundEnabled() bool {
	if c.settings != nil && c.settings.SoundEnabled != nil {
		return *c.settings.SoundEnabled
	}
	return true
}

// keysConfig returns the validated custom key bindings, if any
func (c *CLI) keysConfig() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// TUIFlags holds the flags shared by every command that renders the TUI
type TUIFlags struct {
	ErrorClearDelay            int    `help:"Seconds before error messages auto-clear" default:"10"`
	PhaseColors                string `help:"Comma-separated ANSI colors for the work and rest phases (e.g., '205,141')" default:""`
	ShowInstructions           bool   `help:"Show exercise instructions during workouts" default:"false" env:"LAGREE_SHOW_INSTRUCTIONS"`
	TipsDisplayDurationSeconds int    `help:"Seconds to display each tip" default:"8"`
	TipsEnabled                bool   `help:"Enable rotating tips display" default:"true" negatable:""`
	TipsShowIntervalSeconds    int    `help:"Seconds between tips" default:"30"`
	UserName                   string `help:"Name shown on the completion and progress screens" env:"LAGREE_USER_NAME"`
}

// applySettings fills flags left at their defaults from settings.json
func (f *TUIFlags) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if f.PhaseColors == "" && len(settings.PhaseColors) > 0 {
		f.PhaseColors = strings.Join(settings.PhaseColors, ",")
	}

	if !f.ShowInstructions {
		if _, hasEnv := os.LookupEnv("LAGREE_SHOW_INSTRUCTIONS"); !hasEnv {
			if settings.ShowInstructions != nil && *settings.ShowInstructions {
				f.ShowInstructions = true
			}
		}
	}

	if f.UserName == "" && settings.UserName != "" {
		f.UserName = settings.UserName
	}
}

func (f *TUIFlags) tipsConfig() ui.TipsConfig {
	return ui.TipsConfig{
		DisplayDurationSeconds: f.TipsDisplayDurationSeconds,
		Enabled:                f.TipsEnabled,
		ShowIntervalSeconds:    f.TipsShowIntervalSeconds,
	}
}

// RunCmd starts the TUI application
type RunCmd struct {
	TUIFlags `embed:""`

	Dev bool `help:"Enable development mode (shows version info in dialogs)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	return runTUI(cli, &r.TUIFlags, r.Dev, 0)
}

// StartCmd opens the TUI straight into a lesson
type StartCmd struct {
	TUIFlags `embed:""`

	LessonID int `arg:"" help:"Id of the lesson to start"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	// Fail before the alt screen takes over the terminal
	if _, err := cli.Container.Catalog.Get(s.LessonID); err != nil {
		return fmt.Errorf("cannot start lesson %d: %w", s.LessonID, err)
	}
	return runTUI(cli, &s.TUIFlags, false, s.LessonID)
}

func runTUI(cli *CLI, flags *TUIFlags, dev bool, initialLesson int) error {
	flags.applySettings(cli.settings)

	logging.Logger.Info("Starting lagree TUI", "initial_lesson", initialLesson)

	keysConfig, err := cli.keysConfig()
	if err != nil {
		return err
	}

	logging.Logger.Debug("Initializing Bubble Tea program")
	errorClearDelay := time.Duration(flags.ErrorClearDelay) * time.Second
	model := ui.NewModel(
		errorClearDelay,
		config.NewPhaseColorConfig(flags.PhaseColors),
		dev,
		flags.ShowInstructions,
		flags.UserName,
		flags.tipsConfig(),
		keysConfig,
		cli.Container.Catalog,
		cli.Container.StatsService,
		cli.Container.WorkoutService,
	)
	if initialLesson != 0 {
		model = model.WithInitialLesson(initialLesson)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),                    // Use alternate screen buffer
		tea.WithMouseCellMotion(),              // Enable mouse support
		tea.WithOutput(cli.Container.Terminal), // Shared with the bell fallback
	)

	logging.Logger.Info("Starting TUI program")
	_, err = p.Run()

	// A signal or crash can end the program mid-workout; record those as exited
	if exited := cli.Container.WorkoutService.ExitActive(context.Background()); exited > 0 {
		logging.Logger.Info("Recorded abandoned workouts", "count", exited)
	}

	if err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
