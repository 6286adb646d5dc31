package cmd

import (
	"fmt"
	"io"
	"os"

	adaptercatalog "github.com/lagreeflow/lagree/internal/adapters/catalog"
	adaptersound "github.com/lagreeflow/lagree/internal/adapters/sound"
	adapterstorage "github.com/lagreeflow/lagree/internal/adapters/storage"
	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
	"github.com/lagreeflow/lagree/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters shared with the SSH server
	Catalog    ports.LessonCatalog
	WorkoutLog ports.WorkoutLogRepository

	// Services
	StatsService   *services.StatsService
	WorkoutService *services.WorkoutService

	// Terminal is stdout shared by the TUI renderer and the bell fallback
	Terminal io.Writer
}

// NewContainer creates a new Container with all dependencies wired.
// An empty catalogPath uses the built-in catalog.
func NewContainer(catalogPath string, soundEnabled bool) (*Container, error) {
	catalog, err := loadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	workoutLog, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	terminal := adaptersound.NewSharedTerminal(os.Stdout)
	var player ports.SoundPlayer
	if soundEnabled {
		player = adaptersound.NewPlayer(terminal)
	}

	statsService := services.NewStatsService(workoutLog)
	workoutService := services.NewWorkoutService(catalog, workoutLog, player, statsService)

	return &Container{
		Catalog:        catalog,
		StatsService:   statsService,
		Terminal:       terminal,
		WorkoutLog:     workoutLog,
		WorkoutService: workoutService,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.WorkoutLog != nil {
		return c.WorkoutLog.Close()
	}
	return nil
}

func loadCatalog(path string) (ports.LessonCatalog, error) {
	if path == "" {
		catalog, err := adaptercatalog.NewEmbedded()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		return catalog, nil
	}

	logging.Logger.Info("Loading lesson catalog", "path", path)
	catalog, err := adaptercatalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}
