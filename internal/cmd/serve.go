package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/lagreeflow/lagree/internal/config"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	TUIFlags `embed:""`

	AuthorizedKeys []string `help:"authorized_keys files allowed to connect (defaults to ~/.ssh/authorized_keys)" type:"path"`
	Host           string   `help:"Address to listen on" default:"localhost" env:"LAGREE_SSH_HOST"`
	HostKey        string   `help:"Path to the SSH host key (generated if missing)" type:"path"`
	NoSound        bool     `help:"Do not ring the terminal bell on phase changes"`
	Port           int      `help:"Port to listen on" default:"23234" env:"LAGREE_SSH_PORT"`
}

// Run starts the SSH server
func (s *ServeCmd) Run(cli *CLI) error {
	s.TUIFlags.applySettings(cli.settings)
	s.applySettings(cli.settings)

	keysConfig, err := cli.keysConfig()
	if err != nil {
		return err
	}

	srv, err := server.NewServer(
		s.Host,
		s.Port,
		cli.Container.Catalog,
		cli.Container.WorkoutLog,
		cli.Container.StatsService,
		server.Options{
			AuthorizedKeys:   s.AuthorizedKeys,
			ErrorClearDelay:  time.Duration(s.ErrorClearDelay) * time.Second,
			HostKeyPath:      s.HostKey,
			KeysConfig:       keysConfig,
			PhaseColors:      config.NewPhaseColorConfig(s.PhaseColors),
			ShowInstructions: s.ShowInstructions,
			SoundEnabled:     !s.NoSound && cli.soundEnabled(),
			TipsConfig:       s.tipsConfig(),
			UserName:         s.UserName,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	logging.Logger.Info("Serving lagree over SSH", "address", srv.Address())
	return srv.Start(context.Background())
}

func (s *ServeCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	if s.Host == config.DefaultSSHHost && settings.SSHHost != "" {
		s.Host = settings.SSHHost
	}
	if s.Port == config.DefaultSSHPort && settings.SSHPort != nil {
		s.Port = *settings.SSHPort
	}
	if len(s.AuthorizedKeys) == 0 && len(settings.AuthorizedKeys) > 0 {
		s.AuthorizedKeys = settings.AuthorizedKeys
	}
}
