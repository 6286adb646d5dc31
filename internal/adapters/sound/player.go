package sound

import (
	"errors"
	"fmt"
	"io"

	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
)

var errNoSystemPlayer = errors.New("no system sound player available")

// Player implements ports.SoundPlayer
type Player struct {
	bell     io.Writer
	bellOnly bool
}

// NewPlayer creates a sound player that uses the platform's audio tools and
// falls back to ringing the bell on terminal. terminal should be the TUI's
// shared output (see NewSharedTerminal) so a bell never lands inside a frame.
func NewPlayer(terminal io.Writer) *Player {
	return &Player{bell: terminal}
}

// NewBellPlayer creates a player that only rings the terminal bell on w.
// Used for SSH sessions, where the server's speakers are not the user's;
// w is the session's shared program output.
func NewBellPlayer(w io.Writer) *Player {
	return &Player{bell: w, bellOnly: true}
}

// PlaySound plays the completion cue
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(ports.SoundComplete)
}

// PlaySoundForEvent plays different sounds based on the cue type.
// System sounds play in the background so a cue never stalls the countdown.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	if p.bellOnly {
		return p.terminalBell()
	}

	go func() {
		if err := playSystemSound(eventType); err != nil {
			logging.Logger.Debug("System sound unavailable, using terminal bell", "cue", eventType, "error", err)
			if err := p.terminalBell(); err != nil {
				logging.Logger.Warn("Failed to play sound cue", "cue", eventType, "error", err)
			}
		}
	}()
	return nil
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	if _, err := fmt.Fprint(p.bell, "\a"); err != nil {
		return fmt.Errorf("failed to ring terminal bell: %w", err)
	}
	return nil
}
