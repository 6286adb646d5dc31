//go:build darwin

package sound

import (
	"os/exec"

	"github.com/lagreeflow/lagree/internal/ports"
)

// playSystemSound plays sounds on macOS using afplay
func playSystemSound(eventType string) error {
	var soundFiles []string

	switch eventType {
	case ports.SoundWork:
		soundFiles = []string{
			"/System/Library/Sounds/Ping.aiff",
			"/System/Library/Sounds/Pop.aiff",
		}
	case ports.SoundRest:
		soundFiles = []string{
			"/System/Library/Sounds/Tink.aiff",
			"/System/Library/Sounds/Purr.aiff",
		}
	case ports.SoundComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Submarine.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return errNoSystemPlayer
}
