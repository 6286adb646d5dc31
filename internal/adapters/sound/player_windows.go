//go:build windows

package sound

import (
	"os/exec"

	"github.com/lagreeflow/lagree/internal/ports"
)

// playSystemSound plays sounds on Windows using PowerShell
func playSystemSound(eventType string) error {
	var soundCommands []string

	switch eventType {
	case ports.SoundWork:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Exclamation.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case ports.SoundRest:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Question.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case ports.SoundComplete:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return errNoSystemPlayer
}
