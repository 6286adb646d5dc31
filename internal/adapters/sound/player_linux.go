//go:build linux

package sound

import (
	"os/exec"

	"github.com/lagreeflow/lagree/internal/ports"
)

type systemSound struct {
	args []string
	cmd  string
}

// playSystemSound plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playSystemSound(eventType string) error {
	var sounds []systemSound

	switch eventType {
	case ports.SoundWork:
		sounds = []systemSound{
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
		}
	case ports.SoundRest:
		sounds = []systemSound{
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/service-logout.oga"}},
			{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/service-logout.wav"}},
		}
	case ports.SoundComplete:
		sounds = []systemSound{
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	default:
		sounds = []systemSound{
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return errNoSystemPlayer
}
