//go:build !darwin && !linux && !windows

package sound

// playSystemSound has no system player on unsupported platforms
func playSystemSound(eventType string) error {
	return errNoSystemPlayer
}
