package ports

// Sound cue event types
const (
	SoundComplete = "complete"
	SoundRest     = "rest"
	SoundWork     = "work"
)

// SoundPlayer plays workout cues
type SoundPlayer interface {
	// PlaySound plays the default cue
	PlaySound() error

	// PlaySoundForEvent plays a cue for a specific event type
	PlaySoundForEvent(eventType string) error
}
