package player

import "time"

// Sound is one live binding between the speaker and a single track.
// Exactly one Sound is alive per player; opening a new one always
// closes the previous one first.
type Sound interface {
	// Start begins or resumes playback from the current position.
	Start()
	// Stop pauses playback and keeps the position; a later Start
	// resumes from where Stop left off, never from the beginning.
	Stop()
	// SetVolume applies a 0.0-1.0 level immediately. It is effective
	// even while stopped.
	SetVolume(level float64)
	IsPlaying() bool
	// AtEnd reports whether the stream has reached its natural end.
	AtEnd() bool
	// TakeEnded clears and returns the end-of-stream flag set on the
	// engine goroutine when the track finished on its own.
	TakeEnded() bool
	Position() time.Duration
	Duration() time.Duration
	// Close releases the engine resource unconditionally. Idempotent.
	Close()
}

// Opener produces Sounds. Satisfied by *Engine and by the test mock.
type Opener interface {
	Open(path string) (Sound, error)
}

// Verify the real engine satisfies the contracts at compile time.
var (
	_ Sound  = (*Handle)(nil)
	_ Opener = (*Engine)(nil)
)
