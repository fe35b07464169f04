package playback

// State is the conceptual transport state, derived from the machine's
// fields rather than stored separately.
//
//	Empty ──scan finds tracks──▶ Idle ──PlayPause──▶ Playing
//	                              ▲                 ▲    │
//	                              │ open failure    │    │ PlayPause
//	                              │       PlayPause │    ▼
//	                              └──────────────── Paused
//
// Next stays on the side of the playing/paused split it started on,
// and a finished rescan lands in Idle or Playing depending on the
// resume capture.
type State int

const (
	StateEmpty State = iota
	StateIdle
	StatePaused
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateIdle:
		return "Idle"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsActive reports whether a handle is bound (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
