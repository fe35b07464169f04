package playback

import (
	"time"

	"github.com/avickers/tapedeck/internal/catalog"
)

// Status is an immutable snapshot of the machine taken once per
// frame. The panel renders from it and the remote-control bridge
// publishes it; neither writes back.
type Status struct {
	State    State
	Track    catalog.Track
	Index    int
	Count    int
	Playing  bool
	Scanning bool
	Volume   float64
	Position time.Duration
	Duration time.Duration
	Dir      string
}

// HasTracks reports whether the catalog holds anything playable.
func (s Status) HasTracks() bool {
	return s.Count > 0
}

// Status builds the per-frame snapshot.
func (m *Machine) Status() Status {
	st := Status{
		State:    m.State(),
		Index:    m.index,
		Count:    m.catalog.Len(),
		Playing:  m.playing,
		Scanning: m.scan != nil,
		Volume:   m.volume,
		Dir:      m.scanner.Dir(),
	}
	if track, ok := m.catalog.Track(m.index); ok {
		st.Track = track
	}
	if m.sound != nil {
		st.Position = m.sound.Position()
		st.Duration = m.sound.Duration()
	}
	return st
}
