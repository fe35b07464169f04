package playback

import (
	"log/slog"

	"github.com/avickers/tapedeck/internal/catalog"
	"github.com/avickers/tapedeck/internal/player"
)

// ScanSource produces catalogs, synchronously or in the background.
type ScanSource interface {
	Dir() string
	Scan() catalog.Catalog
	GoScan() *catalog.AsyncScan
}

var _ ScanSource = (*catalog.Scanner)(nil)

// resumePoint remembers what was current when a rescan started so the
// machine can pick it back up if the track survives the refresh.
type resumePoint struct {
	path    string
	playing bool
}

// Machine owns every piece of playback state and is the only thing
// that mutates it. All methods must be called from the frame-driver
// goroutine; background work reaches the machine only through the
// polled scan future and the sound handle's atomic end flag.
type Machine struct {
	log     *slog.Logger
	opener  player.Opener
	scanner ScanSource

	catalog catalog.Catalog
	index   int
	playing bool
	volume  float64
	sound   player.Sound
	scan    *catalog.AsyncScan
	resume  resumePoint
}

func New(opener player.Opener, scanner ScanSource, log *slog.Logger) *Machine {
	return &Machine{
		log:     log.With("component", "playback"),
		opener:  opener,
		scanner: scanner,
		volume:  1.0,
	}
}

// SetCatalog replaces the catalog wholesale, as after the startup
// scan. Any open handle is released and the player returns to the
// first track, stopped.
func (m *Machine) SetCatalog(c catalog.Catalog) {
	m.closeSound()
	m.catalog = c
	m.index = 0
	m.playing = false
}

// State derives the conceptual transport state.
func (m *Machine) State() State {
	switch {
	case m.catalog.Empty():
		return StateEmpty
	case m.sound == nil:
		return StateIdle
	case m.playing:
		return StatePlaying
	default:
		return StatePaused
	}
}

// Step advances the machine once per frame: defensive resync first,
// then completion of a pending scan, then the end-of-track signal.
// Run it before dispatching any input-driven transition.
func (m *Machine) Step() {
	m.resync()
	m.pollScan()
	m.consumeEnded()
}

// PlayPause toggles the transport. From playing it pauses and keeps
// the position; from paused it resumes in place; with nothing usable
// bound it opens the current track and starts it.
func (m *Machine) PlayPause() {
	if m.scan != nil {
		m.log.Debug("transport ignored during rescan")
		return
	}
	if m.catalog.Empty() {
		return
	}

	if m.playing {
		if m.sound != nil {
			m.sound.Stop()
		}
		m.playing = false
		m.log.Info("paused", "index", m.index)
		return
	}

	// Resume in place while the handle is still good; a drained or
	// missing handle means a fresh open of the current track.
	if m.sound != nil && !m.sound.AtEnd() {
		m.sound.Start()
		m.playing = true
		m.log.Info("resumed", "index", m.index)
		return
	}
	m.bindCurrent(true)
}

// Next moves to the following track, wrapping to the first after the
// last; the catalog is cyclic with no natural end. The transport
// keeps playing if it was playing.
func (m *Machine) Next() {
	if m.scan != nil {
		m.log.Debug("transport ignored during rescan")
		return
	}
	if m.catalog.Empty() {
		return
	}
	m.advance(m.playing)
}

// SetVolume stores the clamped level as the new baseline and applies
// it to the open handle, if any; otherwise it takes effect on the
// next open.
func (m *Machine) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.volume = level
	if m.sound != nil {
		m.sound.SetVolume(level)
	}
}

// RequestScan kicks off a background rescan of the music directory.
// The current track identity and transport state are captured first
// so a surviving track resumes after the refresh. Only one scan can
// be in flight; further requests are dropped until it completes.
func (m *Machine) RequestScan() {
	if m.scan != nil {
		m.log.Info("scan already in progress")
		return
	}
	m.resume = resumePoint{playing: m.playing}
	if track, ok := m.catalog.Track(m.index); ok {
		m.resume.path = track.Path
	}
	m.closeSound()
	m.playing = false
	m.log.Info("rescanning", "dir", m.scanner.Dir())
	m.scan = m.scanner.GoScan()
}

// Close releases any active handle. Safe to call more than once.
func (m *Machine) Close() {
	m.closeSound()
	m.playing = false
}

// resync clamps a stale index and drops state that no longer matches
// the catalog. Inconsistencies are healed here every frame rather
// than assumed impossible.
func (m *Machine) resync() {
	if m.catalog.Empty() {
		if m.sound != nil || m.playing || m.index != 0 {
			m.log.Debug("clearing playback state for empty catalog")
			m.closeSound()
			m.playing = false
			m.index = 0
		}
		return
	}
	if m.index < 0 || m.index >= m.catalog.Len() {
		m.log.Debug("track index out of range", "index", m.index, "tracks", m.catalog.Len())
		m.closeSound()
		m.playing = false
		m.index = 0
	}
	if m.playing && m.sound == nil {
		m.log.Debug("playing flag without a handle, clearing")
		m.playing = false
	}
}

func (m *Machine) pollScan() {
	if m.scan == nil {
		return
	}
	c, ok := m.scan.Poll()
	if !ok {
		return
	}
	m.scan = nil
	m.completeScan(c)
}

// completeScan installs a freshly scanned catalog and makes a best
// effort to resume the track that was current when the scan started,
// matched by path identity. A renamed or vanished track leaves the
// player stopped at the top of the new catalog.
func (m *Machine) completeScan(c catalog.Catalog) {
	m.catalog = c
	m.index = 0
	m.playing = false

	capture := m.resume
	m.resume = resumePoint{}
	if capture.path == "" {
		return
	}
	i := m.catalog.IndexOf(capture.path)
	if i < 0 {
		m.log.Info("current track gone after rescan", "path", capture.path)
		return
	}
	m.index = i
	if capture.playing {
		m.bindCurrent(true)
	}
}

// consumeEnded advances to the next track when the engine flagged the
// end of the current stream. The flag is always cleared; on a paused
// player it is dropped so a stale notification cannot auto-advance.
func (m *Machine) consumeEnded() {
	if m.sound == nil || !m.sound.TakeEnded() {
		return
	}
	if !m.playing {
		return
	}
	m.log.Debug("track finished, advancing")
	m.advance(true)
}

func (m *Machine) advance(startPlaying bool) {
	m.closeSound()
	m.index = (m.index + 1) % m.catalog.Len()
	m.bindCurrent(startPlaying)
}

// bindCurrent opens a handle for the current track, applying the
// stored volume, and starts it when asked. On failure nothing is
// retained and the player is left idle; the next PlayPause or Next
// retries naturally.
func (m *Machine) bindCurrent(start bool) bool {
	track, ok := m.catalog.Track(m.index)
	if !ok {
		return false
	}
	m.closeSound()
	sound, err := m.opener.Open(track.Path)
	if err != nil {
		m.log.Error("cannot open track", "path", track.Path, "err", err)
		m.playing = false
		return false
	}
	sound.SetVolume(m.volume)
	m.sound = sound
	m.playing = start
	if start {
		sound.Start()
		m.log.Info("playing", "track", track.DisplayName(), "index", m.index)
	} else {
		m.log.Debug("track bound", "track", track.DisplayName(), "index", m.index)
	}
	return true
}

func (m *Machine) closeSound() {
	if m.sound == nil {
		return
	}
	m.sound.Close()
	m.sound = nil
}
