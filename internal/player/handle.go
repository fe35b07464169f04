package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// OpenError reports a track the engine could not open or decode.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open sound %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Handle is the live binding between the speaker and one track. It is
// created stopped; Start and Stop toggle playback without losing the
// stream position. The end flag is set by the speaker goroutine when
// the stream drains and consumed by the owner through TakeEnded.
type Handle struct {
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	ended    atomic.Bool
	closed   bool
}

// Open binds the speaker to the file at path, streaming rather than
// preloading it. The handle starts stopped; no audio plays until
// Start. On failure nothing is retained.
func (e *Engine) Open(path string) (Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	h := &Handle{
		streamer: streamer,
		format:   format,
		file:     f,
	}

	var play beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		play = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	h.ctrl = &beep.Ctrl{Streamer: play, Paused: true}
	h.volume = &effects.Volume{Streamer: h.ctrl, Base: 2, Volume: 0}

	speaker.Play(beep.Seq(h.volume, beep.Callback(func() {
		// Runs on the speaker goroutine: only flag the end, never
		// touch player state from here.
		h.ended.Store(true)
	})))

	return h, nil
}

func (h *Handle) Start() {
	if h.closed {
		return
	}
	speaker.Lock()
	h.ctrl.Paused = false
	speaker.Unlock()
}

func (h *Handle) Stop() {
	if h.closed {
		return
	}
	speaker.Lock()
	h.ctrl.Paused = true
	speaker.Unlock()
}

// SetVolume clamps level to [0, 1] and applies it to this handle. A
// zero level mutes outright rather than leaving a faint residual.
func (h *Handle) SetVolume(level float64) {
	if h.closed {
		return
	}
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	speaker.Lock()
	h.volume.Silent = level <= 0
	h.volume.Volume = levelToVolume(level)
	speaker.Unlock()
}

func (h *Handle) IsPlaying() bool {
	if h.closed {
		return false
	}
	speaker.Lock()
	paused := h.ctrl.Paused
	speaker.Unlock()
	return !paused && !h.ended.Load()
}

func (h *Handle) AtEnd() bool {
	if h.closed {
		return true
	}
	if h.ended.Load() {
		return true
	}
	speaker.Lock()
	atEnd := h.streamer.Position() >= h.streamer.Len()
	speaker.Unlock()
	return atEnd
}

func (h *Handle) TakeEnded() bool {
	return h.ended.Swap(false)
}

func (h *Handle) Position() time.Duration {
	if h.closed {
		return 0
	}
	speaker.Lock()
	pos := h.format.SampleRate.D(h.streamer.Position())
	speaker.Unlock()
	return pos
}

func (h *Handle) Duration() time.Duration {
	if h.closed {
		return 0
	}
	return h.format.SampleRate.D(h.streamer.Len())
}

// Close releases the speaker binding and the underlying file. Closing
// an already-closed handle is a no-op.
func (h *Handle) Close() {
	if h.closed {
		return
	}
	h.closed = true
	speaker.Clear()
	h.streamer.Close()
	h.file.Close()
}
