package mpris

import (
	"sync/atomic"

	"github.com/avickers/tapedeck/internal/playback"
)

// Bridge carries remote-control requests from D-Bus handler goroutines
// to the frame loop. Handlers only flip request flags and read the
// last published snapshot; the frame loop drains the flags and applies
// them against the player on its own side. Repeated requests within
// one frame coalesce.
type Bridge struct {
	playPause atomic.Bool
	next      atomic.Bool
	stop      atomic.Bool
	status    atomic.Pointer[playback.Status]
}

func NewBridge() *Bridge {
	b := &Bridge{}
	b.status.Store(&playback.Status{})
	return b
}

// RequestPlayPause queues a play/pause toggle for the next frame.
func (b *Bridge) RequestPlayPause() { b.playPause.Store(true) }

// RequestNext queues a track skip for the next frame.
func (b *Bridge) RequestNext() { b.next.Store(true) }

// RequestStop queues a pause-if-playing for the next frame. The deck
// has no seek, so stopping and pausing halt output the same way.
func (b *Bridge) RequestStop() { b.stop.Store(true) }

// TakePlayPause reports and clears a pending toggle request.
func (b *Bridge) TakePlayPause() bool { return b.playPause.Swap(false) }

// TakeNext reports and clears a pending skip request.
func (b *Bridge) TakeNext() bool { return b.next.Swap(false) }

// TakeStop reports and clears a pending stop request.
func (b *Bridge) TakeStop() bool { return b.stop.Swap(false) }

// PublishStatus makes the latest snapshot visible to D-Bus handlers.
func (b *Bridge) PublishStatus(st playback.Status) { b.status.Store(&st) }

// CurrentStatus returns the last published snapshot.
func (b *Bridge) CurrentStatus() playback.Status { return *b.status.Load() }
