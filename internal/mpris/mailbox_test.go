package mpris

import (
	"sync"
	"testing"
	"time"

	"github.com/avickers/tapedeck/internal/playback"
)

func TestBridge_TakeClearsFlag(t *testing.T) {
	b := NewBridge()
	b.RequestPlayPause()
	if !b.TakePlayPause() {
		t.Fatal("TakePlayPause() = false after request")
	}
	if b.TakePlayPause() {
		t.Error("TakePlayPause() = true on second take")
	}
}

func TestBridge_FlagsAreIndependent(t *testing.T) {
	b := NewBridge()
	b.RequestNext()
	if b.TakePlayPause() || b.TakeStop() {
		t.Error("unrelated flags set by RequestNext")
	}
	if !b.TakeNext() {
		t.Error("TakeNext() = false after request")
	}
}

func TestBridge_RepeatedRequestsCoalesce(t *testing.T) {
	b := NewBridge()
	b.RequestNext()
	b.RequestNext()
	if !b.TakeNext() {
		t.Fatal("TakeNext() = false after requests")
	}
	if b.TakeNext() {
		t.Error("repeated requests should coalesce into one")
	}
}

func TestBridge_StatusRoundTrip(t *testing.T) {
	b := NewBridge()
	if st := b.CurrentStatus(); st.HasTracks() || st.Playing {
		t.Fatalf("fresh bridge status = %+v, want zero", st)
	}

	b.PublishStatus(playback.Status{Playing: true, Count: 3, Position: 2 * time.Second})
	st := b.CurrentStatus()
	if !st.Playing || st.Count != 3 || st.Position != 2*time.Second {
		t.Errorf("CurrentStatus() = %+v", st)
	}

	b.PublishStatus(playback.Status{Count: 3})
	if b.CurrentStatus().Playing {
		t.Error("republish did not replace the snapshot")
	}
}

func TestBridge_ConcurrentAccess(t *testing.T) {
	b := NewBridge()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.RequestPlayPause()
				b.RequestNext()
				b.PublishStatus(playback.Status{Count: j})
				_ = b.CurrentStatus()
				b.TakePlayPause()
				b.TakeNext()
				b.TakeStop()
			}
		}()
	}
	wg.Wait()
}
