package player

import (
	"sync/atomic"
	"time"
)

// MockOpener is a scriptable Opener for tests.
type MockOpener struct {
	openErr   map[string]error
	openCalls []string
	sounds    []*MockSound
}

func NewMockOpener() *MockOpener {
	return &MockOpener{openErr: make(map[string]error)}
}

func (m *MockOpener) Open(path string) (Sound, error) {
	m.openCalls = append(m.openCalls, path)
	if err := m.openErr[path]; err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	s := &MockSound{path: path, duration: 3 * time.Minute}
	m.sounds = append(m.sounds, s)
	return s, nil
}

// Test helpers

// FailOpen makes Open fail for path until cleared with a nil err.
func (m *MockOpener) FailOpen(path string, err error) {
	m.openErr[path] = err
}

func (m *MockOpener) OpenCalls() []string { return m.openCalls }

func (m *MockOpener) Sounds() []*MockSound { return m.sounds }

// Last returns the most recently opened sound, or nil.
func (m *MockOpener) Last() *MockSound {
	if len(m.sounds) == 0 {
		return nil
	}
	return m.sounds[len(m.sounds)-1]
}

// MockSound records handle calls for assertions.
type MockSound struct {
	path     string
	playing  bool
	closed   bool
	atEnd    bool
	level    float64
	position time.Duration
	duration time.Duration
	ended    atomic.Bool

	startCalls int
	stopCalls  int
	closeCalls int
}

func (s *MockSound) Start() {
	s.startCalls++
	if s.closed {
		return
	}
	s.playing = true
}

func (s *MockSound) Stop() {
	s.stopCalls++
	if s.closed {
		return
	}
	s.playing = false
}

func (s *MockSound) SetVolume(level float64) { s.level = level }

func (s *MockSound) IsPlaying() bool { return s.playing && !s.closed }

func (s *MockSound) AtEnd() bool { return s.atEnd || s.ended.Load() }

func (s *MockSound) TakeEnded() bool { return s.ended.Swap(false) }

func (s *MockSound) Position() time.Duration { return s.position }

func (s *MockSound) Duration() time.Duration { return s.duration }

func (s *MockSound) Close() {
	s.closeCalls++
	s.closed = true
	s.playing = false
}

// Test helpers

func (s *MockSound) Path() string { return s.path }

func (s *MockSound) Closed() bool { return s.closed }

func (s *MockSound) Level() float64 { return s.level }

func (s *MockSound) StartCalls() int { return s.startCalls }

func (s *MockSound) StopCalls() int { return s.stopCalls }

func (s *MockSound) CloseCalls() int { return s.closeCalls }

func (s *MockSound) SetAtEnd(atEnd bool) { s.atEnd = atEnd }

func (s *MockSound) SetPosition(d time.Duration) { s.position = d }

func (s *MockSound) SetDuration(d time.Duration) { s.duration = d }

// SimulateFinished flags the end of the stream the way the engine
// goroutine would.
func (s *MockSound) SimulateFinished() {
	s.ended.Store(true)
}

// Verify the mocks implement the contracts at compile time.
var (
	_ Sound  = (*MockSound)(nil)
	_ Opener = (*MockOpener)(nil)
)
