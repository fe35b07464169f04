package player

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// The speaker runs at a fixed rate; tracks with a different native
// rate are resampled on open.
const sampleRate = beep.SampleRate(44100)

// Engine owns the shared speaker. Create it once at startup; an init
// failure is fatal to the process.
type Engine struct{}

func NewEngine() (*Engine, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Engine{}, nil
}

// Close shuts the speaker down. Any open Handle must be closed first.
func (e *Engine) Close() {
	speaker.Close()
}
