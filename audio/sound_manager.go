package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lyric-term/constants"
)

const sampleRate = beep.SampleRate(constants.CueSampleRate)

// SoundManager plays the short click marking a new lyric line
// All cues go through one mixer handed to the speaker at Initialize
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.CueDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayCue queues one line-change click; no-op before Initialize
func (sm *SoundManager) PlayCue() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	cue, err := CueStreamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// CueStreamer builds a finite, attenuated sine click
func CueStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, constants.CueFrequency)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(constants.CueDuration), tone),
		Base:     2,
		Volume:   constants.CueVolume,
	}, nil
}
