package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Impact speed (world units/sec) mapped to full blip intensity
	fullIntensitySpeed = 10.0
)

// SoundManager owns the speaker and mixes collision blips. All methods are
// safe to call before Initialize or after a failed Initialize: they
// degrade to silence rather than erroring
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager; call Initialize to open the
// speaker
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer. Safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep has no speaker close; clearing the
// mixer prevents trailing artifacts
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles blip playback without touching the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayImpact queues one collision blip. speed is the impact's relative
// speed along the contact normal; faster hits sound sharper and louder
func (sm *SoundManager) PlayImpact(speed float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	if speed < 0 {
		speed = -speed
	}
	intensity := speed / fullIntensitySpeed

	speaker.Lock()
	sm.mixer.Add(NewImpactGenerator(sampleRate, intensity))
	speaker.Unlock()
}
