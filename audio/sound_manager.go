package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/underwell/event"
)

const (
	sampleRate = beep.SampleRate(48000)

	// maxVoices bounds simultaneous cues, bursts of turret fire drop the excess
	maxVoices = 12
)

// SoundManager plays event cues through the speaker
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume in [0, 1]
func NewSoundManager(master float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		master: min(max(master, 0), 1),
	}
}

// Initialize opens the speaker, failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues
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

// SetMuted toggles output without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := CreateCue(c, sampleRate, sm.master)
	if s == nil {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(s)
	}
	speaker.Unlock()
}

// HandleEvent plays the cue mapped to the event, usable as a world listener
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if c := CueFor(ev.Type); c != CueNone {
		sm.Play(c)
	}
}
