package audio

import (
	"testing"

	"github.com/lixenwraith/underwell/event"
)

// TestSoundManagerGracefulDegradation verifies playback is a no-op before initialization
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(CueBlast)
	sm.HandleEvent(event.GameEvent{Type: event.EventGameOver})
	sm.SetMuted(true)
	sm.Cleanup()

	if !sm.Muted() {
		t.Error("mute flag not stored")
	}
}

// TestNewSoundManagerClampsVolume verifies out-of-range master volume is clamped
func TestNewSoundManagerClampsVolume(t *testing.T) {
	if sm := NewSoundManager(3); sm.master != 1 {
		t.Errorf("expected master 1, got %f", sm.master)
	}
	if sm := NewSoundManager(-1); sm.master != 0 {
		t.Errorf("expected master 0, got %f", sm.master)
	}
}

// TestCueFor verifies the event to cue mapping
func TestCueFor(t *testing.T) {
	tests := []struct {
		ev   event.EventType
		want Cue
	}{
		{event.EventTurretFired, CueLaser},
		{event.EventTrapTriggered, CueShock},
		{event.EventBombDetonated, CueBlast},
		{event.EventBlockDestroyed, CueBreak},
		{event.EventEverstoneProduced, CueProduce},
		{event.EventEverstoneLost, CueLoss},
		{event.EventResonatorDestroyed, CueLoss},
		{event.EventGameOver, CueGameOver},
		{event.EventMonsterSpawned, CueNone},
		{event.EventGameReset, CueNone},
	}

	for _, tt := range tests {
		if got := CueFor(tt.ev); got != tt.want {
			t.Errorf("CueFor(%s) = %s, want %s", tt.ev, got, tt.want)
		}
	}
}
