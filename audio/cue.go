// Package audio synthesizes short cues for simulation events
package audio

import "github.com/lixenwraith/underwell/event"

// Cue identifies a sound played in response to a simulation event
type Cue int

const (
	CueNone Cue = iota
	CueLaser
	CueShock
	CueBlast
	CueBreak
	CueProduce
	CueLoss
	CueGameOver
)

var cueNames = [...]string{
	CueNone:     "none",
	CueLaser:    "laser",
	CueShock:    "shock",
	CueBlast:    "blast",
	CueBreak:    "break",
	CueProduce:  "produce",
	CueLoss:     "loss",
	CueGameOver: "game_over",
}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// CueFor maps an event type to its cue, CueNone for silent events
func CueFor(t event.EventType) Cue {
	switch t {
	case event.EventTurretFired:
		return CueLaser
	case event.EventTrapTriggered:
		return CueShock
	case event.EventBombDetonated:
		return CueBlast
	case event.EventBlockDestroyed:
		return CueBreak
	case event.EventEverstoneProduced:
		return CueProduce
	case event.EventEverstoneLost, event.EventResonatorDestroyed:
		return CueLoss
	case event.EventGameOver:
		return CueGameOver
	}
	return CueNone
}
