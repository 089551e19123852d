package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/underwell/event"
)

// logEvent records lifecycle events, per-tick combat noise stays in the status registry
func logEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.GameOverPayload:
		log.Printf("tick %d: game over, survived %.1f best %.1f record=%v", ev.Tick, p.Survived, p.Best, p.NewRecord)
		if p.SaveErr != nil {
			log.Printf("run not saved: %v", p.SaveErr)
		}
	case *event.ResonatorPayload:
		log.Printf("tick %d: resonator %d destroyed", ev.Tick, p.ResonatorID)
	case *event.ProductionPayload:
		if ev.Type == event.EventEverstoneProduced {
			log.Printf("tick %d: resonator %d produced everstone #%d", ev.Tick, p.ResonatorID, p.Produced)
		}
	default:
		switch ev.Type {
		case event.EventGameStart, event.EventGameReset:
			log.Printf("tick %d: %s", ev.Tick, ev.Type)
		}
	}
}

// notice returns the short status line shown for an event, empty when none
func notice(ev event.GameEvent) string {
	switch p := ev.Payload.(type) {
	case *event.GameOverPayload:
		msg := fmt.Sprintf("Game over - survived %.1fs", p.Survived)
		if p.NewRecord {
			msg += " (new record)"
		}
		if p.SaveErr != nil {
			msg += " - score not saved"
		}
		return msg
	case *event.ResonatorPayload:
		return fmt.Sprintf("Resonator %d destroyed", p.ResonatorID)
	}
	return ""
}
