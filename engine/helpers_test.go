package engine

import (
	"github.com/lixenwraith/underwell/event"
)

func newTestWorld(seed int64) *World {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.ScoreFile = ""
	return NewWorld(cfg, nil)
}

// probeSystem records updates and routed events
type probeSystem struct {
	name     string
	priority int
	updates  int
	events   []event.EventType
	onUpdate func(p *probeSystem)
	resets   int
}

func (p *probeSystem) Init()         {}
func (p *probeSystem) Name() string  { return p.name }
func (p *probeSystem) Priority() int { return p.priority }

func (p *probeSystem) Update() {
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate(p)
	}
}

func (p *probeSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset, event.EventMonsterSpawned}
}

func (p *probeSystem) HandleEvent(ev event.GameEvent) {
	p.events = append(p.events, ev.Type)
	if ev.Type == event.EventGameReset {
		p.resets++
	}
}
