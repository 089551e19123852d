package system

import (
	"sync/atomic"

	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
	"github.com/lixenwraith/underwell/vmath"
)

// TrapSystem stuns monsters near armed traps
// A trap is armed only when its tick cooldown is exactly zero; every monster in
// reach during the trigger tick is stunned before the cooldown restarts
type TrapSystem struct {
	world *engine.World

	statTriggers *atomic.Int64
}

// NewTrapSystem creates a new trap system
func NewTrapSystem(world *engine.World) engine.System {
	s := &TrapSystem{
		world:        world,
		statTriggers: world.Status.Ints.Get("trap.triggers"),
	}
	s.Init()
	return s
}

func (s *TrapSystem) Init() {
	s.statTriggers.Store(0)
}

func (s *TrapSystem) Name() string {
	return "trap"
}

func (s *TrapSystem) Priority() int {
	return parameter.PriorityTrap
}

func (s *TrapSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *TrapSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *TrapSystem) Update() {
	w := s.world

	for _, tr := range w.Traps {
		if tr.Cooldown > 0 {
			tr.Cooldown--
		}
		if !tr.Armed() {
			continue
		}

		reach := tr.Radius + parameter.TrapReachMargin
		stunned := 0
		for _, m := range w.Monsters {
			if vmath.Dist(tr.X, tr.Y, m.X, m.Y) < reach {
				m.Stunned = parameter.TrapStunTicks
				stunned++
			}
		}
		if stunned == 0 {
			continue
		}

		tr.Cooldown = parameter.TrapCooldown
		s.statTriggers.Add(1)
		w.PushEvent(event.EventTrapTriggered, &event.TrapPayload{X: tr.X, Y: tr.Y, Stunned: stunned})
	}
}
