package system

import (
	"sync/atomic"

	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
)

// TurretSystem fires each turret at the nearest monster in range when its cooldown expires
type TurretSystem struct {
	world *engine.World

	statShots *atomic.Int64
}

// NewTurretSystem creates a new turret system
func NewTurretSystem(world *engine.World) engine.System {
	s := &TurretSystem{
		world:     world,
		statShots: world.Status.Ints.Get("turret.shots"),
	}
	s.Init()
	return s
}

func (s *TurretSystem) Init() {
	s.statShots.Store(0)
}

func (s *TurretSystem) Name() string {
	return "turret"
}

func (s *TurretSystem) Priority() int {
	return parameter.PriorityTurret
}

func (s *TurretSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *TurretSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update decrements cooldowns; an idle turret keeps counting down and fires as soon as a target appears
func (s *TurretSystem) Update() {
	w := s.world

	for _, t := range w.Turrets {
		t.Cooldown -= parameter.TickDelta
		if t.Cooldown > 0 {
			continue
		}

		target := nearestMonster(w.Monsters, t.X, t.Y, parameter.TurretRange)
		if target == nil {
			continue
		}

		target.HP -= parameter.TurretDamage

		rate := t.Rate
		if rate <= 0 {
			rate = parameter.TurretRate
		}
		t.Cooldown = 1 / rate

		s.statShots.Add(1)
		w.PushEvent(event.EventTurretFired, &event.PositionPayload{X: target.X, Y: target.Y})
	}
}
