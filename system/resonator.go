package system

import (
	"sync/atomic"

	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
)

// ResonatorSystem runs the production cycle of every alive resonator
// A resonator's timer only runs while it has no live everstone outstanding
type ResonatorSystem struct {
	world *engine.World

	statProduced *atomic.Int64
	statAlive    *atomic.Int64
}

// NewResonatorSystem creates a new resonator system
func NewResonatorSystem(world *engine.World) engine.System {
	s := &ResonatorSystem{
		world:        world,
		statProduced: world.Status.Ints.Get("everstone.produced"),
		statAlive:    world.Status.Ints.Get("resonator.alive"),
	}
	s.Init()
	return s
}

func (s *ResonatorSystem) Init() {
	s.statProduced.Store(0)
	s.statAlive.Store(parameter.ResonatorCount)
}

func (s *ResonatorSystem) Name() string {
	return "resonator"
}

func (s *ResonatorSystem) Priority() int {
	return parameter.PriorityResonator
}

func (s *ResonatorSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ResonatorSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ResonatorSystem) Update() {
	w := s.world
	alive := 0

	for _, r := range w.Resonators {
		if !r.Alive {
			continue
		}
		alive++

		if w.LiveEverstone(r.ID) != nil {
			continue
		}

		r.ProduceTimer -= parameter.TickDelta
		if r.ProduceTimer > 0 {
			continue
		}
		s.produce(r)
	}

	s.statAlive.Store(int64(alive))
}

func (s *ResonatorSystem) produce(r *component.Resonator) {
	stone := &component.Everstone{
		X:           r.X,
		Y:           r.Y + parameter.EverstoneOffsetY,
		Radius:      parameter.EverstoneRadius,
		HP:          parameter.EverstoneHP,
		ResonatorID: r.ID,
	}
	if err := s.world.AddEverstone(stone); err != nil {
		return
	}

	r.ProducedCount++
	r.ProduceTimer = r.ProduceCooldown

	s.statProduced.Add(1)
	s.world.PushEvent(event.EventEverstoneProduced, &event.ProductionPayload{
		ResonatorID: r.ID,
		Produced:    r.ProducedCount,
	})
}
