package system

import (
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
)

// CleanupSystem prunes spent everstones and settles resonator death after all damage sources ran
type CleanupSystem struct {
	world *engine.World
}

// NewCleanupSystem creates a new cleanup system
func NewCleanupSystem(world *engine.World) engine.System {
	s := &CleanupSystem{world: world}
	s.Init()
	return s
}

func (s *CleanupSystem) Init() {}

func (s *CleanupSystem) Name() string {
	return "cleanup"
}

func (s *CleanupSystem) Priority() int {
	return parameter.PriorityCleanup
}

func (s *CleanupSystem) Update() {
	w := s.world

	for i := len(w.Everstones) - 1; i >= 0; i-- {
		st := w.Everstones[i]
		if st.Live() {
			continue
		}
		w.Everstones = append(w.Everstones[:i], w.Everstones[i+1:]...)
		w.PushEvent(event.EventEverstoneLost, &event.ProductionPayload{ResonatorID: st.ResonatorID})
	}

	for _, r := range w.Resonators {
		if r.Alive && r.HP <= 0 {
			r.Alive = false
			w.PushEvent(event.EventResonatorDestroyed, &event.ResonatorPayload{ResonatorID: r.ID})
		}
	}
}
