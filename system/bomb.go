package system

import (
	"sync/atomic"

	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
	"github.com/lixenwraith/underwell/vmath"
)

// BombSystem counts down bomb fuses and resolves blasts
// Each bomb detonates exactly once and is removed in the same tick
type BombSystem struct {
	world *engine.World

	statDetonations *atomic.Int64
	statDestroyed   *atomic.Int64
}

// NewBombSystem creates a new bomb system
func NewBombSystem(world *engine.World) engine.System {
	s := &BombSystem{
		world:           world,
		statDetonations: world.Status.Ints.Get("bomb.detonations"),
		statDestroyed:   world.Status.Ints.Get("block.destroyed"),
	}
	s.Init()
	return s
}

func (s *BombSystem) Init() {
	s.statDetonations.Store(0)
}

func (s *BombSystem) Name() string {
	return "bomb"
}

func (s *BombSystem) Priority() int {
	return parameter.PriorityBomb
}

func (s *BombSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *BombSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *BombSystem) Update() {
	w := s.world

	for i := len(w.Bombs) - 1; i >= 0; i-- {
		b := w.Bombs[i]
		b.Armed--
		if b.Armed > 0 {
			continue
		}

		s.detonate(b)
		w.Bombs = append(w.Bombs[:i], w.Bombs[i+1:]...)
	}
}

func (s *BombSystem) detonate(b *component.Bomb) {
	w := s.world

	for _, m := range w.Monsters {
		if vmath.Dist(b.X, b.Y, m.X, m.Y) < parameter.BombMonsterRadius {
			m.HP -= parameter.BombMonsterDamage
		}
	}

	for j := len(w.Blocks) - 1; j >= 0; j-- {
		blk := w.Blocks[j]
		if blk.Indestructible() {
			continue
		}
		cx, cy := blk.Center()
		if vmath.Dist(b.X, b.Y, cx, cy) >= parameter.BombStructureRadius {
			continue
		}
		if blk.Damage(parameter.BombBlockDamage) {
			w.Blocks = append(w.Blocks[:j], w.Blocks[j+1:]...)
			s.statDestroyed.Add(1)
			w.PushEvent(event.EventBlockDestroyed, &event.PositionPayload{X: cx, Y: cy})
		}
	}

	for _, r := range w.Resonators {
		if vmath.Dist(b.X, b.Y, r.X, r.Y) >= parameter.BombStructureRadius {
			continue
		}
		if r.Damage(parameter.BombResonatorDamage) {
			w.PushEvent(event.EventResonatorDestroyed, &event.ResonatorPayload{ResonatorID: r.ID})
		}
	}

	for _, st := range w.Everstones {
		if vmath.Dist(b.X, b.Y, st.X, st.Y) < parameter.BombStructureRadius {
			st.HP -= parameter.BombEverstoneDamage
		}
	}

	s.statDetonations.Add(1)
	w.PushEvent(event.EventBombDetonated, &event.PositionPayload{X: b.X, Y: b.Y})
}
