package system

import (
	"sync/atomic"

	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
	"github.com/lixenwraith/underwell/vmath"
)

// MonsterSystem removes dead monsters and runs targeting, steering, contact damage and digging for the rest
//
// Per monster and tick:
//  1. Stunned monsters count down and stand still
//  2. Target the nearest live everstone, else the nearest alive resonator
//  3. Without a target drift toward the world center
//  4. With a target steer toward it, faster as health drops, with rare lateral jitter
//  5. Damage the target on contact
//  6. Dig the destructible block directly ahead
//
// Position integrates velocity afterwards and is clamped to the playable band
type MonsterSystem struct {
	world *engine.World

	statCount     *atomic.Int64
	statKilled    *atomic.Int64
	statDestroyed *atomic.Int64
}

// NewMonsterSystem creates a new monster system
func NewMonsterSystem(world *engine.World) engine.System {
	s := &MonsterSystem{
		world:         world,
		statCount:     world.Status.Ints.Get("monster.count"),
		statKilled:    world.Status.Ints.Get("monster.killed"),
		statDestroyed: world.Status.Ints.Get("block.destroyed"),
	}
	s.Init()
	return s
}

func (s *MonsterSystem) Init() {
	s.statCount.Store(0)
	s.statKilled.Store(0)
	s.statDestroyed.Store(0)
}

func (s *MonsterSystem) Name() string {
	return "monster"
}

func (s *MonsterSystem) Priority() int {
	return parameter.PriorityMonster
}

func (s *MonsterSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *MonsterSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update iterates in reverse so removal does not skip entries
func (s *MonsterSystem) Update() {
	w := s.world
	minX, maxX := float64(parameter.BoundsMarginX), w.Width()-parameter.BoundsMarginX
	minY, maxY := float64(parameter.BoundsTop), w.Height()-parameter.BoundsBottom

	for i := len(w.Monsters) - 1; i >= 0; i-- {
		m := w.Monsters[i]
		if m.Dead() {
			w.Monsters = append(w.Monsters[:i], w.Monsters[i+1:]...)
			s.statKilled.Add(1)
			w.PushEvent(event.EventMonsterKilled, &event.PositionPayload{X: m.X, Y: m.Y})
			continue
		}

		s.think(m)

		m.X = vmath.Clamp(m.X+m.VX, minX, maxX)
		m.Y = vmath.Clamp(m.Y+m.VY, minY, maxY)
	}

	s.statCount.Store(int64(len(w.Monsters)))
}

func (s *MonsterSystem) think(m *component.Monster) {
	if m.Stunned > 0 {
		m.Stunned--
		m.VX, m.VY = 0, 0
		return
	}

	w := s.world
	if stone, _ := nearestLiveEverstone(w.Everstones, m.X, m.Y); stone != nil {
		d := s.steer(m, stone.X, stone.Y)
		if d < stone.Radius+parameter.StoneContactMargin {
			stone.HP -= parameter.StoneContactDamage
		}
	} else if res, _ := nearestAliveResonator(w.Resonators, m.X, m.Y); res != nil {
		d := s.steer(m, res.X, res.Y)
		if d < parameter.ResonatorContactRange {
			s.hitResonator(res)
		}
	} else {
		cx, cy := w.Center()
		ux, uy, _ := vmath.Direction(m.X, m.Y, cx, cy)
		m.VX += ux * parameter.WanderAccelX
		m.VY += uy * parameter.WanderAccelY
	}

	s.dig(m)
}

// steer accelerates m toward the target and returns the distance to it
func (s *MonsterSystem) steer(m *component.Monster, tx, ty float64) float64 {
	ux, uy, d := vmath.Direction(m.X, m.Y, tx, ty)

	rng := s.world.Rand
	if rng.Float64() < parameter.PerturbChance {
		m.VX += (rng.Float64() - 0.5) * parameter.PerturbScale
	}

	speed := SteerSpeed(m.HP)
	m.VX += ux * parameter.SteerAccelX * speed
	m.VY += uy * parameter.SteerAccelY * speed
	m.VX = vmath.Clamp(m.VX, -parameter.MaxVelocityX, parameter.MaxVelocityX)
	m.VY = vmath.Clamp(m.VY, -parameter.MaxVelocityY, parameter.MaxVelocityY)

	return d
}

// SteerSpeed returns the steering factor for the given health, wounded monsters press harder
func SteerSpeed(hp float64) float64 {
	return parameter.SteerSpeedBase + (parameter.MonsterInitialHP-hp)/parameter.MonsterInitialHP
}

func (s *MonsterSystem) hitResonator(r *component.Resonator) {
	r.HP -= parameter.ResonatorContactDamage
	if r.HP > 0 {
		return
	}
	r.HP = 0
	if r.Alive {
		r.Alive = false
		s.world.PushEvent(event.EventResonatorDestroyed, &event.ResonatorPayload{ResonatorID: r.ID})
	}
}

// dig probes ahead in the horizontal heading; a destructible block there holds the monster in place
func (s *MonsterSystem) dig(m *component.Monster) {
	w := s.world

	probeX := m.X + vmath.Sign(m.VX)*parameter.DigProbeDistance
	b := w.BlockAt(probeX, m.Y)
	if b == nil || b.Indestructible() {
		return
	}

	m.Progress++
	if m.Progress > parameter.DigThreshold {
		m.Progress = 0
		if b.Damage(parameter.DigDamage) {
			cx, cy := b.Center()
			w.RemoveBlock(b)
			s.statDestroyed.Add(1)
			w.PushEvent(event.EventBlockDestroyed, &event.PositionPayload{X: cx, Y: cy})
		}
	}
	m.VX = 0
}
