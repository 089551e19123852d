package system

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
)

// SpawnSystem releases monsters at the pit edges on a shrinking interval
type SpawnSystem struct {
	world *engine.World

	statSpawned *atomic.Int64
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world:       world,
		statSpawned: world.Status.Ints.Get("monster.spawned"),
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.statSpawned.Store(0)
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *SpawnSystem) Update() {
	w := s.world
	w.SpawnTimer -= parameter.TickDelta
	if w.SpawnTimer > 0 {
		return
	}

	w.SpawnTimer = NextSpawnInterval(w.Time, w.Rand)
	s.spawn()
}

// NextSpawnInterval returns the delay until the next spawn for the given survival time
// The base interval loses one unit per ramp period down to the floor, then jitters by ±30%
func NextSpawnInterval(elapsed float64, rng *rand.Rand) float64 {
	base := math.Max(parameter.SpawnBaseInterval-math.Floor(elapsed/parameter.SpawnRampPeriod), parameter.SpawnMinInterval)
	return base * (rng.Float64()*parameter.SpawnJitterRange + parameter.SpawnJitterMin)
}

func (s *SpawnSystem) spawn() {
	w := s.world

	x := float64(parameter.MonsterSpawnEdgeInset)
	if w.Rand.Float64() >= 0.5 {
		x = w.Width() - parameter.MonsterSpawnEdgeInset
	}
	y := parameter.MonsterSpawnTop + w.Rand.Float64()*(w.Height()/3)

	w.Monsters = append(w.Monsters, &component.Monster{
		X:  x,
		Y:  y,
		HP: parameter.MonsterInitialHP,
	})

	s.statSpawned.Add(1)
	w.PushEvent(event.EventMonsterSpawned, &event.PositionPayload{X: x, Y: y})
}
