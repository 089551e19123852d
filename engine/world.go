package engine

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
	"github.com/lixenwraith/underwell/status"
	"github.com/lixenwraith/underwell/vmath"
)

var (
	// ErrEverstoneOutstanding rejects production while the owner still has a live stone
	ErrEverstoneOutstanding = errors.New("resonator already has a live everstone")

	// ErrUnknownResonator rejects an everstone whose owner is not in the world
	ErrUnknownResonator = errors.New("unknown resonator")
)

// ScoreKeeper persists the survival high score across sessions
type ScoreKeeper interface {
	// Best returns the stored high score, zero when none
	Best() float64

	// Record stores every finished run, the best only moves when beaten
	Record(survived float64) error
}

// World owns every simulation collection and scalar
// All mutation happens on the tick owner under RunSafe; commands run between ticks
type World struct {
	updateMutex sync.Mutex

	Config Config
	Rand   *rand.Rand
	Clock  TimeProvider
	Status *status.Registry
	Scores ScoreKeeper

	Blocks     []*component.Block
	Turrets    []*component.Turret
	Traps      []*component.Trap
	Bombs      []*component.Bomb
	Conveyors  []*component.Conveyor
	Monsters   []*component.Monster
	Resonators []*component.Resonator
	Everstones []*component.Everstone

	Running bool

	// Time is elapsed survival time in time units
	Time float64

	// High is the best survival time, loaded from Scores
	High float64

	// ProductionStartedAt is set once by the first Start, zero until then
	ProductionStartedAt time.Time

	// SpawnTimer counts down to the next monster spawn
	SpawnTimer float64

	// Tick counts steps since the last reset
	Tick uint64

	systems []System
	queue   *event.EventQueue
	router  *event.Router

	statTicks   *atomic.Int64
	statTime    *status.AtomicFloat
	statRunning *atomic.Bool
	statEvicted *atomic.Int64
}

// NewWorld creates a world with an initialized level
// A nil ScoreKeeper keeps the high score in memory only
func NewWorld(cfg Config, scores ScoreKeeper) *World {
	if scores == nil {
		scores = &memoryScores{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	queue := event.NewEventQueue()
	reg := status.NewRegistry()

	w := &World{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(seed)),
		Clock:  NewTimeProvider(),
		Status: reg,
		Scores: scores,
		High:   scores.Best(),
		queue:  queue,
		router: event.NewRouter(queue),

		statTicks:   reg.Ints.Get("engine.ticks"),
		statTime:    reg.Floats.Get("engine.time"),
		statRunning: reg.Bools.Get("engine.running"),
		statEvicted: reg.Ints.Get("engine.evicted_events"),
	}

	w.InitLevel()
	return w
}

// Width returns the world width
func (w *World) Width() float64 {
	return w.Config.Width
}

// Height returns the world height
func (w *World) Height() float64 {
	return w.Config.Height
}

// Center returns the world midpoint, the wander target of monsters without a target
func (w *World) Center() (float64, float64) {
	return w.Config.Width / 2, w.Config.Height / 2
}

// InitLevel rebuilds walls, the central platform and both resonators
// Every collection and scalar except High is reset
func (w *World) InitLevel() {
	w.Blocks = nil
	w.Turrets = nil
	w.Traps = nil
	w.Bombs = nil
	w.Conveyors = nil
	w.Monsters = nil
	w.Resonators = nil
	w.Everstones = nil

	w.Time = 0
	w.Running = false
	w.ProductionStartedAt = time.Time{}
	w.SpawnTimer = parameter.SpawnInitialDelay
	w.Tick = 0

	width, height := w.Config.Width, w.Config.Height
	wall := float64(parameter.IndestructibleHealth)

	w.Blocks = append(w.Blocks,
		&component.Block{X: 0, Y: height - parameter.GroundHeight, W: width, H: parameter.GroundHeight, Health: wall},
		&component.Block{X: 0, Y: 0, W: parameter.TunnelWidth, H: height - parameter.TunnelGap, Health: wall},
		&component.Block{X: width - parameter.TunnelWidth, Y: 0, W: parameter.TunnelWidth, H: height - parameter.TunnelGap, Health: wall},
		&component.Block{X: 0, Y: 0, W: width, H: parameter.TopWallHeight, Health: wall},
	)

	cx, cy := width/2, height/2+parameter.CenterOffsetY
	w.Blocks = append(w.Blocks,
		&component.Block{
			X: cx - parameter.PlatformHalfWidth, Y: cy - parameter.PlatformHeight/2,
			W: parameter.PlatformWidth, H: parameter.PlatformHeight, Health: parameter.PlatformHealth,
		},
		&component.Block{
			X: cx - parameter.LedgeOffsetX, Y: cy + parameter.LedgeOffsetY,
			W: parameter.LedgeWidth, H: parameter.LedgeHeight, Health: parameter.LedgeHealth,
		},
		&component.Block{
			X: cx + parameter.PlatformHalfWidth, Y: cy + parameter.LedgeOffsetY,
			W: parameter.LedgeWidth, H: parameter.LedgeHeight, Health: parameter.LedgeHealth,
		},
	)

	offsets := [parameter.ResonatorCount]float64{-parameter.ResonatorOffsetX, parameter.ResonatorOffsetX}
	for id := 0; id < parameter.ResonatorCount; id++ {
		w.Resonators = append(w.Resonators, &component.Resonator{
			ID:              id,
			X:               cx + offsets[id],
			Y:               cy + parameter.ResonatorOffsetY,
			HP:              parameter.ResonatorInitialHP,
			Alive:           true,
			ProduceCooldown: parameter.ResonatorProduceCooldown,
			ProduceTimer:    parameter.ResonatorInitialTimerBase[id] + w.Rand.Float64()*parameter.ResonatorInitialTimerSpread[id],
		})
	}

	w.statTime.Set(0)
	w.statRunning.Store(false)
}

// AddSystem registers a system in priority order
// Systems implementing event.Handler also receive routed events
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})

	if h, ok := s.(event.Handler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Subscribe attaches a listener receiving every routed event
// Listeners run on the tick owner with the world lock held and must not call RunSafe
func (w *World) Subscribe(l event.Listener) {
	w.router.Subscribe(l)
}

// PushEvent queues an event stamped with the current tick
func (w *World) PushEvent(t event.EventType, payload any) {
	w.queue.Push(event.GameEvent{Type: t, Payload: payload, Tick: w.Tick})
}

// Flush routes pending events, returns the count dispatched
func (w *World) Flush() int {
	w.statEvicted.Store(int64(w.queue.Dropped()))
	return w.router.DispatchAll()
}

// RunSafe executes fn while holding the world update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Step advances one fixed tick when running, then routes the tick's events
// Returns false without touching state when not running
func (w *World) Step() bool {
	if !w.Running {
		return false
	}

	for _, s := range w.systems {
		s.Update()
	}
	w.Tick++

	w.statTicks.Add(1)
	w.statTime.Set(w.Time)
	w.statRunning.Store(w.Running)

	w.Flush()
	return true
}

// Reset reinitializes the level and notifies systems
func (w *World) Reset() {
	w.InitLevel()
	w.PushEvent(event.EventGameReset, nil)
	w.Flush()
}

// === Queries ===

// BlockAt returns the topmost block containing the point, last placed wins
func (w *World) BlockAt(x, y float64) *component.Block {
	for i := len(w.Blocks) - 1; i >= 0; i-- {
		if w.Blocks[i].Contains(x, y) {
			return w.Blocks[i]
		}
	}
	return nil
}

// RemoveBlock deletes b from the collection, reports whether it was present
func (w *World) RemoveBlock(b *component.Block) bool {
	for i, candidate := range w.Blocks {
		if candidate == b {
			w.Blocks = append(w.Blocks[:i], w.Blocks[i+1:]...)
			return true
		}
	}
	return false
}

// NearestBlock returns the block whose center is nearest to the point within radius
func (w *World) NearestBlock(x, y, radius float64) *component.Block {
	var best *component.Block
	bestDist := radius
	for _, b := range w.Blocks {
		cx, cy := b.Center()
		if d := vmath.Dist(x, y, cx, cy); d < bestDist {
			bestDist = d
			best = b
		}
	}
	return best
}

// NearestAliveResonator returns the closest alive resonator within radius
func (w *World) NearestAliveResonator(x, y, radius float64) *component.Resonator {
	var best *component.Resonator
	bestDist := radius
	for _, r := range w.Resonators {
		if !r.Alive {
			continue
		}
		if d := vmath.Dist(x, y, r.X, r.Y); d < bestDist {
			bestDist = d
			best = r
		}
	}
	return best
}

// Resonator returns the resonator with the given id
func (w *World) Resonator(id int) (*component.Resonator, bool) {
	for _, r := range w.Resonators {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// AnyResonatorAlive reports whether at least one resonator is alive
func (w *World) AnyResonatorAlive() bool {
	for _, r := range w.Resonators {
		if r.Alive {
			return true
		}
	}
	return false
}

// LiveEverstone returns the owner's outstanding everstone, if any
func (w *World) LiveEverstone(resonatorID int) *component.Everstone {
	for _, s := range w.Everstones {
		if s.ResonatorID == resonatorID && s.Live() {
			return s
		}
	}
	return nil
}

// AddEverstone inserts a stone after validating its owner relation
// At most one live everstone per resonator is allowed
func (w *World) AddEverstone(s *component.Everstone) error {
	if _, ok := w.Resonator(s.ResonatorID); !ok {
		return ErrUnknownResonator
	}
	if w.LiveEverstone(s.ResonatorID) != nil {
		return ErrEverstoneOutstanding
	}
	w.Everstones = append(w.Everstones, s)
	return nil
}

// SweepDegenerate removes blocks with a side at or below the degenerate size
func (w *World) SweepDegenerate() int {
	kept := w.Blocks[:0]
	removed := 0
	for _, b := range w.Blocks {
		if b.W > parameter.DegenerateBlockSize && b.H > parameter.DegenerateBlockSize {
			kept = append(kept, b)
		} else {
			removed++
		}
	}
	for i := len(kept); i < len(w.Blocks); i++ {
		w.Blocks[i] = nil
	}
	w.Blocks = kept
	return removed
}

// ClearPlaced removes every player structure and all monsters
// Walls, resonators and everstones are preserved
func (w *World) ClearPlaced() {
	walls := w.Blocks[:0]
	for _, b := range w.Blocks {
		if b.Indestructible() {
			walls = append(walls, b)
		}
	}
	for i := len(walls); i < len(w.Blocks); i++ {
		w.Blocks[i] = nil
	}
	w.Blocks = walls
	w.Turrets = nil
	w.Traps = nil
	w.Bombs = nil
	w.Conveyors = nil
	w.Monsters = nil
}

// memoryScores keeps the high score for worlds without persistence
type memoryScores struct {
	best float64
}

func (m *memoryScores) Best() float64 {
	return m.best
}

func (m *memoryScores) Record(survived float64) error {
	if survived > m.best {
		m.best = survived
	}
	return nil
}
