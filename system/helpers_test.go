package system

import (
	"math/rand"

	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
)

// midSource makes every Float64 draw return 0.5, so no random perturbation fires
type midSource struct{}

func (midSource) Int63() int64 { return 1 << 62 }
func (midSource) Seed(int64)   {}

func newTestWorld(seed int64) *engine.World {
	cfg := engine.DefaultConfig()
	cfg.Seed = seed
	cfg.ScoreFile = ""
	return engine.NewWorld(cfg, nil)
}

// newCalmWorld returns a world whose RNG never perturbs monsters
func newCalmWorld() *engine.World {
	w := newTestWorld(1)
	w.Rand = rand.New(midSource{})
	return w
}

// newFullWorld installs every simulation system in the production order
func newFullWorld(seed int64, scores engine.ScoreKeeper) *engine.World {
	cfg := engine.DefaultConfig()
	cfg.Seed = seed
	cfg.ScoreFile = ""
	w := engine.NewWorld(cfg, scores)
	for _, f := range []func(*engine.World) engine.System{
		NewSpawnSystem,
		NewTimeKeeperSystem,
		NewResonatorSystem,
		NewTurretSystem,
		NewTrapSystem,
		NewBombSystem,
		NewMonsterSystem,
		NewCleanupSystem,
		NewGameOverSystem,
	} {
		w.AddSystem(f(w))
	}
	return w
}

// countEvents subscribes a counter for one event type
func countEvents(w *engine.World, t event.EventType) *int {
	n := new(int)
	w.Subscribe(func(ev event.GameEvent) {
		if ev.Type == t {
			*n++
		}
	})
	return n
}

func stepN(w *engine.World, n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

// recordingScores is a ScoreKeeper capturing Record calls
type recordingScores struct {
	best     float64
	recorded []float64
	err      error
}

func (r *recordingScores) Best() float64 { return r.best }

func (r *recordingScores) Record(survived float64) error {
	r.recorded = append(r.recorded, survived)
	if r.err == nil && survived > r.best {
		r.best = survived
	}
	return r.err
}
