package manifest

import (
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/system"
)

// SystemFactory creates a system bound to a world
type SystemFactory func(w *engine.World) engine.System

// entry pairs a registry name with its factory
type entry struct {
	name    string
	factory SystemFactory
}

// systems lists every simulation stage, run order comes from each system's priority
var systems = []entry{
	{"spawn", system.NewSpawnSystem},
	{"timekeeper", system.NewTimeKeeperSystem},
	{"resonator", system.NewResonatorSystem},
	{"turret", system.NewTurretSystem},
	{"trap", system.NewTrapSystem},
	{"bomb", system.NewBombSystem},
	{"monster", system.NewMonsterSystem},
	{"cleanup", system.NewCleanupSystem},
	{"gameover", system.NewGameOverSystem},
}

// ActiveSystems returns registered system names in declaration order
func ActiveSystems() []string {
	names := make([]string, len(systems))
	for i, e := range systems {
		names[i] = e.name
	}
	return names
}

// RegisterSystems installs every system on the world
func RegisterSystems(w *engine.World) {
	for _, e := range systems {
		w.AddSystem(e.factory(w))
	}
}

// NewGame creates a world with the full system set installed
func NewGame(cfg engine.Config, scores engine.ScoreKeeper) *engine.World {
	w := engine.NewWorld(cfg, scores)
	RegisterSystems(w)
	return w
}
