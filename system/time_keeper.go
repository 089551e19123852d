package system

import (
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/parameter"
)

// TimeKeeperSystem advances elapsed survival time, one tick per update
type TimeKeeperSystem struct {
	world *engine.World
}

// NewTimeKeeperSystem creates a new timekeeper system
func NewTimeKeeperSystem(world *engine.World) engine.System {
	s := &TimeKeeperSystem{world: world}
	s.Init()
	return s
}

func (s *TimeKeeperSystem) Init() {}

func (s *TimeKeeperSystem) Name() string {
	return "timekeeper"
}

// Priority returns the system's priority (runs right after spawn)
func (s *TimeKeeperSystem) Priority() int {
	return parameter.PriorityTimekeeper
}

func (s *TimeKeeperSystem) Update() {
	s.world.Time += parameter.TickDelta
}
