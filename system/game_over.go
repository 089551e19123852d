package system

import (
	"sync/atomic"

	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
)

// GameOverSystem detects the loss condition: no resonator alive and no everstone left
// On loss it stops the simulation, raises the high score when beaten and records the run
type GameOverSystem struct {
	world *engine.World

	statGames *atomic.Int64
}

// NewGameOverSystem creates a new game over system
func NewGameOverSystem(world *engine.World) engine.System {
	s := &GameOverSystem{
		world:     world,
		statGames: world.Status.Ints.Get("engine.games_over"),
	}
	s.Init()
	return s
}

func (s *GameOverSystem) Init() {}

func (s *GameOverSystem) Name() string {
	return "gameover"
}

func (s *GameOverSystem) Priority() int {
	return parameter.PriorityGameOver
}

func (s *GameOverSystem) Update() {
	w := s.world
	if !w.Running || w.AnyResonatorAlive() || len(w.Everstones) > 0 {
		return
	}

	w.Running = false

	payload := &event.GameOverPayload{Survived: w.Time}
	if w.Time > w.High {
		w.High = w.Time
		payload.NewRecord = true
	}
	payload.Best = w.High
	payload.SaveErr = w.Scores.Record(w.Time)

	s.statGames.Add(1)
	w.PushEvent(event.EventGameOver, payload)
}
