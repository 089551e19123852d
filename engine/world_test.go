package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
)

func TestNewWorldLayout(t *testing.T) {
	w := newTestWorld(1)

	if len(w.Blocks) != 7 {
		t.Fatalf("expected 7 blocks, got %d", len(w.Blocks))
	}
	walls := 0
	for _, b := range w.Blocks {
		if b.Indestructible() {
			walls++
		}
	}
	if walls != 4 {
		t.Errorf("expected 4 walls, got %d", walls)
	}

	platform := w.Blocks[4]
	if platform.X != 352 || platform.Y != 280 || platform.W != 320 || platform.H != 120 || platform.Health != 200 {
		t.Errorf("unexpected platform %+v", *platform)
	}

	if len(w.Resonators) != parameter.ResonatorCount {
		t.Fatalf("expected %d resonators, got %d", parameter.ResonatorCount, len(w.Resonators))
	}
	wantX := []float64{452, 572}
	for i, r := range w.Resonators {
		if r.ID != i || r.X != wantX[i] || r.Y != 330 || r.HP != 120 || !r.Alive {
			t.Errorf("resonator %d unexpected: %+v", i, *r)
		}
		lo := parameter.ResonatorInitialTimerBase[i]
		hi := lo + parameter.ResonatorInitialTimerSpread[i]
		if r.ProduceTimer < lo || r.ProduceTimer >= hi {
			t.Errorf("resonator %d timer %v outside [%v, %v)", i, r.ProduceTimer, lo, hi)
		}
	}

	if w.Running || w.Time != 0 || w.SpawnTimer != parameter.SpawnInitialDelay || !w.ProductionStartedAt.IsZero() {
		t.Error("new world should be idle with fresh scalars")
	}
}

func TestNewWorldDeterministicSeed(t *testing.T) {
	a, b := newTestWorld(42), newTestWorld(42)
	for i := range a.Resonators {
		if a.Resonators[i].ProduceTimer != b.Resonators[i].ProduceTimer {
			t.Errorf("same seed should produce same timers: %v vs %v", a.Resonators[i].ProduceTimer, b.Resonators[i].ProduceTimer)
		}
	}
}

func TestNewWorldLoadsHighScore(t *testing.T) {
	w := NewWorld(DefaultConfig(), &memoryScores{best: 33.5})
	if w.High != 33.5 {
		t.Errorf("expected high 33.5, got %v", w.High)
	}
}

func TestAddEverstoneRelation(t *testing.T) {
	w := newTestWorld(1)

	if err := w.AddEverstone(&component.Everstone{ResonatorID: 9, HP: 100}); !errors.Is(err, ErrUnknownResonator) {
		t.Errorf("expected ErrUnknownResonator, got %v", err)
	}

	first := &component.Everstone{ResonatorID: 0, HP: 100}
	if err := w.AddEverstone(first); err != nil {
		t.Fatalf("first stone rejected: %v", err)
	}
	if err := w.AddEverstone(&component.Everstone{ResonatorID: 0, HP: 100}); !errors.Is(err, ErrEverstoneOutstanding) {
		t.Errorf("expected ErrEverstoneOutstanding, got %v", err)
	}
	if err := w.AddEverstone(&component.Everstone{ResonatorID: 1, HP: 100}); err != nil {
		t.Errorf("other resonator should accept a stone: %v", err)
	}

	first.HP = 0
	if w.LiveEverstone(0) != nil {
		t.Error("spent stone should not count as live")
	}
	if err := w.AddEverstone(&component.Everstone{ResonatorID: 0, HP: 100}); err != nil {
		t.Errorf("stone should be accepted once the previous one is spent: %v", err)
	}
}

func TestStepRequiresRunning(t *testing.T) {
	w := newTestWorld(1)
	probe := &probeSystem{name: "probe", priority: 1}
	w.AddSystem(probe)

	if w.Step() {
		t.Error("Step should report false while idle")
	}
	if probe.updates != 0 || w.Tick != 0 {
		t.Errorf("idle step mutated state: updates=%d tick=%d", probe.updates, w.Tick)
	}

	w.Running = true
	if !w.Step() || probe.updates != 1 || w.Tick != 1 {
		t.Errorf("running step did not advance: updates=%d tick=%d", probe.updates, w.Tick)
	}
	if w.Status.Ints.Get("engine.ticks").Load() != 1 {
		t.Error("tick metric not updated")
	}
}

func TestAddSystemPriorityOrder(t *testing.T) {
	w := newTestWorld(1)
	var order []string
	record := func(p *probeSystem) { order = append(order, p.name) }

	w.AddSystem(&probeSystem{name: "c", priority: 30, onUpdate: record})
	w.AddSystem(&probeSystem{name: "a", priority: 10, onUpdate: record})
	w.AddSystem(&probeSystem{name: "b", priority: 20, onUpdate: record})

	w.Running = true
	w.Step()

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("expected a,b,c got %v", order)
	}
	if names := w.Systems(); names[0].Name() != "a" {
		t.Errorf("Systems() should be in run order, got %s first", names[0].Name())
	}
}

func TestEventsRouteAtEndOfStep(t *testing.T) {
	w := newTestWorld(1)

	var seenDuringTick bool
	probe := &probeSystem{name: "probe", priority: 1}
	probe.onUpdate = func(p *probeSystem) {
		w.PushEvent(event.EventMonsterSpawned, &event.PositionPayload{X: 1, Y: 2})
		seenDuringTick = len(p.events) > 0
	}
	w.AddSystem(probe)

	var listened []event.GameEvent
	w.Subscribe(func(ev event.GameEvent) { listened = append(listened, ev) })

	w.Running = true
	w.Step()

	if seenDuringTick {
		t.Error("events must not be routed mid-tick")
	}
	if len(probe.events) != 1 || probe.events[0] != event.EventMonsterSpawned {
		t.Errorf("handler did not receive event: %v", probe.events)
	}
	if len(listened) != 1 || listened[0].Tick != 0 {
		t.Errorf("listener should see the event stamped with tick 0: %+v", listened)
	}
}

func TestResetReinitializes(t *testing.T) {
	w := newTestWorld(1)
	probe := &probeSystem{name: "probe", priority: 1}
	w.AddSystem(probe)

	w.Running = true
	w.Time = 50
	w.High = 45
	w.Tick = 99
	w.Monsters = append(w.Monsters, &component.Monster{HP: 20})
	w.Resonators[0].Alive = false

	w.Reset()

	if w.Running || w.Time != 0 || w.Tick != 0 || len(w.Monsters) != 0 {
		t.Error("reset left stale state")
	}
	if !w.Resonators[0].Alive {
		t.Error("reset should rebuild resonators")
	}
	if w.High != 45 {
		t.Errorf("reset must keep the high score, got %v", w.High)
	}
	if probe.resets != 1 {
		t.Errorf("systems should be notified once, got %d", probe.resets)
	}
}

func TestBlockQueries(t *testing.T) {
	w := newTestWorld(1)
	w.Blocks = nil

	under := &component.Block{X: 0, Y: 0, W: 100, H: 100, Health: 50}
	over := &component.Block{X: 50, Y: 50, W: 100, H: 100, Health: 50}
	w.Blocks = append(w.Blocks, under, over)

	if got := w.BlockAt(75, 75); got != over {
		t.Error("BlockAt should return the last placed block")
	}
	if got := w.BlockAt(10, 10); got != under {
		t.Error("BlockAt should find the lower block outside the overlap")
	}
	if got := w.BlockAt(500, 500); got != nil {
		t.Error("BlockAt should miss empty space")
	}

	if got := w.NearestBlock(60, 60, 30); got != under {
		t.Error("NearestBlock should pick the closest center")
	}
	if got := w.NearestBlock(300, 300, 30); got != nil {
		t.Error("NearestBlock should respect the radius")
	}

	if !w.RemoveBlock(over) || w.RemoveBlock(over) {
		t.Error("RemoveBlock should remove exactly once")
	}
}

func TestSweepDegenerate(t *testing.T) {
	w := newTestWorld(1)
	before := len(w.Blocks)
	w.Blocks = append(w.Blocks,
		&component.Block{X: 100, Y: 100, W: 4, H: 50, Health: 10},
		&component.Block{X: 100, Y: 100, W: 50, H: 3, Health: 10},
		&component.Block{X: 100, Y: 100, W: 5, H: 5, Health: 10},
	)

	if removed := w.SweepDegenerate(); removed != 2 {
		t.Errorf("expected 2 swept, got %d", removed)
	}
	if len(w.Blocks) != before+1 {
		t.Errorf("expected %d blocks, got %d", before+1, len(w.Blocks))
	}
}

func TestAnyResonatorAlive(t *testing.T) {
	w := newTestWorld(1)
	if !w.AnyResonatorAlive() {
		t.Fatal("fresh world should have live resonators")
	}
	for _, r := range w.Resonators {
		r.Alive = false
	}
	if w.AnyResonatorAlive() {
		t.Error("all resonators dead")
	}
	if r := w.NearestAliveResonator(452, 330, 1000); r != nil {
		t.Error("dead resonators must not be returned")
	}
}
