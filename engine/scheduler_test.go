package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/underwell/component"
)

func newTestScheduler(t *testing.T) (*World, *Scheduler, *MockTimeProvider, *probeSystem, <-chan struct{}) {
	t.Helper()
	w := newTestWorld(1)
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	w.Clock = clock
	probe := &probeSystem{name: "probe", priority: 1}
	w.AddSystem(probe)
	s, done := NewScheduler(w, clock)
	return w, s, clock, probe, done
}

func TestSchedulerIdleFrameReanchors(t *testing.T) {
	w, s, clock, probe, _ := newTestScheduler(t)

	clock.Advance(time.Second)
	if got := s.Frame(); got != 0 {
		t.Errorf("idle frame ran %d ticks", got)
	}

	// Resuming must not replay the idle second
	w.Running = true
	clock.Advance(20 * time.Millisecond)
	if got := s.Frame(); got != 1 {
		t.Errorf("expected 1 tick after resume, got %d", got)
	}
	if probe.updates != 1 {
		t.Errorf("expected 1 update, got %d", probe.updates)
	}
}

func TestSchedulerCatchUpCap(t *testing.T) {
	w, s, clock, probe, _ := newTestScheduler(t)
	w.Running = true

	clock.Advance(time.Second)
	if got := s.Frame(); got != 5 {
		t.Errorf("expected capped 5 ticks, got %d", got)
	}
	if probe.updates != 5 {
		t.Errorf("expected 5 updates, got %d", probe.updates)
	}
	if dropped := w.Status.Ints.Get("engine.dropped_ticks").Load(); dropped != 55 {
		t.Errorf("expected 55 dropped ticks, got %d", dropped)
	}
}

func TestSchedulerStopsAtGameOver(t *testing.T) {
	w, s, clock, probe, _ := newTestScheduler(t)
	probe.onUpdate = func(p *probeSystem) {
		if p.updates == 2 {
			w.Running = false
		}
	}
	w.Running = true

	clock.Advance(100 * time.Millisecond)
	if got := s.Frame(); got != 2 {
		t.Errorf("expected 2 ticks before stop, got %d", got)
	}
}

func TestSchedulerSweepsPeriodically(t *testing.T) {
	w, s, clock, _, _ := newTestScheduler(t)
	w.Blocks = append(w.Blocks, &component.Block{X: 1, Y: 1, W: 2, H: 2, Health: 10})
	before := len(w.Blocks)

	clock.Advance(time.Second)
	s.Frame()
	if len(w.Blocks) != before {
		t.Fatal("sweep ran before its interval")
	}

	clock.Advance(2 * time.Second)
	s.Frame()
	if len(w.Blocks) != before-1 {
		t.Errorf("degenerate block not swept")
	}
	if swept := w.Status.Ints.Get("engine.swept_blocks").Load(); swept != 1 {
		t.Errorf("expected swept metric 1, got %d", swept)
	}
}

func TestSchedulerSignalsFrameDone(t *testing.T) {
	_, s, _, _, done := newTestScheduler(t)

	s.Start()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame signalled")
	}
	s.Stop()
	s.Stop()
}

func TestSchedulerDo(t *testing.T) {
	w, s, _, _, _ := newTestScheduler(t)

	s.Do(func(world *World) {
		world.Time = 7
	})
	if w.Time != 7 {
		t.Error("Do did not run against the world")
	}
}
