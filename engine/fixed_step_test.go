package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/underwell/parameter"
)

func TestFixedStepAccumulates(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fs := NewFixedStep(10*time.Millisecond, 5, start)

	tests := []struct {
		advance time.Duration
		want    int
	}{
		{5 * time.Millisecond, 0},
		{5 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{5 * time.Millisecond, 1},
		{0, 0},
	}

	now := start
	for i, tt := range tests {
		now = now.Add(tt.advance)
		if got := fs.Advance(now); got != tt.want {
			t.Errorf("step %d: got %d ticks, want %d (pending %v)", i, got, tt.want, fs.Pending())
		}
	}
	if fs.Dropped() != 0 {
		t.Errorf("nothing should be dropped, got %d", fs.Dropped())
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fs := NewFixedStep(parameter.TickInterval, parameter.MaxCatchUpTicks, start)

	got := fs.Advance(start.Add(time.Second))
	if got != parameter.MaxCatchUpTicks {
		t.Fatalf("expected capped %d ticks, got %d", parameter.MaxCatchUpTicks, got)
	}
	if fs.Dropped() != 55 {
		t.Errorf("expected 55 dropped ticks, got %d", fs.Dropped())
	}
	if fs.Pending() != 0 {
		t.Errorf("backlog should be discarded, pending %v", fs.Pending())
	}
}

func TestFixedStepReanchor(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fs := NewFixedStep(10*time.Millisecond, 5, start)

	fs.Advance(start.Add(7 * time.Millisecond))
	fs.Reanchor(start.Add(time.Hour))

	if got := fs.Advance(start.Add(time.Hour + 3*time.Millisecond)); got != 0 {
		t.Errorf("reanchor should discard backlog, got %d ticks", got)
	}
	if fs.Pending() != 3*time.Millisecond {
		t.Errorf("expected 3ms pending, got %v", fs.Pending())
	}
}

func TestFixedStepClockBackwards(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fs := NewFixedStep(10*time.Millisecond, 5, start)

	if got := fs.Advance(start.Add(-time.Second)); got != 0 {
		t.Errorf("backwards clock should yield no ticks, got %d", got)
	}
}
