package engine

import "time"

// FixedStep converts irregular frame times into a bounded number of fixed ticks
// Backlog beyond MaxCatchUp ticks in one frame is dropped instead of replayed
type FixedStep struct {
	Interval   time.Duration
	MaxCatchUp int

	accumulator time.Duration
	last        time.Time
	dropped     uint64
}

// NewFixedStep creates an accumulator anchored at now
func NewFixedStep(interval time.Duration, maxCatchUp int, now time.Time) *FixedStep {
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &FixedStep{
		Interval:   interval,
		MaxCatchUp: maxCatchUp,
		last:       now,
	}
}

// Advance accounts elapsed time up to now and returns ticks due this frame
func (f *FixedStep) Advance(now time.Time) int {
	elapsed := now.Sub(f.last)
	f.last = now
	if elapsed <= 0 {
		return 0
	}

	f.accumulator += elapsed
	ticks := int(f.accumulator / f.Interval)
	if ticks > f.MaxCatchUp {
		f.dropped += uint64(ticks - f.MaxCatchUp)
		ticks = f.MaxCatchUp
		f.accumulator = 0
		return ticks
	}

	f.accumulator -= time.Duration(ticks) * f.Interval
	return ticks
}

// Reanchor discards backlog and restarts accounting from now
// Used while the simulation is not running so resuming never bursts
func (f *FixedStep) Reanchor(now time.Time) {
	f.accumulator = 0
	f.last = now
}

// Dropped returns ticks discarded by the catch-up cap
func (f *FixedStep) Dropped() uint64 {
	return f.dropped
}

// Pending returns accumulated time not yet converted to ticks
func (f *FixedStep) Pending() time.Duration {
	return f.accumulator
}
