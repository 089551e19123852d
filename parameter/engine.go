package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the number of simulation ticks per time unit (second)
	TickRate = 60

	// TickDelta is the simulated time advanced by one tick
	TickDelta = 1.0 / TickRate

	// TickInterval is the wall-clock duration of one tick
	TickInterval = time.Second / TickRate

	// FrameUpdateInterval is the driver frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxCatchUpTicks caps ticks run in a single frame, excess backlog is dropped
	MaxCatchUpTicks = 5

	// SweepInterval is the wall-clock period of the degenerate block sweep
	SweepInterval = 3 * time.Second

	// DegenerateBlockSize is the width/height at or below which a block is swept
	DegenerateBlockSize = 4
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
