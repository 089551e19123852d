package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/underwell/parameter"
)

// Scheduler drives the world from wall-clock frames on its own goroutine
// Each frame runs the due fixed ticks under the world lock, so commands
// submitted through Do always land between ticks
type Scheduler struct {
	world *World
	clock TimeProvider
	step  *FixedStep

	frameInterval time.Duration
	lastSweep     time.Time

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Frame synchronization, signalled after each frame's ticks complete
	frameDone chan struct{}

	// Cached metric pointers
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
	statSwept   *atomic.Int64
}

// NewScheduler creates a scheduler for world using clock as wall time
// Returns the frame-done channel drivers wait on before drawing
func NewScheduler(world *World, clock TimeProvider) (*Scheduler, <-chan struct{}) {
	frameDone := make(chan struct{}, 1)
	now := clock.Now()

	s := &Scheduler{
		world:         world,
		clock:         clock,
		step:          NewFixedStep(parameter.TickInterval, world.Config.MaxCatchUp, now),
		frameInterval: world.Config.FrameInterval,
		lastSweep:     now,
		stopChan:      make(chan struct{}),
		frameDone:     frameDone,
		statFrames:    world.Status.Ints.Get("engine.frames"),
		statDropped:   world.Status.Ints.Get("engine.dropped_ticks"),
		statSwept:     world.Status.Ints.Get("engine.swept_blocks"),
	}
	if s.frameInterval <= 0 {
		s.frameInterval = parameter.FrameUpdateInterval
	}

	return s, frameDone
}

// Start begins the frame loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the frame loop and waits for the in-flight frame
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.Frame()
		}
	}
}

// Frame runs one frame: the due ticks, then the periodic degenerate-block sweep
// Returns ticks executed. Exposed for drivers that own their own frame loop
func (s *Scheduler) Frame() int {
	now := s.clock.Now()
	ticks := 0

	s.world.RunSafe(func() {
		if !s.world.Running {
			s.step.Reanchor(now)
		} else {
			due := s.step.Advance(now)
			for ; ticks < due; ticks++ {
				if !s.world.Step() {
					break
				}
			}
		}

		if now.Sub(s.lastSweep) >= parameter.SweepInterval {
			s.lastSweep = now
			s.statSwept.Add(int64(s.world.SweepDegenerate()))
		}
	})

	s.statFrames.Add(1)
	s.statDropped.Store(int64(s.step.Dropped()))

	select {
	case s.frameDone <- struct{}{}:
	default:
	}

	return ticks
}

// Do runs fn against the world between ticks
func (s *Scheduler) Do(fn func(w *World)) {
	s.world.RunSafe(func() {
		fn(s.world)
	})
}
