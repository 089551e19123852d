package engine

// System is one stage of the tick, run in ascending Priority order
// Systems that also implement event.Handler are registered with the router on AddSystem
type System interface {
	// Init resets session state, called on construction and on game reset
	Init()

	// Name returns the registry name used in logs and telemetry
	Name() string

	// Priority orders systems within a tick, lower runs first
	Priority() int

	// Update advances the system by one fixed tick
	Update()
}
