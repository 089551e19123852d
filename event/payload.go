package event

// PositionPayload carries a world position
type PositionPayload struct {
	X, Y float64
}

// PausePayload carries the running flag after a toggle
type PausePayload struct {
	Running bool
}

// ProductionPayload identifies a resonator and its lifetime production count
type ProductionPayload struct {
	ResonatorID int
	Produced    int
}

// ResonatorPayload identifies a destroyed resonator
type ResonatorPayload struct {
	ResonatorID int
}

// TrapPayload reports a trap trigger and how many monsters it stunned
type TrapPayload struct {
	X, Y    float64
	Stunned int
}

// GameOverPayload reports the final survival time and the high score after update
type GameOverPayload struct {
	Survived  float64
	Best      float64
	NewRecord bool

	// SaveErr is the failure to record the run, if any
	SaveErr error
}
