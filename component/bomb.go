package component

// Bomb is a one-shot explosive, Armed counts ticks to detonation
type Bomb struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Armed int     `msgpack:"armed"`
}
