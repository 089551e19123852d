package component

// Trap is a shock plate stunning monsters that come close
// Cooldown counts ticks, the trap is armed only at exactly zero
type Trap struct {
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	Radius   float64 `msgpack:"r"`
	Cooldown int     `msgpack:"cd"`
}

// Armed reports whether the trap triggers this tick
func (t *Trap) Armed() bool {
	return t.Cooldown == 0
}
