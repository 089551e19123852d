package component

// Monster is a mobile hostile seeking everstones and resonators
type Monster struct {
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
	VX float64 `msgpack:"vx"`
	VY float64 `msgpack:"vy"`
	HP float64 `msgpack:"hp"`

	// Stunned is remaining stun ticks
	Stunned int `msgpack:"stun"`

	// Progress is accumulated dig contact ticks against the block ahead
	Progress int `msgpack:"dig"`
}

// Dead reports whether the monster is due for removal
func (m *Monster) Dead() bool {
	return m.HP <= 0
}
