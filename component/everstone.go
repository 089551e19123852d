package component

// Everstone is a resource produced by exactly one resonator
type Everstone struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"r"`
	HP     float64 `msgpack:"hp"`

	// ResonatorID references the owning resonator
	ResonatorID int `msgpack:"owner"`
}

// Live reports whether the stone still counts toward its owner
func (s *Everstone) Live() bool {
	return s.HP > 0
}
