package component

// Turret is a stationary laser firing at the nearest monster in range
type Turret struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`

	// Rate is shots per time unit, cooldown resets to 1/Rate after firing
	Rate     float64 `msgpack:"rate"`
	Cooldown float64 `msgpack:"cool"`
}
