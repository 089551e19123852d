package component

// Resonator is a stationary generator producing everstones on a timer
// A destroyed resonator stays in the world as a dead marker
type Resonator struct {
	ID    int     `msgpack:"id"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	HP    float64 `msgpack:"hp"`
	Alive bool    `msgpack:"alive"`

	ProduceCooldown float64 `msgpack:"cooldown"`
	ProduceTimer    float64 `msgpack:"timer"`
	ProducedCount   int     `msgpack:"produced"`
}

// Damage subtracts amount and marks the resonator dead at zero or below
// Reports whether this call killed it
func (r *Resonator) Damage(amount float64) bool {
	r.HP -= amount
	if r.HP <= 0 && r.Alive {
		r.Alive = false
		return true
	}
	return false
}
