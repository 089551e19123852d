package component

import "github.com/lixenwraith/underwell/parameter"

// Block is a rectangular terrain or placed structure
// Health equal to parameter.IndestructibleHealth marks ground and walls
type Block struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	W      float64 `msgpack:"w"`
	H      float64 `msgpack:"h"`
	Health float64 `msgpack:"hp"`

	// RepairStation marks a welder-placed block
	RepairStation bool `msgpack:"rs,omitempty"`
}

// Indestructible reports whether no damage path may touch the block
func (b *Block) Indestructible() bool {
	return b.Health == parameter.IndestructibleHealth
}

// Contains reports whether the point lies inside the block, edges inclusive
func (b *Block) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Center returns the block midpoint
func (b *Block) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Damage subtracts amount from a destructible block and reports whether it is destroyed
func (b *Block) Damage(amount float64) bool {
	if b.Indestructible() {
		return false
	}
	b.Health -= amount
	return b.Health <= 0
}
