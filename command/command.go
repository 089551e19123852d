// Package command defines the inbound actions a driver applies to the world between ticks
package command

// Command is a tagged variant of every inbound action
// The set is closed; Dispatch switches over the concrete types
type Command interface {
	// Name returns a stable identifier for logs
	Name() string

	command()
}

// PlaceBlock adds a block with its top-left corner at X, Y
// Zero Health places a block with the default health
type PlaceBlock struct {
	X, Y, W, H float64
	Health     float64
}

// PlaceTurret adds a laser turret at X, Y
type PlaceTurret struct {
	X, Y float64
}

// PlaceTrap adds a shock trap at X, Y
type PlaceTrap struct {
	X, Y float64
}

// PlaceBomb arms a bomb at X, Y
type PlaceBomb struct {
	X, Y float64
}

// PlaceConveyor adds a decorative conveyor with its top-left corner at X, Y
type PlaceConveyor struct {
	X, Y, W, H float64
	Dir        int
}

// PlaceRepairStation adds a repair station block centered on X, Y
type PlaceRepairStation struct {
	X, Y float64
}

// RepairBlock heals the destructible block nearest to X, Y within the welder radius
type RepairBlock struct {
	X, Y float64
}

// RepairResonator heals the alive resonator nearest to X, Y within the welder radius
type RepairResonator struct {
	X, Y float64
}

// Weld applies RepairBlock then RepairResonator at the same point
type Weld struct {
	X, Y float64
}

// MoveBlock drags the topmost block under From by the pointer delta
type MoveBlock struct {
	FromX, FromY float64
	ToX, ToY     float64
}

// Clear removes placed structures and monsters, keeping walls, resonators and everstones
type Clear struct{}

// Start enters the running state, recording the production start once
type Start struct{}

// TogglePause flips the running flag
type TogglePause struct{}

// Reset reinitializes the whole level
type Reset struct{}

func (PlaceBlock) Name() string         { return "place_block" }
func (PlaceTurret) Name() string        { return "place_turret" }
func (PlaceTrap) Name() string          { return "place_trap" }
func (PlaceBomb) Name() string          { return "place_bomb" }
func (PlaceConveyor) Name() string      { return "place_conveyor" }
func (PlaceRepairStation) Name() string { return "place_repair_station" }
func (RepairBlock) Name() string        { return "repair_block" }
func (RepairResonator) Name() string    { return "repair_resonator" }
func (Weld) Name() string               { return "weld" }
func (MoveBlock) Name() string          { return "move_block" }
func (Clear) Name() string              { return "clear" }
func (Start) Name() string              { return "start" }
func (TogglePause) Name() string        { return "toggle_pause" }
func (Reset) Name() string              { return "reset" }

func (PlaceBlock) command()         {}
func (PlaceTurret) command()        {}
func (PlaceTrap) command()          {}
func (PlaceBomb) command()          {}
func (PlaceConveyor) command()      {}
func (PlaceRepairStation) command() {}
func (RepairBlock) command()        {}
func (RepairResonator) command()    {}
func (Weld) command()               {}
func (MoveBlock) command()          {}
func (Clear) command()              {}
func (Start) command()              {}
func (TogglePause) command()        {}
func (Reset) command()              {}
