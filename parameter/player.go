package parameter

// Placement geometry per tool, sizes are centered on the pointer
const (
	BuilderWidth  = 60
	BuilderHeight = 36
	BuilderHealth = 120

	BarrierWidth  = 80
	BarrierHeight = 20
	BarrierHealth = 180

	ConveyorWidth  = 120
	ConveyorHeight = 24
	ConveyorDir    = 1

	RepairStationSize   = 32
	RepairStationHealth = 160

	// DefaultBlockHealth applies to blocks placed without an explicit health
	DefaultBlockHealth = 100
)

// Welder
const (
	RepairRadius = 80

	BlockRepairAmount = 35
	BlockRepairCap    = 220

	ResonatorRepairAmount = 25
)
