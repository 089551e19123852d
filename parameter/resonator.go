package parameter

// Resonator
const (
	ResonatorCount = 2

	// ResonatorOffsetX is the horizontal distance of each resonator from center
	ResonatorOffsetX = 60

	// ResonatorOffsetY is the vertical offset of resonators from the level center
	ResonatorOffsetY = -10

	ResonatorInitialHP = 120

	// ResonatorProduceCooldown is the time units between productions
	ResonatorProduceCooldown = 12.0

	// ResonatorRepairCap is the maximum HP reachable by welding
	ResonatorRepairCap = 150
)

// Initial production timers: base + rand*spread, per resonator id
var (
	ResonatorInitialTimerBase   = [ResonatorCount]float64{6, 2}
	ResonatorInitialTimerSpread = [ResonatorCount]float64{4, 4}
)

// Everstone
const (
	EverstoneRadius = 26
	EverstoneHP     = 100

	// EverstoneOffsetY places a produced stone above its resonator
	EverstoneOffsetY = -40
)
