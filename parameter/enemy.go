package parameter

// Monster Entity
const (
	MonsterInitialHP = 20

	// MonsterSpawnEdgeInset is the spawn distance from the left/right world edge
	MonsterSpawnEdgeInset = 80

	// MonsterSpawnTop is the minimum spawn height, the range extends one third of the world height
	MonsterSpawnTop = 60
)

// Monster Spawning (time units)
const (
	SpawnInitialDelay = 2.0

	// SpawnBaseInterval shrinks by one unit every SpawnRampPeriod of survival
	SpawnBaseInterval = 30
	SpawnRampPeriod   = 20
	SpawnMinInterval  = 10

	// SpawnJitterMin and SpawnJitterRange scale the interval to [0.7, 1.3)
	SpawnJitterMin   = 0.7
	SpawnJitterRange = 0.6
)

// Monster Steering (per tick)
const (
	// WanderAccelX and WanderAccelY pull a target-less monster toward center
	WanderAccelX = 0.02
	WanderAccelY = 0.01

	SteerAccelX = 0.05
	SteerAccelY = 0.02

	// SteerSpeedBase is the speed factor at full health, it grows as HP drops
	SteerSpeedBase = 0.6

	MaxVelocityX = 2.0
	MaxVelocityY = 1.2

	// PerturbChance is the per-tick chance of a lateral impulse
	PerturbChance = 0.01
	PerturbScale  = 0.6
)

// Monster Contact
const (
	// StoneContactMargin extends the stone radius for contact
	StoneContactMargin = 10
	StoneContactDamage = 0.12

	ResonatorContactRange  = 28
	ResonatorContactDamage = 0.15
)

// Digging
const (
	// DigProbeDistance is how far ahead of the monster the block probe reaches
	DigProbeDistance = 8

	// DigThreshold is contact ticks accumulated before a dig hit lands
	DigThreshold = 45
	DigDamage    = 8
)
