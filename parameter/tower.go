package parameter

// Turret
const (
	// TurretRate is shots per time unit
	TurretRate   = 0.25
	TurretRange  = 300
	TurretDamage = 8
)

// Trap (ticks)
const (
	TrapRadius = 28

	// TrapReachMargin extends the trap radius for trigger checks
	TrapReachMargin = 8
	TrapStunTicks   = 90
	TrapCooldown    = 240
)

// Bomb
const (
	// BombFuseTicks is the countdown after placement
	BombFuseTicks = 60

	BombMonsterRadius = 90
	BombMonsterDamage = 30

	// BombStructureRadius applies to blocks, resonators and everstones
	BombStructureRadius = 120
	BombBlockDamage     = 80
	BombResonatorDamage = 30
	BombEverstoneDamage = 40
)
