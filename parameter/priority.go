package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn      = 10
	PriorityTimekeeper = 20 // After spawn, spawn reads the previous elapsed time
	PriorityResonator  = 30
	PriorityTurret     = 40
	PriorityTrap       = 50
	PriorityBomb       = 60
	PriorityMonster    = 70 // After defenses so damage lands before removal
	PriorityCleanup    = 80
	PriorityGameOver   = 90 // After cleanup, observes pruned collections
)
