package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset signals full reinitialization of the world
	// Trigger: Reset command | Consumer: systems (Init) | Payload: nil
	EventGameReset EventType = iota

	// EventGameStart signals the simulation entering the running state
	// Trigger: Start command | Consumer: drivers | Payload: nil
	EventGameStart

	// EventGamePause signals a running-flag toggle
	// Trigger: TogglePause command | Consumer: drivers | Payload: *PausePayload
	EventGamePause

	// EventGameOver signals the loss condition
	// Trigger: GameOverSystem | Consumer: drivers, audio | Payload: *GameOverPayload
	EventGameOver

	// EventMonsterSpawned signals a new monster at a pit edge
	// Trigger: SpawnSystem | Consumer: drivers | Payload: *PositionPayload
	EventMonsterSpawned

	// EventMonsterKilled signals removal of a dead monster
	// Trigger: MonsterSystem | Consumer: drivers | Payload: *PositionPayload
	EventMonsterKilled

	// EventEverstoneProduced signals a resonator completing a production cycle
	// Trigger: ResonatorSystem | Consumer: audio | Payload: *ProductionPayload
	EventEverstoneProduced

	// EventEverstoneLost signals an everstone pruned at zero health
	// Trigger: CleanupSystem | Consumer: drivers | Payload: *ProductionPayload
	EventEverstoneLost

	// EventResonatorDestroyed signals a resonator going dead
	// Trigger: MonsterSystem, BombSystem, CleanupSystem | Consumer: audio | Payload: *ResonatorPayload
	EventResonatorDestroyed

	// EventBlockDestroyed signals a destructible block removed
	// Trigger: MonsterSystem (dig), BombSystem | Consumer: drivers | Payload: *PositionPayload
	EventBlockDestroyed

	// EventTurretFired signals a turret hit
	// Trigger: TurretSystem | Consumer: audio | Payload: *PositionPayload (target)
	EventTurretFired

	// EventTrapTriggered signals a trap stunning monsters
	// Trigger: TrapSystem | Consumer: audio | Payload: *TrapPayload
	EventTrapTriggered

	// EventBombDetonated signals a bomb blast
	// Trigger: BombSystem | Consumer: audio | Payload: *PositionPayload
	EventBombDetonated
)

var typeNames = map[EventType]string{
	EventGameReset:          "game_reset",
	EventGameStart:          "game_start",
	EventGamePause:          "game_pause",
	EventGameOver:           "game_over",
	EventMonsterSpawned:     "monster_spawned",
	EventMonsterKilled:      "monster_killed",
	EventEverstoneProduced:  "everstone_produced",
	EventEverstoneLost:      "everstone_lost",
	EventResonatorDestroyed: "resonator_destroyed",
	EventBlockDestroyed:     "block_destroyed",
	EventTurretFired:        "turret_fired",
	EventTrapTriggered:      "trap_triggered",
	EventBombDetonated:      "bomb_detonated",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single notification with the tick it was raised in
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
