package command

import (
	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/parameter"
)

// Result reports the effect of a dispatched command
type Result struct {
	Command string

	// Applied is false when the command found nothing to act on
	Applied bool

	// Healed is the health restored by repairs
	Healed float64

	// Running is the running flag after the command
	Running bool
}

// Dispatch applies c to the world and returns its typed result
// Callers must hold the world lock (engine.World.RunSafe or Scheduler.Do)
func Dispatch(w *engine.World, c Command) Result {
	res := Result{Command: c.Name(), Applied: true}

	switch c := c.(type) {
	case PlaceBlock:
		health := c.Health
		if health == 0 {
			health = parameter.DefaultBlockHealth
		}
		w.Blocks = append(w.Blocks, &component.Block{X: c.X, Y: c.Y, W: c.W, H: c.H, Health: health})

	case PlaceTurret:
		w.Turrets = append(w.Turrets, &component.Turret{X: c.X, Y: c.Y, Rate: parameter.TurretRate})

	case PlaceTrap:
		w.Traps = append(w.Traps, &component.Trap{X: c.X, Y: c.Y, Radius: parameter.TrapRadius})

	case PlaceBomb:
		w.Bombs = append(w.Bombs, &component.Bomb{X: c.X, Y: c.Y, Armed: parameter.BombFuseTicks})

	case PlaceConveyor:
		w.Conveyors = append(w.Conveyors, &component.Conveyor{X: c.X, Y: c.Y, W: c.W, H: c.H, Dir: c.Dir})

	case PlaceRepairStation:
		half := parameter.RepairStationSize / 2.0
		w.Blocks = append(w.Blocks, &component.Block{
			X:             c.X - half,
			Y:             c.Y - half,
			W:             parameter.RepairStationSize,
			H:             parameter.RepairStationSize,
			Health:        parameter.RepairStationHealth,
			RepairStation: true,
		})

	case RepairBlock:
		res.Healed, res.Applied = repairBlock(w, c.X, c.Y)

	case RepairResonator:
		res.Healed, res.Applied = repairResonator(w, c.X, c.Y)

	case Weld:
		blockHealed, blockOK := repairBlock(w, c.X, c.Y)
		resHealed, resOK := repairResonator(w, c.X, c.Y)
		res.Healed = blockHealed + resHealed
		res.Applied = blockOK || resOK

	case MoveBlock:
		b := w.BlockAt(c.FromX, c.FromY)
		if b == nil {
			res.Applied = false
			break
		}
		b.X += c.ToX - c.FromX
		b.Y += c.ToY - c.FromY

	case Clear:
		w.ClearPlaced()

	case Start:
		if w.ProductionStartedAt.IsZero() {
			w.ProductionStartedAt = w.Clock.Now()
		}
		w.Running = true
		w.PushEvent(event.EventGameStart, nil)

	case TogglePause:
		w.Running = !w.Running
		w.PushEvent(event.EventGamePause, &event.PausePayload{Running: w.Running})

	case Reset:
		w.Reset()

	default:
		res.Applied = false
	}

	w.Flush()
	res.Running = w.Running
	return res
}

// repairBlock welds the nearest block, walls and other indestructible blocks are left alone
func repairBlock(w *engine.World, x, y float64) (float64, bool) {
	b := w.NearestBlock(x, y, parameter.RepairRadius)
	if b == nil || b.Indestructible() {
		return 0, false
	}
	before := b.Health
	b.Health = min(b.Health+parameter.BlockRepairAmount, parameter.BlockRepairCap)
	return b.Health - before, true
}

func repairResonator(w *engine.World, x, y float64) (float64, bool) {
	r := w.NearestAliveResonator(x, y, parameter.RepairRadius)
	if r == nil {
		return 0, false
	}
	before := r.HP
	r.HP = min(r.HP+parameter.ResonatorRepairAmount, parameter.ResonatorRepairCap)
	return r.HP - before, true
}
