package command

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/underwell/parameter"
)

// Tool is a toolbar entry mapping a pointer position to a command
type Tool int

const (
	ToolSelect Tool = iota
	ToolBuilder
	ToolBarrier
	ToolConveyor
	ToolLaser
	ToolShock
	ToolBomb
	ToolWelder
)

var toolNames = [...]string{
	ToolSelect:   "select",
	ToolBuilder:  "builder",
	ToolBarrier:  "barrier",
	ToolConveyor: "conveyor",
	ToolLaser:    "laser",
	ToolShock:    "shock",
	ToolBomb:     "bomb",
	ToolWelder:   "welder",
}

// Tools returns every tool in toolbar order
func Tools() []Tool {
	return []Tool{ToolSelect, ToolBuilder, ToolBarrier, ToolConveyor, ToolLaser, ToolShock, ToolBomb, ToolWelder}
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return "unknown"
	}
	return toolNames[t]
}

// Label returns the capitalized name shown in the HUD
func (t Tool) Label() string {
	name := t.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseTool resolves a toolbar name
func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return ToolSelect, errors.Errorf("unknown tool %q", name)
}

// Command returns the action for using the tool at x, y
// dropped distinguishes a drag from the toolbar from a click on the pit; the welder
// places a repair station when dropped and welds when clicked
// The select tool has no point action, drivers turn its drags into MoveBlock
func (t Tool) Command(x, y float64, dropped bool) (Command, bool) {
	switch t {
	case ToolBuilder:
		return PlaceBlock{
			X: x - parameter.BuilderWidth/2, Y: y - parameter.BuilderHeight/2,
			W: parameter.BuilderWidth, H: parameter.BuilderHeight, Health: parameter.BuilderHealth,
		}, true
	case ToolBarrier:
		return PlaceBlock{
			X: x - parameter.BarrierWidth/2, Y: y - parameter.BarrierHeight/2,
			W: parameter.BarrierWidth, H: parameter.BarrierHeight, Health: parameter.BarrierHealth,
		}, true
	case ToolConveyor:
		return PlaceConveyor{
			X: x - parameter.ConveyorWidth/2, Y: y - parameter.ConveyorHeight/2,
			W: parameter.ConveyorWidth, H: parameter.ConveyorHeight, Dir: parameter.ConveyorDir,
		}, true
	case ToolLaser:
		return PlaceTurret{X: x, Y: y}, true
	case ToolShock:
		return PlaceTrap{X: x, Y: y}, true
	case ToolBomb:
		return PlaceBomb{X: x, Y: y}, true
	case ToolWelder:
		if dropped {
			return PlaceRepairStation{X: x, Y: y}, true
		}
		return Weld{X: x, Y: y}, true
	}
	return nil, false
}
