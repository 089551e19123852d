package command

import (
	"strings"
	"testing"
)

func TestParseTool(t *testing.T) {
	for _, tool := range Tools() {
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool.String(), got, err)
		}
	}

	if _, err := ParseTool("hammer"); err == nil || !strings.Contains(err.Error(), `"hammer"`) {
		t.Errorf("expected unknown tool error naming hammer, got %v", err)
	}
	if ToolWelder.Label() != "Welder" {
		t.Errorf("unexpected label %q", ToolWelder.Label())
	}
}

func TestToolCommand(t *testing.T) {
	tests := []struct {
		name    string
		tool    Tool
		dropped bool
		want    Command
	}{
		{"builder", ToolBuilder, true, PlaceBlock{X: 70, Y: 82, W: 60, H: 36, Health: 120}},
		{"barrier", ToolBarrier, false, PlaceBlock{X: 60, Y: 90, W: 80, H: 20, Health: 180}},
		{"conveyor", ToolConveyor, true, PlaceConveyor{X: 40, Y: 88, W: 120, H: 24, Dir: 1}},
		{"laser", ToolLaser, true, PlaceTurret{X: 100, Y: 100}},
		{"shock", ToolShock, true, PlaceTrap{X: 100, Y: 100}},
		{"bomb", ToolBomb, false, PlaceBomb{X: 100, Y: 100}},
		{"welder dropped", ToolWelder, true, PlaceRepairStation{X: 100, Y: 100}},
		{"welder click", ToolWelder, false, Weld{X: 100, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.tool.Command(100, 100, tt.dropped)
			if !ok {
				t.Fatal("expected a command")
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}

	if _, ok := ToolSelect.Command(100, 100, false); ok {
		t.Error("select has no point command")
	}
}
