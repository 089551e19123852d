package render

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/parameter"
)

func TestBlockColorEndpoints(t *testing.T) {
	if got := BlockColor(0); got.Hex() != ColorBlockDamaged.Hex() {
		t.Errorf("empty block should be damaged color, got %s", got.Hex())
	}
	if got := BlockColor(200); got.Hex() != ColorBlockHealthy.Hex() {
		t.Errorf("full block should be healthy color, got %s", got.Hex())
	}
	if got := BlockColor(parameter.IndestructibleHealth); got.Hex() != ColorBlockHealthy.Hex() {
		t.Errorf("walls should clamp to healthy color, got %s", got.Hex())
	}

	mid := BlockColor(100)
	if mid.Hex() == ColorBlockHealthy.Hex() || mid.Hex() == ColorBlockDamaged.Hex() {
		t.Errorf("half health should blend, got %s", mid.Hex())
	}
}

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		hp, full, want float64
	}{
		{50, 100, 0.5},
		{-5, 100, 0},
		{300, 100, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := HealthRatio(tt.hp, tt.full); got != tt.want {
			t.Errorf("HealthRatio(%v, %v) = %v, want %v", tt.hp, tt.full, got, tt.want)
		}
	}
}

func TestRGBAOpaque(t *testing.T) {
	c := RGBA(ColorMonster)
	if c.A != 0xff || c.R != 0xf3 || c.G != 0xd8 || c.B != 0x4b {
		t.Errorf("unexpected conversion: %+v", c)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := NewProjection(1000, 500, 100, 52, 2)

	col, row := p.ToCell(505, 255)
	if col != 50 || row != 27 {
		t.Errorf("ToCell = %d,%d want 50,27", col, row)
	}

	x, y, ok := p.ToWorld(col, row)
	if !ok || x != 505 || y != 255 {
		t.Errorf("ToWorld = %v,%v,%v want 505,255,true", x, y, ok)
	}

	if _, _, ok := p.ToWorld(10, 1); ok {
		t.Error("HUD rows must not map to the world")
	}

	col, row = p.ToCell(-50, 9999)
	if col != 0 || row != 51 {
		t.Errorf("out-of-world point should clamp, got %d,%d", col, row)
	}
}

func TestProjectionRectCoversSmallShapes(t *testing.T) {
	p := NewProjection(1000, 500, 100, 50, 0)

	c0, r0, c1, r1 := p.Rect(0, 0, 20, 10)
	if c0 != 0 || r0 != 0 || c1 != 1 || r1 != 0 {
		t.Errorf("Rect = %d,%d,%d,%d want 0,0,1,0", c0, r0, c1, r1)
	}

	c0, r0, c1, r1 = p.Rect(3, 3, 1, 1)
	if c0 != c1 || r0 != r1 {
		t.Errorf("tiny rect should cover one cell, got %d,%d,%d,%d", c0, r0, c1, r1)
	}
}

func TestBuildScene(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Seed = 7
	w := engine.NewWorld(cfg, nil)
	w.Monsters = append(w.Monsters, &component.Monster{X: 100, Y: 100, HP: 20, Stunned: 3})
	w.Bombs = append(w.Bombs, &component.Bomb{X: 200, Y: 200, Armed: 61})
	w.Traps = append(w.Traps, &component.Trap{X: 300, Y: 300, Radius: 28, Cooldown: 10})

	snap := w.Snapshot()
	shapes := BuildScene(&snap)

	var monster, bomb, trap *Shape
	walls := 0
	for i := range shapes {
		s := &shapes[i]
		switch s.Glyph {
		case 'M':
			monster = s
		case '*':
			bomb = s
		case '◌':
			trap = s
		case '█':
			walls++
		}
	}

	if walls != 4 {
		t.Errorf("expected 4 wall shapes, got %d", walls)
	}
	if monster == nil || monster.Label != "Z" {
		t.Errorf("stunned monster should carry Z label: %+v", monster)
	}
	if bomb == nil || bomb.Label != "2" {
		t.Errorf("bomb countdown should round up to 2: %+v", bomb)
	}
	if trap == nil || trap.Fill != ColorTrapCool {
		t.Errorf("cooling trap should use cool color: %+v", trap)
	}
	if last := shapes[len(shapes)-1]; last.Glyph != 'M' {
		t.Errorf("monsters should draw last, got %q", last.Glyph)
	}
}

func TestBombCountdown(t *testing.T) {
	for ticks, want := range map[int]string{60: "1", 61: "2", 1: "1", 0: "0"} {
		if got := BombCountdown(ticks); got != want {
			t.Errorf("BombCountdown(%d) = %q, want %q", ticks, got, want)
		}
	}
}

func TestHUDLines(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Seed = 3
	w := engine.NewWorld(cfg, nil)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	w.ProductionStartedAt = start
	w.Running = true
	w.Time = 12.34
	w.Resonators[1].Alive = false
	w.Resonators[0].ProduceTimer = -1

	snap := w.Snapshot()
	lines := HUDLines(&snap, "Laser", start.Add(75*time.Second))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Survived: 12.3s") || !strings.Contains(lines[0], "[running]") {
		t.Errorf("unexpected counters line: %q", lines[0])
	}
	for _, want := range []string{"R0 next: 0.0s", "R1 next:", "(down)", "Production started: 01:15", "Tool: Laser"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("timers line missing %q: %q", want, lines[1])
		}
	}
}

func TestFitLine(t *testing.T) {
	if got := FitLine("abc", 5); got != "abc  " {
		t.Errorf("FitLine pad = %q", got)
	}
	got := FitLine("abcdefgh", 5)
	if runewidth.StringWidth(got) != 5 || !strings.HasSuffix(got, "…") {
		t.Errorf("FitLine truncate = %q", got)
	}
	if FitLine("abc", 0) != "" {
		t.Error("zero width should be empty")
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(125*time.Second + 900*time.Millisecond); got != "02:05" {
		t.Errorf("FormatClock = %q", got)
	}
	if got := FormatClock(-time.Second); got != "00:00" {
		t.Errorf("negative duration = %q", got)
	}
}
