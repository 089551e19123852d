package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/underwell/engine"
)

// HUDLines returns the status panel for a snapshot: counters first, then per-resonator timers
func HUDLines(s *engine.Snapshot, tool string, now time.Time) []string {
	state := "idle"
	switch {
	case s.Running:
		state = "running"
	case s.Time > 0 && !anyAlive(s) && len(s.Everstones) == 0:
		state = "game over"
	case s.Time > 0:
		state = "paused"
	}

	production := "Production not started"
	if !s.ProductionStartedAt.IsZero() {
		production = "Production started: " + FormatClock(s.ProductionElapsed(now))
	}

	lines := []string{
		fmt.Sprintf("Survived: %.1fs  High: %.1fs  Everstone HP: %.0f  Produced: %d  [%s]",
			s.Time, s.High, s.EverstoneHP(), s.Produced(), state),
	}

	var timers strings.Builder
	for _, r := range s.Resonators {
		next, _ := s.NextProduction(r.ID)
		status := ""
		if !r.Alive {
			status = " (down)"
		}
		fmt.Fprintf(&timers, "R%d next: %.1fs%s  ", r.ID, next, status)
	}
	timers.WriteString(production)
	if tool != "" {
		timers.WriteString("  Tool: " + tool)
	}
	lines = append(lines, timers.String())

	return lines
}

// FormatClock renders a duration as mm:ss, truncating partial seconds
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// FitLine truncates s to width display cells and pads it to exactly width
func FitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

func anyAlive(s *engine.Snapshot) bool {
	for _, r := range s.Resonators {
		if r.Alive {
			return true
		}
	}
	return false
}
