package system

import (
	"github.com/lixenwraith/underwell/component"
	"github.com/lixenwraith/underwell/vmath"
)

// nearestMonster returns the closest monster strictly within reach of the point
// Ties keep the earlier monster
func nearestMonster(monsters []*component.Monster, x, y, reach float64) *component.Monster {
	var best *component.Monster
	bestDist := reach
	for _, m := range monsters {
		if d := vmath.Dist(x, y, m.X, m.Y); d < bestDist {
			bestDist = d
			best = m
		}
	}
	return best
}

// nearestLiveEverstone returns the closest everstone with positive health
func nearestLiveEverstone(stones []*component.Everstone, x, y float64) (*component.Everstone, float64) {
	var best *component.Everstone
	bestDist := 0.0
	for _, s := range stones {
		if !s.Live() {
			continue
		}
		if d := vmath.Dist(x, y, s.X, s.Y); best == nil || d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best, bestDist
}

// nearestAliveResonator returns the closest alive resonator
func nearestAliveResonator(resonators []*component.Resonator, x, y float64) (*component.Resonator, float64) {
	var best *component.Resonator
	bestDist := 0.0
	for _, r := range resonators {
		if !r.Alive {
			continue
		}
		if d := vmath.Dist(x, y, r.X, r.Y); best == nil || d < bestDist {
			bestDist = d
			best = r
		}
	}
	return best, bestDist
}
