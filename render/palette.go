// Package render turns world snapshots into driver-neutral shapes, colors and HUD text
package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/underwell/parameter"
)

// Palette
var (
	ColorBackgroundTop    = mustHex("#061318")
	ColorBackgroundBottom = mustHex("#021016")

	ColorBlockHealthy = mustHex("#6fbdd6")
	ColorBlockDamaged = mustHex("#e07b4a")
	ColorHealthBar    = colorful.Color{R: 80.0 / 255, G: 200.0 / 255, B: 120.0 / 255}

	ColorResonatorAlive = mustHex("#4aa0ff")
	ColorResonatorDead  = mustHex("#333333")
	ColorGemAlive       = mustHex("#ffd77a")
	ColorGemDead        = mustHex("#666666")

	ColorEverstone  = mustHex("#ffd77a")
	ColorTurret     = mustHex("#cfe3ff")
	ColorTrapArmed  = mustHex("#f5c06b")
	ColorTrapCool   = mustHex("#ff5a5a")
	ColorBomb       = mustHex("#f06464")
	ColorMonster    = mustHex("#f3d84b")
	ColorConveyor   = mustHex("#f5c06b")
	ColorText       = mustHex("#ffffff")
	ColorTextDimmed = mustHex("#888888")
)

// blockHealthSpan is the health mapped to the fully healthy color
const blockHealthSpan = 200.0

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// BlockColor blends from the damaged to the healthy color by health
// Walls sit past the span and render fully healthy
func BlockColor(health float64) colorful.Color {
	ratio := min(max(health/blockHealthSpan, 0), 1)
	return ColorBlockDamaged.BlendLab(ColorBlockHealthy, ratio).Clamped()
}

// HealthRatio returns a health bar fill fraction in [0, 1]
func HealthRatio(hp, full float64) float64 {
	if full <= 0 {
		return 0
	}
	return min(max(hp/full, 0), 1)
}

// ResonatorColors returns the body and gem colors
func ResonatorColors(alive bool) (body, gem colorful.Color) {
	if alive {
		return ColorResonatorAlive, ColorGemAlive
	}
	return ColorResonatorDead, ColorGemDead
}

// EverstoneColor dims the stone toward the background as it loses health
func EverstoneColor(hp float64) colorful.Color {
	ratio := HealthRatio(hp, parameter.EverstoneHP)
	return ColorBackgroundTop.BlendLab(ColorEverstone, 0.35+0.65*ratio).Clamped()
}

// RGBA converts to an opaque image color
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
