package render

import (
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/parameter"
)

// ShapeKind selects how a driver draws a shape
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is one drawable primitive in world coordinates
// Rects use X, Y as top-left; circles use X, Y as center and R as radius
type Shape struct {
	Kind  ShapeKind
	X, Y  float64
	W, H  float64
	R     float64
	Fill  colorful.Color
	Glyph rune

	// Label is optional text drawn at the shape, such as a bomb countdown
	Label string
}

// Draw sizes
const (
	TurretRadius    = 12
	BombRadius      = 8
	MonsterRadius   = 10
	ResonatorWidth  = 36
	ResonatorHeight = 24
	GemRadius       = 10
	HealthBarHeight = 4
)

// BuildScene lists shapes back to front for a snapshot
func BuildScene(s *engine.Snapshot) []Shape {
	shapes := make([]Shape, 0, len(s.Blocks)*2+len(s.Monsters)+len(s.Resonators)*3+16)

	for _, c := range s.Conveyors {
		shapes = append(shapes, Shape{Kind: ShapeRect, X: c.X, Y: c.Y, W: c.W, H: c.H, Fill: ColorConveyor, Glyph: conveyorGlyph(c.Dir)})
	}

	for _, b := range s.Blocks {
		glyph := '▒'
		if b.Health == parameter.IndestructibleHealth {
			glyph = '█'
		} else if b.RepairStation {
			glyph = 'W'
		}
		shapes = append(shapes, Shape{Kind: ShapeRect, X: b.X, Y: b.Y, W: b.W, H: b.H, Fill: BlockColor(b.Health), Glyph: glyph})

		if b.Health != parameter.IndestructibleHealth {
			shapes = append(shapes, Shape{
				Kind: ShapeRect, X: b.X, Y: b.Y - 6,
				W: b.W * HealthRatio(b.Health, parameter.BarrierHealth), H: HealthBarHeight,
				Fill: ColorHealthBar,
			})
		}
	}

	for _, r := range s.Resonators {
		body, gem := ResonatorColors(r.Alive)
		shapes = append(shapes,
			Shape{Kind: ShapeRect, X: r.X - ResonatorWidth/2, Y: r.Y - ResonatorHeight/2, W: ResonatorWidth, H: ResonatorHeight, Fill: body, Glyph: 'R'},
			Shape{Kind: ShapeCircle, X: r.X, Y: r.Y - 20, R: GemRadius, Fill: gem, Glyph: '◆'},
			Shape{
				Kind: ShapeRect, X: r.X - 22, Y: r.Y + 18,
				W: 44 * HealthRatio(r.HP, parameter.ResonatorRepairCap), H: 6,
				Fill: ColorHealthBar,
			},
		)
	}

	for _, st := range s.Everstones {
		shapes = append(shapes, Shape{Kind: ShapeCircle, X: st.X, Y: st.Y, R: st.Radius, Fill: EverstoneColor(st.HP), Glyph: '●'})
	}

	for _, t := range s.Turrets {
		shapes = append(shapes, Shape{Kind: ShapeCircle, X: t.X, Y: t.Y, R: TurretRadius, Fill: ColorTurret, Glyph: 'T'})
	}

	for _, tr := range s.Traps {
		fill, glyph := ColorTrapArmed, '○'
		if !tr.Armed() {
			fill, glyph = ColorTrapCool, '◌'
		}
		shapes = append(shapes, Shape{Kind: ShapeCircle, X: tr.X, Y: tr.Y, R: tr.Radius, Fill: fill, Glyph: glyph})
	}

	for _, b := range s.Bombs {
		shapes = append(shapes, Shape{Kind: ShapeCircle, X: b.X, Y: b.Y, R: BombRadius, Fill: ColorBomb, Glyph: '*', Label: BombCountdown(b.Armed)})
	}

	for _, m := range s.Monsters {
		shape := Shape{Kind: ShapeCircle, X: m.X, Y: m.Y, R: MonsterRadius, Fill: ColorMonster, Glyph: 'M'}
		if m.Stunned > 0 {
			shape.Label = "Z"
		}
		shapes = append(shapes, shape)
	}

	return shapes
}

// BombCountdown returns the remaining fuse in whole time units, rounded up
func BombCountdown(armedTicks int) string {
	secs := int(math.Ceil(float64(armedTicks) / parameter.TickRate))
	return strconv.Itoa(secs)
}

func conveyorGlyph(dir int) rune {
	if dir < 0 {
		return '<'
	}
	return '>'
}
