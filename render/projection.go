package render

import "math"

// Projection maps world coordinates onto a character grid
type Projection struct {
	WorldW, WorldH float64
	Cols, Rows     int

	// Top reserves rows above the grid for the HUD
	Top int
}

// NewProjection creates a projection of a world onto cols x rows cells, top rows reserved
func NewProjection(worldW, worldH float64, cols, rows, top int) Projection {
	return Projection{WorldW: worldW, WorldH: worldH, Cols: max(cols, 1), Rows: max(rows-top, 1), Top: top}
}

// CellW returns world units per column
func (p Projection) CellW() float64 {
	return p.WorldW / float64(p.Cols)
}

// CellH returns world units per row
func (p Projection) CellH() float64 {
	return p.WorldH / float64(p.Rows)
}

// ToCell returns the screen cell covering a world point, clamped to the grid
func (p Projection) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / p.CellW()))
	row = int(math.Floor(y / p.CellH()))
	col = min(max(col, 0), p.Cols-1)
	row = min(max(row, 0), p.Rows-1)
	return col, row + p.Top
}

// ToWorld returns the world point at the center of a screen cell
// ok is false for cells in the reserved HUD rows
func (p Projection) ToWorld(col, row int) (x, y float64, ok bool) {
	if row < p.Top {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) * p.CellW()
	y = (float64(row-p.Top) + 0.5) * p.CellH()
	return x, y, true
}

// Rect returns the inclusive screen cell range covered by a world rectangle
// Every non-empty rectangle covers at least one cell
func (p Projection) Rect(x, y, w, h float64) (c0, r0, c1, r1 int) {
	c0, r0 = p.ToCell(x, y)
	c1, r1 = p.ToCell(x+w-1e-9, y+h-1e-9)
	return c0, r0, max(c1, c0), max(r1, r0)
}
