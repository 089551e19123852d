package vmath

import "math"

// Dist returns the Euclidean distance between two points
func Dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Direction returns the unit vector from (ax, ay) toward (bx, by) and the distance between them
// Coincident points yield a zero vector with divisor 1 so callers never divide by zero
func Direction(ax, ay, bx, by float64) (ux, uy, d float64) {
	dx, dy := bx-ax, by-ay
	d = math.Hypot(dx, dy)
	div := d
	if div == 0 {
		div = 1
	}
	return dx / div, dy / div, d
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
