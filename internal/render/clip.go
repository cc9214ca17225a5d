package render

import (
	"math"

	"wireframe-renderer/internal/projector"
)

type rect struct {
	minX, minY, maxX, maxY float64
}

// clipSegment cuts a-b to r (Liang–Barsky). ok is false when nothing of
// the segment lies inside, or when an endpoint is not finite.
func clipSegment(a, b projector.Point, r rect) (projector.Point, projector.Point, bool) {
	for _, v := range [4]float64{a.X, a.Y, b.X, b.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return a, b, false
		}
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - r.minX},
		{dx, r.maxX - a.X},
		{-dy, a.Y - r.minY},
		{dy, r.maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	na, nb := a, b
	if t0 > 0 {
		na = projector.Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		nb = projector.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return na, nb, true
}
