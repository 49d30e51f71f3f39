package internal

import (
	"log/slog"
	"math"
)

// DDA line stepping. The dominant axis advances by exactly one unit per step
// and the minor axis by a fraction of a unit, so a line of length n along its
// dominant axis produces n+1 points, both endpoints included.
//
// Positions are accumulated by repeated addition rather than computed as
// start + i*inc. The two differ in the last bits, and that difference decides
// the pixel for positions that land near a half.
func stepLine(p1, p2 RealPoint, emit func(RealPoint)) {
	checkFinite(p1, p2)
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		emit(p1)
		return
	}
	if steps > maxExactFloat {
		fatalf(ErrNumericOverflow, "line from %v to %v is too long", p1, p2)
	}

	xInc := dx / steps
	yInc := dy / steps
	count := int(steps) + 1
	x, y := p1.X, p1.Y
	for i := 0; i < count; i++ {
		emit(RealPoint{x, y})
		x += xInc
		y += yInc
	}
}

// Lattice mode. Each stepped position is rounded to the nearest pixel. This is
// what contours and fill edges are made of.
func RasterizeLine(p1, p2 RealPoint) []Point {
	var points []Point
	stepLine(p1, p2, func(p RealPoint) {
		points = append(points, Snap(p))
	})
	Logger().Debug("rasterized line",
		slog.Any("from", p1), slog.Any("to", p2), slog.Int("points", len(points)))
	return points
}

// Real mode. The stepped positions are returned as they are, for drawing a
// smooth contour or for rounding later.
func RasterizeLineReal(p1, p2 RealPoint) []RealPoint {
	var points []RealPoint
	stepLine(p1, p2, func(p RealPoint) {
		points = append(points, p)
	})
	return points
}
