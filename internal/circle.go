package internal

import "log/slog"

// Midpoint circle rasterization. One octant is walked from the top of the
// circle (x = 0, y = r) until x passes y, and every step is mirrored into the
// other seven octants.
//
// The decision parameter p tracks whether the midpoint between the two
// candidate pixels lies inside the circle. It starts at 1 - r, which is the
// integer form of 5/4 - r.
func RasterizeCircle(c Circle) PointSet {
	validateCircle(c)
	xc, yc := c.Center.X, c.Center.Y

	points := make(PointSet, min(8*(c.Radius+1), 1<<16))
	x, y := 0, c.Radius
	p := 1 - c.Radius
	for x <= y {
		points.Add(
			Point{xc + x, yc + y},
			Point{xc - x, yc + y},
			Point{xc + x, yc - y},
			Point{xc - x, yc - y},
			Point{xc + y, yc + x},
			Point{xc - y, yc + x},
			Point{xc + y, yc - x},
			Point{xc - y, yc - x},
		)
		if p < 0 {
			// Midpoint inside, keep y
			p += 2*x + 3
		} else {
			p += 2*x - 2*y + 5
			y--
		}
		x++
	}

	Logger().Debug("rasterized circle",
		slog.Int("xc", xc), slog.Int("yc", yc), slog.Int("r", c.Radius),
		slog.Int("points", len(points)))
	return points
}

// Reject circles we can't compute. Once the extremes xc±r and yc±r are known
// to fit, every intermediate value in the outline and fill does too.
func validateCircle(c Circle) {
	if c.Radius < 0 {
		fatalf(ErrInvalidRadius, "radius %d is negative", c.Radius)
	}
	if c.Radius > MaxRadius {
		fatalf(ErrNumericOverflow, "radius %d is too large", c.Radius)
	}
	addChecked(c.Center.X, c.Radius)
	addChecked(c.Center.X, -c.Radius)
	addChecked(c.Center.Y, c.Radius)
	addChecked(c.Center.Y, -c.Radius)
}
