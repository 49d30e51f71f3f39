package internal

import "math"

// Largest magnitude a float64 can hold while still representing every integer
// exactly. Rounded coordinates beyond this are not trustworthy lattice points.
const maxExactFloat = 1 << 53

// Largest radius whose square still fits in an int.
var MaxRadius = int(math.Sqrt(float64(math.MaxInt)))

// Coordinates are rounded half to even everywhere. This decides which pixel
// wins when a stepped line passes exactly between two of them, so it has to be
// the same for contours and fill edges.
func Round(v float64) float64 {
	return math.RoundToEven(v)
}

// Round to the lattice, failing loudly if the result can't be an exact int.
func toLattice(v float64) int {
	r := Round(v)
	if math.Abs(r) > maxExactFloat {
		fatalf(ErrNumericOverflow, "coordinate %g does not fit the integer lattice", v)
	}
	return int(r)
}

func Snap(p RealPoint) Point {
	return Point{X: toLattice(p.X), Y: toLattice(p.Y)}
}

func checkFinite(points ...RealPoint) {
	for _, p := range points {
		for _, v := range []float64{p.X, p.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				fatalf(ErrInvalidCoordinate, "point %v", p)
			}
		}
	}
}

// Sum of two ints, panicking instead of wrapping around.
func addChecked(a, b int) int {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		fatalf(ErrNumericOverflow, "%d + %d", a, b)
	}
	return sum
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
