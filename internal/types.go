package internal

import "fmt"

// A lattice point, i.e. a pixel position. Points are plain values, so they
// compare with == and can be used directly as map keys.
type Point struct {
	X, Y int
}

// A real valued point. Lines are stepped in real coordinates and only snapped
// to the lattice when a Point is emitted.
type RealPoint struct {
	X, Y float64
}

// Circle with an integer center and radius. A zero radius is a single point.
type Circle struct {
	Center Point
	Radius int
}

// Triangle vertices are real valued so callers can feed either lattice points
// (see Point.Real) or fractional geometry. Nothing requires the vertices to be
// distinct or non-collinear.
type Triangle struct {
	A, B, C RealPoint
}

// A horizontal run of filled pixels on row Y, from X1 to X2 inclusive. X1 is
// never greater than X2.
type Span struct {
	Y, X1, X2 int
}

func (p Point) Real() RealPoint {
	return RealPoint{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p RealPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle %v r=%d", c.Center, c.Radius)
}

func (t Triangle) Vertices() [3]RealPoint {
	return [3]RealPoint{t.A, t.B, t.C}
}

func (t Triangle) String() string {
	return fmt.Sprintf("triangle %v %v %v", t.A, t.B, t.C)
}

// Number of pixels covered by the span
func (s Span) Len() int {
	return s.X2 - s.X1 + 1
}

func (s Span) Contains(p Point) bool {
	return p.Y == s.Y && p.X >= s.X1 && p.X <= s.X2
}

// Spans print as the pair of boundary intersections on their row.
func (s Span) String() string {
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", s.X1, s.Y, s.X2, s.Y)
}
