// Exact, deterministic rasterization of circles, lines and triangles.
//
// This package turns integer or real valued primitives into the discrete
// pixel set that represents them: midpoint circle outlines, DDA lines, and
// scanline fills for circles and triangles. Every function is pure. Nothing is
// cached or shared between calls, so everything here is safe to call from any
// number of goroutines.
//
// Rounding to the lattice is always half to even.
package rasterize

import (
	"io"
	"log/slog"

	"github.com/osuushi/rasterize/internal"
)

type Point = internal.Point
type RealPoint = internal.RealPoint
type Circle = internal.Circle
type Triangle = internal.Triangle
type Span = internal.Span
type PointSet = internal.PointSet
type Slope = internal.Slope
type Shape = internal.Shape
type ShapeKind = internal.ShapeKind
type Result = internal.Result
type Scene = internal.Scene
type DrawOptions = internal.DrawOptions

const (
	KindCircle   = internal.KindCircle
	KindLine     = internal.KindLine
	KindTriangle = internal.KindTriangle
)

// Errors returned by this package can be checked with errors.Is against these.
var (
	ErrInvalidRadius     = internal.ErrInvalidRadius
	ErrNumericOverflow   = internal.ErrNumericOverflow
	ErrInvalidCoordinate = internal.ErrInvalidCoordinate
)

// Midpoint circle outline. The result holds no duplicates; use Sorted() for a
// stable listing. A zero radius gives the center alone, and a negative radius
// is an ErrInvalidRadius.
func RasterizeCircle(center Point, radius int) (result PointSet, err error) {
	err = internal.Guard(func() {
		result = internal.RasterizeCircle(Circle{Center: center, Radius: radius})
	})
	return result, err
}

// One span per row from yc-r to yc+r.
func FillCircle(center Point, radius int) (result []Span, err error) {
	err = internal.Guard(func() {
		result = internal.FillCircle(Circle{Center: center, Radius: radius})
	})
	return result, err
}

// DDA line, rounded to the lattice. Equal endpoints give a single point.
func RasterizeLine(p1, p2 RealPoint) (result []Point, err error) {
	err = internal.Guard(func() {
		result = internal.RasterizeLine(p1, p2)
	})
	return result, err
}

// DDA line with the stepped positions left unrounded.
func RasterizeLineReal(p1, p2 RealPoint) (result []RealPoint, err error) {
	err = internal.Guard(func() {
		result = internal.RasterizeLineReal(p1, p2)
	})
	return result, err
}

// Edge bucketing triangle fill. See the internal implementation for the
// precision trade-off; degenerate triangles are allowed and may produce few or
// no spans. Three equal vertices produce the single span covering that point.
func FillTriangle(t Triangle) (result []Span, err error) {
	err = internal.Guard(func() {
		result = internal.FillTriangle(t)
	})
	return result, err
}

// Slope of the segment from p1 to p2. Never fails: a vertical segment reports
// Vertical instead.
func SlopeOf(p1, p2 RealPoint) Slope {
	return internal.SlopeOf(p1, p2)
}

// Slopes of AB, BC and CA.
func TriangleSlopes(t Triangle) [3]Slope {
	return internal.TriangleSlopes(t)
}

// Per-row leftmost and rightmost x of a set of boundary points. Rows with a
// single point are skipped.
func Intersections(points []Point) []Span {
	return internal.Intersections(points)
}

func Rasterize(shape Shape, fill bool) (result Result, err error) {
	err = internal.Guard(func() {
		result = shape.Rasterize(fill)
	})
	return result, err
}

// Rasterize independent shapes concurrently. Results and errors are indexed
// like the input.
func RasterizeAll(shapes []Shape, fill bool) ([]Result, []error) {
	return internal.RasterizeAll(shapes, fill)
}

// Shapes described by an SVG document: circles, lines and three point
// polygons, in document order.
func LoadSVG(r io.Reader) ([]Shape, error) {
	return internal.LoadSVG(r)
}

func SceneFor(result Result) Scene {
	return internal.SceneFor(result)
}

func DefaultDrawOptions() DrawOptions {
	return internal.DefaultDrawOptions()
}

// By default nothing is logged. See internal.SetLogger for what gets logged.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

func Logger() *slog.Logger {
	return internal.Logger()
}
