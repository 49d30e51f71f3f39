package internal

import (
	"fmt"
	"sync"
)

type ShapeKind int

const (
	KindCircle ShapeKind = iota
	KindLine
	KindTriangle
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindTriangle:
		return "triangle"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// A shape request as it comes from a caller: exactly one of Circle, Line and
// Triangle is meaningful, selected by Kind. Name is only used for reporting.
type Shape struct {
	Name     string
	Kind     ShapeKind
	Circle   Circle
	Line     [2]RealPoint
	Triangle Triangle
}

// Everything computed for one shape.
//
// Outline holds the lattice boundary: the sorted circle points, the line
// pixels, or the triangle's edge pixels in AB, BC, CA order (shared vertices
// appear twice). Contour is the real valued path of lines and triangle edges.
// Spans is only set when a fill was asked for, except for triangles, where the
// intersection table is always computed. Slopes is set for lines (one) and
// triangles (AB, BC, CA).
type Result struct {
	Shape   Shape
	Outline []Point
	Contour []RealPoint
	Spans   []Span
	Slopes  []Slope
}

func (s Shape) Rasterize(fill bool) Result {
	result := Result{Shape: s}
	switch s.Kind {
	case KindCircle:
		result.Outline = RasterizeCircle(s.Circle).Sorted()
		if fill {
			result.Spans = FillCircle(s.Circle)
		}
	case KindLine:
		result.Outline = RasterizeLine(s.Line[0], s.Line[1])
		result.Contour = RasterizeLineReal(s.Line[0], s.Line[1])
		result.Slopes = []Slope{SlopeOf(s.Line[0], s.Line[1])}
	case KindTriangle:
		for _, edge := range s.Triangle.Edges() {
			result.Outline = append(result.Outline, RasterizeLine(edge[0], edge[1])...)
			result.Contour = append(result.Contour, RasterizeLineReal(edge[0], edge[1])...)
		}
		result.Spans = FillTriangle(s.Triangle)
		slopes := TriangleSlopes(s.Triangle)
		result.Slopes = slopes[:]
	default:
		panic(fmt.Sprintf("unknown shape kind %v", s.Kind))
	}
	return result
}

// Markers worth highlighting when drawing the shape: the circle center, or the
// line and triangle vertices.
func (s Shape) Markers() []RealPoint {
	switch s.Kind {
	case KindCircle:
		return []RealPoint{s.Circle.Center.Real()}
	case KindLine:
		return s.Line[:]
	case KindTriangle:
		vertices := s.Triangle.Vertices()
		return vertices[:]
	}
	return nil
}

// Rasterize every shape concurrently. The shapes share nothing, so each one
// gets its own goroutine. Results and errors line up with the input; a failed
// shape leaves a zero Result and a non-nil error at its index.
func RasterizeAll(shapes []Shape, fill bool) ([]Result, []error) {
	results := make([]Result, len(shapes))
	errs := make([]error, len(shapes))

	var wg sync.WaitGroup
	for i := range shapes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = Guard(func() {
				results[i] = shapes[i].Rasterize(fill)
			})
		}(i)
	}
	wg.Wait()
	return results, errs
}
