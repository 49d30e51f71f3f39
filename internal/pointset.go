package internal

import "sort"

// Unordered collection of unique lattice points. Equality is coordinate-wise,
// so symmetric copies of the same pixel collapse on insert.
type PointSet map[Point]struct{}

func (s PointSet) Add(points ...Point) {
	for _, p := range points {
		s[p] = struct{}{}
	}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Equals(other PointSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Points ordered by x, then y. Map iteration order is random, so this is the
// only stable way to list a set.
func (s PointSet) Sorted() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	SortPoints(points)
	return points
}

func SortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
}
