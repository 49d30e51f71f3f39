package internal

import "sort"

// Boundary samples bucketed by row. Each row keeps every x an edge produced on
// it, duplicates included: a vertex shared by two edges is sampled twice, and
// that is what lets vertex rows produce a span.
type EdgeRows map[int][]int

func (rows EdgeRows) Add(points ...Point) {
	for _, p := range points {
		rows[p.Y] = append(rows[p.Y], p.X)
	}
}

// Span per row from the leftmost to the rightmost sample, in ascending row
// order. Rows with a single sample have nothing to span between and are
// skipped.
func (rows EdgeRows) Spans() []Span {
	ys := make([]int, 0, len(rows))
	for y, xs := range rows {
		if len(xs) > 1 {
			ys = append(ys, y)
		}
	}
	sort.Ints(ys)

	spans := make([]Span, 0, len(ys))
	for _, y := range ys {
		xs := rows[y]
		minX, maxX := xs[0], xs[0]
		for _, x := range xs[1:] {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		spans = append(spans, Span{Y: y, X1: minX, X2: maxX})
	}
	return spans
}

// Min/max intersection per row for a set of boundary points.
func Intersections(points []Point) []Span {
	rows := make(EdgeRows)
	rows.Add(points...)
	return rows.Spans()
}
