package internal

import (
	"log/slog"
	"math"
	"sort"
)

// Closed form scanline fill. Every row of the circle gets one span whose half
// width comes straight from the circle equation, dx = sqrt(r² - (y - yc)²).
func FillCircle(c Circle) []Span {
	validateCircle(c)
	xc, yc, r := c.Center.X, c.Center.Y, c.Radius

	spans := make([]Span, 0, 2*r+1)
	// Loop over the offset from the center row, not the row itself, so a
	// circle touching the edge of the int range can't step past it.
	for dy := -r; dy <= r; dy++ {
		radicand := r*r - dy*dy
		if radicand < 0 {
			continue
		}
		dx := int(Round(math.Sqrt(float64(radicand))))
		spans = append(spans, Span{Y: yc + dy, X1: xc - dx, X2: xc + dx})
	}

	Logger().Debug("filled circle",
		slog.Int("xc", xc), slog.Int("yc", yc), slog.Int("r", r),
		slog.Int("spans", len(spans)))
	return spans
}

// Triangle fill by edge bucketing. The vertices are sorted by y, each edge is
// rasterized with the DDA, and every row touched by the edges is spanned from
// its leftmost to its rightmost sample.
//
// This is not a true active edge scan conversion. On near horizontal edges the
// rounded samples can land a pixel inside or outside the exact boundary, and a
// collinear triangle only fills where its edges overlap. Output is defined by
// this procedure, so don't "fix" it into a different algorithm.
func FillTriangle(t Triangle) []Span {
	vertices := t.Vertices()
	checkFinite(vertices[:]...)
	sort.SliceStable(vertices[:], func(i, j int) bool {
		return vertices[i].Y < vertices[j].Y
	})

	rows := make(EdgeRows)
	for _, edge := range (Triangle{vertices[0], vertices[1], vertices[2]}).Edges() {
		rows.Add(RasterizeLine(edge[0], edge[1])...)
	}
	spans := rows.Spans()

	Logger().Debug("filled triangle",
		slog.Any("triangle", t), slog.Int("rows", len(rows)), slog.Int("spans", len(spans)))
	return spans
}
