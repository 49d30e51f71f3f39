package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/rasterize"
)

// Text report for one rasterized shape. Tables are listed in the order a
// reader checks them: slopes, boundary points, fill spans.
type reporter struct {
	w    io.Writer
	au   aurora.Aurora
	real bool // show the real valued contour instead of lattice points
}

func (r reporter) report(name string, result rasterize.Result) {
	shape := result.Shape
	fmt.Fprintf(r.w, "%s %s\n", r.au.Bold(r.au.Cyan(name)), describe(shape))

	switch shape.Kind {
	case rasterize.KindLine:
		fmt.Fprintf(r.w, "  slope: %s\n", r.au.Yellow(result.Slopes[0]))
	case rasterize.KindTriangle:
		fmt.Fprintf(r.w, "  slopes: AB %s, BC %s, CA %s\n",
			r.au.Yellow(result.Slopes[0]), r.au.Yellow(result.Slopes[1]), r.au.Yellow(result.Slopes[2]))
	}

	if r.real && result.Contour != nil {
		fmt.Fprintf(r.w, "  %s (%d)\n", r.au.Green("contour"), len(result.Contour))
		for _, p := range result.Contour {
			fmt.Fprintf(r.w, "    %v\n", p)
		}
	} else if shape.Kind != rasterize.KindTriangle {
		fmt.Fprintf(r.w, "  %s (%d)\n", r.au.Green("points"), len(result.Outline))
		for _, p := range result.Outline {
			fmt.Fprintf(r.w, "    %v\n", p)
		}
	}

	if result.Spans != nil {
		fmt.Fprintf(r.w, "  %s (%d)\n", r.au.Green("spans"), len(result.Spans))
		fmt.Fprintf(r.w, "    %6s %6s %6s %6s\n", "X1", "Y1", "X2", "Y2")
		for _, span := range result.Spans {
			fmt.Fprintf(r.w, "    %6d %6d %6d %6d\n", span.X1, span.Y, span.X2, span.Y)
		}
	}
}

func (r reporter) failure(name string, err error) {
	fmt.Fprintf(r.w, "%s %s\n", r.au.Bold(r.au.Red(name)), r.au.Red(err))
}

func describe(shape rasterize.Shape) string {
	switch shape.Kind {
	case rasterize.KindCircle:
		return shape.Circle.String()
	case rasterize.KindLine:
		return fmt.Sprintf("line %v %v", shape.Line[0], shape.Line[1])
	case rasterize.KindTriangle:
		return shape.Triangle.String()
	}
	return shape.Kind.String()
}
