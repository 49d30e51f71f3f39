package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/rasterize"
	"github.com/pkg/errors"
)

// Read shapes from a batch file, one per line:
//
//	circle X Y R
//	line X1 Y1 X2 Y2
//	triangle XA YA XB YB XC YC
//
// Any line may end with name=NAME. Blank lines and lines starting with # are
// skipped.
func readShapes(in io.Reader) ([]rasterize.Shape, error) {
	var shapes []rasterize.Shape
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		shape, err := parseShape(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		shapes = append(shapes, shape)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading shapes")
	}
	return shapes, nil
}

func parseShape(line string) (rasterize.Shape, error) {
	var shape rasterize.Shape
	fields := strings.Fields(line)
	if len(fields) > 0 && strings.HasPrefix(fields[len(fields)-1], "name=") {
		last := fields[len(fields)-1]
		shape.Name = strings.TrimPrefix(last, "name=")
		fields = fields[:len(fields)-1]
	}
	if len(fields) == 0 {
		return shape, errors.New("missing shape")
	}
	kind, args := fields[0], fields[1:]

	switch kind {
	case "circle":
		shape.Kind = rasterize.KindCircle
		values, err := parseInts(args, 3)
		if err != nil {
			return shape, errors.Wrap(err, "circle")
		}
		shape.Circle = rasterize.Circle{
			Center: rasterize.Point{X: values[0], Y: values[1]},
			Radius: values[2],
		}
	case "line":
		shape.Kind = rasterize.KindLine
		values, err := parseFloats(args, 4)
		if err != nil {
			return shape, errors.Wrap(err, "line")
		}
		shape.Line = [2]rasterize.RealPoint{{X: values[0], Y: values[1]}, {X: values[2], Y: values[3]}}
	case "triangle":
		shape.Kind = rasterize.KindTriangle
		values, err := parseFloats(args, 6)
		if err != nil {
			return shape, errors.Wrap(err, "triangle")
		}
		shape.Triangle = rasterize.Triangle{
			A: rasterize.RealPoint{X: values[0], Y: values[1]},
			B: rasterize.RealPoint{X: values[2], Y: values[3]},
			C: rasterize.RealPoint{X: values[4], Y: values[5]},
		}
	default:
		return shape, errors.Errorf("unknown shape %q", kind)
	}
	return shape, nil
}

func parseInts(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, errors.Errorf("want %d values, got %d", want, len(args))
	}
	values := make([]int, want)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Errorf("%q is not an integer", arg)
		}
		values[i] = v
	}
	return values, nil
}

func parseFloats(args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, errors.Errorf("want %d values, got %d", want, len(args))
	}
	values := make([]float64, want)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Errorf("%q is not a number", arg)
		}
		values[i] = v
	}
	return values, nil
}
