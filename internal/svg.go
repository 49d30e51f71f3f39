package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Load shapes from an SVG document. This is not a general SVG reader. It walks
// the element tree in document order and picks up:
//
//	<circle cx cy r>           circle, integer attributes
//	<line x1 y1 x2 y2>         line
//	<polygon points>           triangle, exactly three points
//
// Missing coordinates default to 0 as they do in SVG, but a circle must give a
// radius. The element id becomes the shape name. Transforms, units and every
// other element are ignored.
func LoadSVG(r io.Reader) ([]Shape, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var shapes []Shape
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		shape, ok, err := svgShape(el)
		if err != nil {
			return err
		}
		if ok {
			shapes = append(shapes, shape)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return shapes, nil
}

func svgShape(el *svgparser.Element) (shape Shape, ok bool, err error) {
	attrs := el.Attributes
	shape.Name = attrs["id"]
	switch el.Name {
	case "circle":
		shape.Kind = KindCircle
		if _, hasRadius := attrs["r"]; !hasRadius {
			return shape, false, errors.Errorf("circle %q has no radius", shape.Name)
		}
		for _, field := range []struct {
			name string
			dst  *int
		}{
			{"cx", &shape.Circle.Center.X},
			{"cy", &shape.Circle.Center.Y},
			{"r", &shape.Circle.Radius},
		} {
			if *field.dst, err = svgInt(attrs, field.name); err != nil {
				return shape, false, errors.Wrapf(err, "circle %q", shape.Name)
			}
		}
	case "line":
		shape.Kind = KindLine
		for _, field := range []struct {
			name string
			dst  *float64
		}{
			{"x1", &shape.Line[0].X},
			{"y1", &shape.Line[0].Y},
			{"x2", &shape.Line[1].X},
			{"y2", &shape.Line[1].Y},
		} {
			if *field.dst, err = svgFloat(attrs, field.name); err != nil {
				return shape, false, errors.Wrapf(err, "line %q", shape.Name)
			}
		}
	case "polygon":
		shape.Kind = KindTriangle
		points, err := parsePointList(attrs["points"])
		if err != nil {
			return shape, false, errors.Wrapf(err, "polygon %q", shape.Name)
		}
		if len(points) != 3 {
			return shape, false, errors.Errorf("polygon %q has %d points, only triangles are supported", shape.Name, len(points))
		}
		shape.Triangle = Triangle{points[0], points[1], points[2]}
	default:
		return shape, false, nil
	}
	return shape, true, nil
}

func svgInt(attrs map[string]string, name string) (int, error) {
	value, ok := attrs[name]
	if !ok {
		return 0, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Wrapf(err, "attribute %s", name)
	}
	return i, nil
}

func svgFloat(attrs map[string]string, name string) (float64, error) {
	value, ok := attrs[name]
	if !ok {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "attribute %s", name)
	}
	return f, nil
}

// SVG point lists separate numbers with whitespace and/or commas, in any mix.
func parsePointList(s string) ([]RealPoint, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]RealPoint, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i/2)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i/2)
		}
		points = append(points, RealPoint{x, y})
	}
	return points, nil
}
