package internal

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Reference rendering of rasterizer output. This isn't a plotting layer, just
// a way to look at pixels: one lattice point is Scale image pixels, the y axis
// points up, and the scene is padded so edge pixels aren't clipped.

type DrawOptions struct {
	// Image pixels per lattice unit
	Scale float64
	// Image pixels around the scene bounds
	Padding int
}

func DefaultDrawOptions() DrawOptions {
	return DrawOptions{Scale: 12, Padding: 24}
}

func (o DrawOptions) withDefaults() DrawOptions {
	defaults := DefaultDrawOptions()
	if o.Scale <= 0 {
		o.Scale = defaults.Scale
	}
	if o.Padding <= 0 {
		o.Padding = defaults.Padding
	}
	return o
}

// What to draw. Layers are painted in the order of the fields: fill spans,
// then the real valued contour, then outline pixels, then markers.
type Scene struct {
	Spans   []Span
	Contour []RealPoint
	Outline []Point
	Markers []RealPoint
	Label   string
}

func SceneFor(result Result) Scene {
	return Scene{
		Spans:   result.Spans,
		Contour: result.Contour,
		Outline: result.Outline,
		Markers: result.Shape.Markers(),
		Label:   result.Shape.Name,
	}
}

// Bounds in lattice units, covering whole pixels: a pixel at (x, y) spans
// x-0.5 to x+0.5. An empty scene has empty bounds at the origin.
func (s Scene) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	include := func(x, y float64) {
		minX = math.Min(minX, x-0.5)
		minY = math.Min(minY, y-0.5)
		maxX = math.Max(maxX, x+0.5)
		maxY = math.Max(maxY, y+0.5)
	}
	for _, span := range s.Spans {
		include(float64(span.X1), float64(span.Y))
		include(float64(span.X2), float64(span.Y))
	}
	for _, p := range s.Contour {
		include(p.X, p.Y)
	}
	for _, p := range s.Outline {
		include(float64(p.X), float64(p.Y))
	}
	for _, p := range s.Markers {
		include(p.X, p.Y)
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

func (s Scene) Render(opts DrawOptions) image.Image {
	return s.context(opts).Image()
}

func (s Scene) EncodePNG(w io.Writer, opts DrawOptions) error {
	return errors.Wrap(s.context(opts).EncodePNG(w), "encoding png")
}

func (s Scene) SavePNG(path string, opts DrawOptions) error {
	return errors.Wrapf(s.context(opts).SavePNG(path), "saving %s", path)
}

func (s Scene) context(opts DrawOptions) *gg.Context {
	opts = opts.withDefaults()
	minX, minY, maxX, maxY := s.Bounds()
	padding := float64(opts.Padding)
	width := int(math.Ceil(opts.Scale*(maxX-minX) + padding*2))
	height := int(math.Ceil(opts.Scale*(maxY-minY) + padding*2))

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	if s.Label != "" {
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(0.2, 0.2, 0.2)
		c.DrawStringAnchored(s.Label, padding/2, padding/2, 0, 0.5)
	}

	// Flip the context so y points up, then pad, scale and move the scene
	// minimum to the origin
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-minX, -minY)

	s.draw(c, opts.Scale)
	return c
}

func (s Scene) draw(c *gg.Context, scale float64) {
	// Spans cover whole pixels, so they are drawn as half-pixel padded boxes
	c.SetRGBA(1, 0.6, 0, 0.6)
	for _, span := range s.Spans {
		c.DrawRectangle(float64(span.X1)-0.5, float64(span.Y)-0.5, float64(span.Len()), 1)
	}
	c.Fill()

	if len(s.Contour) > 1 {
		c.SetRGB(0.1, 0.3, 0.9)
		c.SetLineWidth(2)
		c.MoveTo(s.Contour[0].X, s.Contour[0].Y)
		for _, p := range s.Contour[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.Stroke()
	}

	c.SetRGB(0, 0, 0.6)
	for _, p := range s.Outline {
		c.DrawRectangle(float64(p.X)-0.35, float64(p.Y)-0.35, 0.7, 0.7)
	}
	c.Fill()

	// Markers are an x, sized in image pixels so they read at any scale
	arm := 5 / scale
	c.SetRGB(0, 0.6, 0)
	c.SetLineWidth(2)
	for _, p := range s.Markers {
		c.DrawLine(p.X-arm, p.Y-arm, p.X+arm, p.Y+arm)
		c.DrawLine(p.X-arm, p.Y+arm, p.X+arm, p.Y-arm)
	}
	c.Stroke()
}
