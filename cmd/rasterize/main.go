package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/rasterize"
	"github.com/osuushi/rasterize/dbg"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the rasterizers. Shapes come from arguments or,
// for batch, from stdin or an SVG file. Results are printed as tables and can
// be rendered to PNG.
//
// Negative coordinates look like flags to the parser, so put them after "--":
//
//	rasterize circle -- -3 4 5

var (
	app      = kingpin.New("rasterize", "Rasterize circles, lines and triangles into lattice points and fill spans.")
	verbose  = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
	noColor  = app.Flag("no-color", "Disable colored output.").Bool()
	pngPath  = app.Flag("png", "Render the result to this PNG file. Batch output gets the shape name appended.").String()
	showImg  = app.Flag("imgcat", "Print the rendered image in the terminal (iTerm2 only).").Bool()
	scale    = app.Flag("scale", "Image pixels per lattice unit.").Default("12").Float64()
	padding  = app.Flag("padding", "Image padding in pixels.").Default("24").Int()
	realMode = app.Flag("real", "List the real valued contour instead of lattice points for lines and triangles.").Bool()

	circleCmd = app.Command("circle", "Midpoint circle outline.")
	circleX   = circleCmd.Arg("x", "Center x.").Required().Int()
	circleY   = circleCmd.Arg("y", "Center y.").Required().Int()
	circleR   = circleCmd.Arg("r", "Radius.").Required().Int()
	circleFil = circleCmd.Flag("fill", "Also compute the scanline fill.").Bool()

	lineCmd = app.Command("line", "DDA line.")
	lineX1  = lineCmd.Arg("x1", "Start x.").Required().Float64()
	lineY1  = lineCmd.Arg("y1", "Start y.").Required().Float64()
	lineX2  = lineCmd.Arg("x2", "End x.").Required().Float64()
	lineY2  = lineCmd.Arg("y2", "End y.").Required().Float64()

	triangleCmd = app.Command("triangle", "Triangle contour, slopes and scanline fill.")
	triangleXA  = triangleCmd.Arg("xa", "Vertex A x.").Required().Float64()
	triangleYA  = triangleCmd.Arg("ya", "Vertex A y.").Required().Float64()
	triangleXB  = triangleCmd.Arg("xb", "Vertex B x.").Required().Float64()
	triangleYB  = triangleCmd.Arg("yb", "Vertex B y.").Required().Float64()
	triangleXC  = triangleCmd.Arg("xc", "Vertex C x.").Required().Float64()
	triangleYC  = triangleCmd.Arg("yc", "Vertex C y.").Required().Float64()

	batchCmd  = app.Command("batch", "Rasterize many shapes, one per line on stdin, or from an SVG file.")
	batchSVG  = batchCmd.Flag("svg", "Read shapes from this SVG file instead of stdin.").ExistingFile()
	batchFill = batchCmd.Flag("fill", "Also fill circles.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		rasterize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var shapes []rasterize.Shape
	fill := false
	switch command {
	case circleCmd.FullCommand():
		shapes = append(shapes, rasterize.Shape{
			Kind:   rasterize.KindCircle,
			Circle: rasterize.Circle{Center: rasterize.Point{X: *circleX, Y: *circleY}, Radius: *circleR},
		})
		fill = *circleFil
	case lineCmd.FullCommand():
		shapes = append(shapes, rasterize.Shape{
			Kind: rasterize.KindLine,
			Line: [2]rasterize.RealPoint{{X: *lineX1, Y: *lineY1}, {X: *lineX2, Y: *lineY2}},
		})
	case triangleCmd.FullCommand():
		shapes = append(shapes, rasterize.Shape{
			Kind: rasterize.KindTriangle,
			Triangle: rasterize.Triangle{
				A: rasterize.RealPoint{X: *triangleXA, Y: *triangleYA},
				B: rasterize.RealPoint{X: *triangleXB, Y: *triangleYB},
				C: rasterize.RealPoint{X: *triangleXC, Y: *triangleYC},
			},
		})
	case batchCmd.FullCommand():
		var err error
		shapes, err = loadBatch(*batchSVG)
		app.FatalIfError(err, "")
		fill = *batchFill
	}

	if err := run(os.Stdout, shapes, fill, command == batchCmd.FullCommand()); err != nil {
		fmt.Fprintln(os.Stderr, "rasterize:", err)
		os.Exit(1)
	}
}

func loadBatch(svgPath string) ([]rasterize.Shape, error) {
	if svgPath == "" {
		return readShapes(os.Stdin)
	}
	f, err := os.Open(svgPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	return rasterize.LoadSVG(f)
}

// Rasterize, report and render every shape. Any shape failing makes the run
// fail, but only after the rest have been reported.
func run(w io.Writer, shapes []rasterize.Shape, fill, batch bool) error {
	r := reporter{w: w, au: aurora.NewAurora(!*noColor), real: *realMode}
	opts := rasterize.DrawOptions{Scale: *scale, Padding: *padding}

	results, errs := rasterize.RasterizeAll(shapes, fill)
	failed := 0
	for i, result := range results {
		name := shapes[i].Name
		if name == "" {
			if batch {
				name = dbg.Name(i)
			} else {
				name = shapes[i].Kind.String()
			}
		}
		if errs[i] != nil {
			r.failure(name, errs[i])
			failed++
			continue
		}
		result.Shape.Name = name
		r.report(name, result)

		if *pngPath == "" && !*showImg {
			continue
		}
		path, err := renderPath(*pngPath, name, batch)
		if err != nil {
			return err
		}
		if err := rasterize.SceneFor(result).SavePNG(path, opts); err != nil {
			return err
		}
		if *showImg {
			imgcat.CatFile(path, os.Stdout)
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d shapes failed", failed, len(shapes))
	}
	return nil
}

// Where to write the image for a shape. Without --png, images only exist for
// --imgcat and go to a temp file.
func renderPath(base, name string, batch bool) (string, error) {
	if base == "" {
		f, err := os.CreateTemp("", "rasterize-*.png")
		if err != nil {
			return "", errors.Wrap(err, "creating temp image")
		}
		defer f.Close()
		return f.Name(), nil
	}
	if !batch {
		return base, nil
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + name + ext, nil
}
