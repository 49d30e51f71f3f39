package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeRasterize(t *testing.T) {
	t.Run("circle", func(t *testing.T) {
		shape := Shape{Kind: KindCircle, Circle: Circle{Radius: 5}}

		result := shape.Rasterize(false)
		assert.Equal(t, RasterizeCircle(shape.Circle).Sorted(), result.Outline)
		assert.Nil(t, result.Spans)
		assert.Nil(t, result.Contour)
		assert.Nil(t, result.Slopes)

		result = shape.Rasterize(true)
		assert.Equal(t, FillCircle(shape.Circle), result.Spans)
		assert.Equal(t, []RealPoint{{0, 0}}, shape.Markers())
	})

	t.Run("line", func(t *testing.T) {
		shape := Shape{Kind: KindLine, Line: [2]RealPoint{pt(0, 0), pt(4, 0)}}
		result := shape.Rasterize(true)
		assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, result.Outline)
		assert.Len(t, result.Contour, 5)
		assert.Equal(t, []Slope{{M: 0}}, result.Slopes)
		assert.Nil(t, result.Spans)
	})

	t.Run("triangle", func(t *testing.T) {
		tri := Triangle{pt(0, 0), pt(4, 0), pt(0, 4)}
		result := Shape{Kind: KindTriangle, Triangle: tri}.Rasterize(false)

		// Three edges of five pixels each, shared vertices repeated
		require.Len(t, result.Outline, 15)
		assert.Equal(t, Point{0, 0}, result.Outline[0])
		assert.Equal(t, Point{4, 0}, result.Outline[4])
		assert.Equal(t, Point{4, 0}, result.Outline[5])
		assert.Equal(t, Point{0, 0}, result.Outline[14])
		assert.Len(t, result.Contour, 15)

		assert.Equal(t, FillTriangle(tri), result.Spans)
		assert.Equal(t, []Slope{{M: 0}, {M: -1}, {Vertical: true}}, result.Slopes)
	})

	t.Run("unknown kind", func(t *testing.T) {
		assert.Panics(t, func() {
			Shape{Kind: ShapeKind(42)}.Rasterize(false)
		})
		assert.Equal(t, "ShapeKind(42)", ShapeKind(42).String())
	})
}

func TestRasterizeAll(t *testing.T) {
	var shapes []Shape
	for r := 0; r < 40; r++ {
		shapes = append(shapes,
			Shape{Kind: KindCircle, Circle: Circle{Center: Point{r, -r}, Radius: r}},
			Shape{Kind: KindTriangle, Triangle: Triangle{pt(0, 0), pt(r, 3), pt(2, r)}},
		)
	}
	shapes = append(shapes, Shape{Name: "bad", Kind: KindCircle, Circle: Circle{Radius: -1}})

	results, errs := RasterizeAll(shapes, true)
	require.Len(t, results, len(shapes))
	require.Len(t, errs, len(shapes))

	for i, shape := range shapes[:len(shapes)-1] {
		assert.NoError(t, errs[i])
		assert.Equal(t, shape.Rasterize(true), results[i], "shape %d", i)
	}

	last := len(shapes) - 1
	assert.ErrorIs(t, errs[last], ErrInvalidRadius)
	assert.Equal(t, Result{}, results[last])
}
