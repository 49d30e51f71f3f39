package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSVG(t *testing.T) {
	t.Run("mixed shapes in document order", func(t *testing.T) {
		shapes := LoadFixture("mixed")
		require.Len(t, shapes, 4)

		assert.Equal(t, Shape{Name: "wheel", Kind: KindCircle, Circle: Circle{Radius: 5}}, shapes[0])
		assert.Equal(t, Shape{Name: "spoke", Kind: KindLine, Line: [2]RealPoint{{0, 0}, {4, 0}}}, shapes[1])
		assert.Equal(t, Shape{
			Name:     "sail",
			Kind:     KindTriangle,
			Triangle: Triangle{RealPoint{0, 0}, RealPoint{10, 3}, RealPoint{3, 8}},
		}, shapes[2])
		assert.Equal(t, Shape{Name: "dot", Kind: KindCircle, Circle: Circle{Center: Point{-7, 3}}}, shapes[3])
	})

	t.Run("fixture fill", func(t *testing.T) {
		shapes := LoadFixture("right_triangle")
		require.Len(t, shapes, 1)
		assert.Equal(t, "hypotenuse", shapes[0].Name)
		assert.Equal(t, []Span{
			{0, 0, 4},
			{1, 0, 3},
			{2, 0, 2},
			{3, 0, 1},
			{4, 0, 0},
		}, FillTriangle(shapes[0].Triangle))
	})

	t.Run("polygon that isn't a triangle", func(t *testing.T) {
		_, err := LoadSVG(bytes.NewReader(ReadFixture("quad")))
		assert.EqualError(t, err, `polygon "square" has 4 points, only triangles are supported`)
	})

	for name, doc := range map[string]string{
		"circle without radius": `<svg><circle id="c" cx="1" cy="2"/></svg>`,
		"fractional radius":     `<svg><circle id="c" r="2.5"/></svg>`,
		"bad line coordinate":   `<svg><line id="l" x1="zero"/></svg>`,
		"odd point list":        `<svg><polygon id="p" points="0,0 1,1 2"/></svg>`,
		"not xml":               `<svg><circle`,
	} {
		doc := doc
		t.Run(name, func(t *testing.T) {
			_, err := LoadSVG(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestParsePointList(t *testing.T) {
	points, err := parsePointList(" 0,0 4.5 ,1\n-2,3e1 ")
	require.NoError(t, err)
	assert.Equal(t, []RealPoint{{0, 0}, {4.5, 1}, {-2, 30}}, points)

	points, err = parsePointList("")
	require.NoError(t, err)
	assert.Empty(t, points)
}
