package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlopeOf(t *testing.T) {
	assert.Equal(t, Slope{M: 0.5}, SlopeOf(pt(0, 0), pt(4, 2)))
	assert.Equal(t, Slope{M: -1}, SlopeOf(pt(4, 0), pt(0, 4)))
	assert.Equal(t, Slope{M: 0}, SlopeOf(pt(-3, 7), pt(9, 7)))

	t.Run("vertical", func(t *testing.T) {
		slope := SlopeOf(pt(2, 1), pt(2, 9))
		assert.True(t, slope.Vertical)
		assert.Equal(t, "undefined", slope.String())
	})

	t.Run("same point", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.True(t, SlopeOf(pt(5, 5), pt(5, 5)).Vertical)
		})
	})

	t.Run("direction doesn't matter", func(t *testing.T) {
		a, b := RealPoint{1.5, -2}, RealPoint{-4, 3.25}
		assert.InDelta(t, SlopeOf(a, b).M, SlopeOf(b, a).M, 1e-15)
	})
}

func TestTriangleSlopes(t *testing.T) {
	slopes := TriangleSlopes(Triangle{pt(0, 0), pt(4, 0), pt(0, 4)})
	assert.Equal(t, Slope{M: 0}, slopes[0])
	assert.Equal(t, Slope{M: -1}, slopes[1])
	assert.Equal(t, Slope{Vertical: true}, slopes[2])

	assert.Equal(t, "0", slopes[0].String())
	assert.Equal(t, "-1", slopes[1].String())
	assert.Equal(t, "0.25", Slope{M: 0.25}.String())
}
