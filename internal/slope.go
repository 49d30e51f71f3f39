package internal

import "strconv"

// Slope of a segment. A vertical segment has no finite slope; it reports
// Vertical and leaves M at zero instead of dividing by zero.
type Slope struct {
	M        float64
	Vertical bool
}

func SlopeOf(p1, p2 RealPoint) Slope {
	run := p2.X - p1.X
	if run == 0 {
		return Slope{Vertical: true}
	}
	return Slope{M: (p2.Y - p1.Y) / run}
}

// Slopes of AB, BC and CA, in the order the vertices were given.
func TriangleSlopes(t Triangle) [3]Slope {
	return [3]Slope{
		SlopeOf(t.A, t.B),
		SlopeOf(t.B, t.C),
		SlopeOf(t.C, t.A),
	}
}

func (s Slope) String() string {
	if s.Vertical {
		return "undefined"
	}
	return strconv.FormatFloat(s.M, 'g', -1, 64)
}
