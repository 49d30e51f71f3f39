package internal

// Even-odd point in triangle test. This is the exact geometric answer, used to
// check the fill, which is only an approximation of it near the edges.
func (t Triangle) ContainsPoint(p RealPoint) bool {
	return t.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray cast from p toward +x. An edge counts when
// its endpoints straddle p's row (half open, so a vertex on the row is counted
// once) and the crossing lies strictly right of p.
func (t Triangle) CrossingCount(p RealPoint) int {
	vertices := t.Vertices()
	crossingCount := 0
	for i, vertex := range vertices {
		nextVertex := vertices[CircularIndex(i+1, len(vertices))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

// Edges in vertex order: AB, BC, CA.
func (t Triangle) Edges() [3][2]RealPoint {
	vertices := t.Vertices()
	var edges [3][2]RealPoint
	for i := range vertices {
		edges[i] = [2]RealPoint{vertices[i], vertices[CircularIndex(i+1, len(vertices))]}
	}
	return edges
}
