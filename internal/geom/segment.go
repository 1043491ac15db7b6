package geom

import "math"

// Segment is a directed line segment from A to B in world or view space.
type Segment struct {
	A, B Vec2
}

// NewSegment builds a segment from two endpoints.
func NewSegment(a, b Vec2) Segment {
	return Segment{A: a, B: b}
}

// EdgeSide returns the signed distance (scaled by edge length) of point
// from the line through the segment; positive for points to the right
// of A->B, negative for points to the left.
func (s Segment) EdgeSide(point Vec2) float64 {
	edge := s.B.Sub(s.A)
	rel := point.Sub(s.A)
	return rel.Cross(edge)
}

// Intersection returns the point where s and other cross, if any,
// restricted to both segments' parameter range [0,1].
func (s Segment) Intersection(other Segment) (Vec2, bool) {
	edge1 := s.B.Sub(s.A)
	edge2 := other.B.Sub(other.A)

	cross := edge1.Cross(edge2)
	if cross == 0 {
		return Vec2{}, false
	}

	start := other.A.Sub(s.A)
	denom := 1 / cross

	t := start.Cross(edge2) * denom
	u := start.Cross(edge1) * denom

	if t >= 0 && t <= 1 && u >= 0 && u <= 1 {
		return s.A.Add(edge1.Mul(t)), true
	}
	return Vec2{}, false
}

// Intersects reports whether s and other cross within both segments.
func (s Segment) Intersects(other Segment) bool {
	_, ok := s.Intersection(other)
	return ok
}

// Length returns the segment's length.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Direction returns the unit vector from A to B.
func (s Segment) Direction() Vec2 {
	return s.B.Sub(s.A).Normalize()
}

// Normal returns the unit vector perpendicular to A->B, rotated 90
// degrees counter-clockwise from Direction (left-hand normal).
func (s Segment) Normal() Vec2 {
	d := s.Direction()
	return Vec2{X: -d.Y, Y: d.X}
}

// Polygon is a simple, not-necessarily-convex polygon described by its
// ordered vertices. The renderer only ever builds the four-vertex view
// frustum trapezoid with it.
type Polygon struct {
	Vertices []Vec2
}

// NewPolygon builds a polygon from ordered vertices.
func NewPolygon(vertices []Vec2) Polygon {
	return Polygon{Vertices: vertices}
}

// edge returns the polygon's i-th edge, wrapping from the last vertex to
// the first.
func (p Polygon) edge(i int) Segment {
	n := len(p.Vertices)
	return Segment{A: p.Vertices[i], B: p.Vertices[(i+1)%n]}
}

// ContainsPoint reports whether point lies inside p using the standard
// ray-casting parity test.
func (p Polygon) ContainsPoint(point Vec2) bool {
	inside := false
	n := len(p.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > point.Y) != (vj.Y > point.Y) {
			xCross := vj.X + (point.Y-vj.Y)/(vi.Y-vj.Y)*(vi.X-vj.X)
			if point.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// IntersectsSegment reports whether seg crosses any edge of p.
func (p Polygon) IntersectsSegment(seg Segment) bool {
	for i := range p.Vertices {
		if seg.Intersects(p.edge(i)) {
			return true
		}
	}
	return false
}

// Extents returns the axis-aligned bounding min/max of p's vertices.
func (p Polygon) Extents() (min, max Vec2) {
	min = Vec2{X: math.Inf(1), Y: math.Inf(1)}
	max = Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, v := range p.Vertices {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// OverlapsPolygon reports whether s overlaps p: either s crosses an
// edge of p, or one of s's endpoints lies inside p. A cheap bounding-box
// rejection runs first since this is called once per wall per frame.
func (s Segment) OverlapsPolygon(p Polygon) bool {
	min, max := p.Extents()
	if s.A.X < min.X && s.B.X < min.X {
		return false
	}
	if s.A.X > max.X && s.B.X > max.X {
		return false
	}
	if s.A.Y < min.Y && s.B.Y < min.Y {
		return false
	}
	if s.A.Y > max.Y && s.B.Y > max.Y {
		return false
	}

	if p.IntersectsSegment(s) {
		return true
	}
	return p.ContainsPoint(s.A) || p.ContainsPoint(s.B)
}
