package pencil

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Polygon is a closed shape defined by an ordered list of vertices.
// Consecutive vertices form its edges, the last one connecting back to the
// first. Vertices are expressed in the parent's coordinate space and the
// first vertex is the polygon's anchor.
type Polygon struct {
	Component
	points []Position
	bounds Rect
}

// NewPolygon creates a polygon from at least 3 vertices. The points are
// copied; later changes to the caller's slice do not affect the polygon.
func NewPolygon(points []Position, opts ...Option) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w, but only %d given", ErrTooFewVertices, len(points))
	}
	p := &Polygon{points: append([]Position(nil), points...)}
	p.bounds = BoundsOf(p.points)
	p.initComponent(p, p.points[0], applyOptions(defaultOptions(), opts))
	return p, nil
}

// Points returns a copy of the vertices in construction order.
func (p *Polygon) Points() []Position {
	return append([]Position(nil), p.points...)
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (p *Polygon) Bounds() Rect {
	return p.bounds
}

// Trace emits a line to every vertex, relative to the anchor, then closes
// the path. It does not fill or stroke.
func (p *Polygon) Trace(path *gg.Path) {
	anchor := p.points[0]
	for _, pt := range p.points {
		d := pt.Subtract(anchor)
		path.LineTo(d.X, d.Y)
	}
	path.Close()
}

// IsHover reports whether pos lies inside the polygon using the even-odd
// rule: a horizontal ray cast from pos towards +X crosses the outline an odd
// number of times iff pos is inside. All N edges are tested, including the
// closing edge from the last vertex back to the first.
func (p *Polygon) IsHover(pos Position) bool {
	if !p.hoverable(pos, p.bounds) {
		return false
	}
	crossings := 0
	n := len(p.points)
	for i := 0; i < n; i++ {
		if rayCrosses(pos, p.points[i], p.points[(i+1)%n]) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// rayCrosses reports whether the edge a-b crosses the ray going from o to
// +X. Edges are half-open in Y so a ray through a shared vertex is counted
// once; horizontal edges never cross.
func rayCrosses(o, a, b Position) bool {
	if (a.Y > o.Y) == (b.Y > o.Y) {
		return false
	}
	x := a.X + (o.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
	return o.X < x
}

// SetPosition moves the polygon so that its first vertex lands on pos,
// translating every other vertex by the same amount.
func (p *Polygon) SetPosition(pos Position) {
	d := pos.Subtract(p.points[0])
	for i := range p.points {
		p.points[i] = p.points[i].Add(d)
	}
	p.bounds = BoundsOf(p.points)
	p.position = pos
}
