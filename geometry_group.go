package trellis

// GeometryRectGroup is an ordered set of rectangles forming one composite
// hit-shape. The member list is fixed at construction; the group
// references its rectangles rather than copying their geometry.
//
// Point and crossing tests succeed when any member succeeds. Inside and
// outside tests require every member to agree. An empty group is
// vacuously both inside and outside any bounds.
type GeometryRectGroup struct {
	rects []*GeometryRect
}

// NewGeometryRectGroup creates a group over rects. The slice is copied; the
// rectangles themselves are shared.
func NewGeometryRectGroup(rects ...*GeometryRect) *GeometryRectGroup {
	owned := make([]*GeometryRect, len(rects))
	copy(owned, rects)
	return &GeometryRectGroup{rects: owned}
}

// Rects returns the member list. The returned slice MUST NOT be mutated.
func (g *GeometryRectGroup) Rects() []*GeometryRect {
	return g.rects
}

// Len returns the number of member rectangles.
func (g *GeometryRectGroup) Len() int {
	return len(g.rects)
}

// Polygons implements Geometry.
func (g *GeometryRectGroup) Polygons(t *TransformInfo) []RectPolygon {
	polys := make([]RectPolygon, len(g.rects))
	for i, r := range g.rects {
		polys[i] = r.CreateRectPolygon(t)
	}
	return polys
}

// Overlaps implements Geometry. Group-vs-group tests the full cross product
// and stops at the first hit.
func (g *GeometryRectGroup) Overlaps(other Geometry, self, otherT *TransformInfo) (bool, error) {
	switch o := other.(type) {
	case *GeometryRect:
		return g.overlapsRect(o, otherT, self)
	case *GeometryRectGroup:
		mine := g.Polygons(self)
		theirs := o.Polygons(otherT)
		for i := range mine {
			for j := range theirs {
				if mine[i].Overlaps(theirs[j]) {
					return true, nil
				}
			}
		}
		return false, nil
	default:
		return false, unsupportedPair(g, other)
	}
}

func (g *GeometryRectGroup) overlapsRect(r *GeometryRect, rectT, selfT *TransformInfo) (bool, error) {
	target := r.CreateRectPolygon(rectT)
	for _, member := range g.rects {
		if member.CreateRectPolygon(selfT).Overlaps(target) {
			return true, nil
		}
	}
	return false, nil
}

// ContainsPoint implements Geometry.
func (g *GeometryRectGroup) ContainsPoint(p Vec2, t *TransformInfo) bool {
	for _, r := range g.rects {
		if r.ContainsPoint(p, t) {
			return true
		}
	}
	return false
}

// IsInsideBounds implements Geometry.
func (g *GeometryRectGroup) IsInsideBounds(bounds Rect, t *TransformInfo) bool {
	for _, r := range g.rects {
		if !r.IsInsideBounds(bounds, t) {
			return false
		}
	}
	return true
}

// IsOutsideBounds implements Geometry.
func (g *GeometryRectGroup) IsOutsideBounds(bounds Rect, t *TransformInfo) bool {
	for _, r := range g.rects {
		if !r.IsOutsideBounds(bounds, t) {
			return false
		}
	}
	return true
}

// CrossesBounds implements Geometry.
func (g *GeometryRectGroup) CrossesBounds(bounds Rect, side Side, t *TransformInfo) bool {
	for _, r := range g.rects {
		if r.CrossesBounds(bounds, side, t) {
			return true
		}
	}
	return false
}

// BoundingBox implements Geometry. Every transformed corner of every member
// is fed to a BoundingBoxBuilder.
func (g *GeometryRectGroup) BoundingBox(t *TransformInfo) Rect {
	var b BoundingBoxBuilder
	for _, r := range g.rects {
		b.AddPolygon(r.CreateRectPolygon(t))
	}
	return b.Rect()
}
