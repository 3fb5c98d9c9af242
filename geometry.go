package trellis

// Geometry is the hit-shape attached to a Node, defined in the node's local
// space. Every test takes the TransformInfo that places the shape in the
// space the query is asked in; a nil transform means local space.
//
// Geometry values are replaced wholesale when the visual they describe
// changes; they are not mutated in place by the scene.
type Geometry interface {
	// Overlaps reports whether the shape overlaps other. The result does not
	// depend on which side the call is made from. A combination no
	// implementation can test yields an error wrapping ErrUnsupportedGeometry.
	Overlaps(other Geometry, self, otherT *TransformInfo) (bool, error)
	// ContainsPoint reports whether any part of the shape contains p.
	ContainsPoint(p Vec2, t *TransformInfo) bool
	// IsInsideBounds reports whether the whole shape lies within bounds.
	IsInsideBounds(bounds Rect, t *TransformInfo) bool
	// IsOutsideBounds reports whether no part of the shape lies within bounds.
	IsOutsideBounds(bounds Rect, t *TransformInfo) bool
	// CrossesBounds reports whether any part straddles one of the given edges.
	CrossesBounds(bounds Rect, side Side, t *TransformInfo) bool
	// BoundingBox returns the axis-aligned envelope of the transformed shape.
	BoundingBox(t *TransformInfo) Rect
	// Polygons returns the transformed rectangles making up the shape.
	Polygons(t *TransformInfo) []RectPolygon
}

// rectOverlapper is implemented by geometries that know how to test
// themselves against a plain GeometryRect.
type rectOverlapper interface {
	overlapsRect(r *GeometryRect, rectT, selfT *TransformInfo) (bool, error)
}

// GeometryRect is a single rectangle in local space: Position is the
// top-left corner and Size the width and height.
type GeometryRect struct {
	Position Vec2
	Size     Vec2
}

// NewGeometryRect creates a rectangle at position with the given size.
func NewGeometryRect(position, size Vec2) *GeometryRect {
	return &GeometryRect{Position: position, Size: size}
}

// CreateRectPolygon converts the rectangle into a RectPolygon placed by t.
// A nil t returns the untransformed polygon with angle 0.
func (r *GeometryRect) CreateRectPolygon(t *TransformInfo) RectPolygon {
	lu := r.Position
	rl := r.Position.Add(r.Size)
	if t == nil {
		return NewRectPolygon(lu, rl)
	}
	ru := Vec2{rl.X, lu.Y}
	ll := Vec2{lu.X, rl.Y}
	return NewOrientedRectPolygon(
		t.Translate(lu),
		t.Translate(ru),
		t.Translate(rl),
		t.Translate(ll),
		t.Angle,
	)
}

// Overlaps implements Geometry. Rect-vs-rect is handled here; any other
// shape is asked to test itself against this rectangle.
func (r *GeometryRect) Overlaps(other Geometry, self, otherT *TransformInfo) (bool, error) {
	switch o := other.(type) {
	case *GeometryRect:
		return r.CreateRectPolygon(self).Overlaps(o.CreateRectPolygon(otherT)), nil
	case rectOverlapper:
		return o.overlapsRect(r, self, otherT)
	default:
		return false, unsupportedPair(r, other)
	}
}

// ContainsPoint implements Geometry.
func (r *GeometryRect) ContainsPoint(p Vec2, t *TransformInfo) bool {
	return r.CreateRectPolygon(t).ContainsPoint(p)
}

// IsInsideBounds implements Geometry.
func (r *GeometryRect) IsInsideBounds(bounds Rect, t *TransformInfo) bool {
	return r.CreateRectPolygon(t).IsInsideBounds(bounds)
}

// IsOutsideBounds implements Geometry.
func (r *GeometryRect) IsOutsideBounds(bounds Rect, t *TransformInfo) bool {
	return r.CreateRectPolygon(t).IsOutsideBounds(bounds)
}

// CrossesBounds implements Geometry.
func (r *GeometryRect) CrossesBounds(bounds Rect, side Side, t *TransformInfo) bool {
	return r.CreateRectPolygon(t).CrossesBounds(bounds, side)
}

// BoundingBox implements Geometry.
func (r *GeometryRect) BoundingBox(t *TransformInfo) Rect {
	return r.CreateRectPolygon(t).Bounds()
}

// Polygons implements Geometry.
func (r *GeometryRect) Polygons(t *TransformInfo) []RectPolygon {
	return []RectPolygon{r.CreateRectPolygon(t)}
}
