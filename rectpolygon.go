package trellis

import "math"

// RectPolygon is a possibly rotated rectangle expressed as its four corners
// plus the rotation angle. It is the primitive every collision query is
// answered on.
//
// Corners are ordered clockwise (Y down) starting at LeftUpper in the
// rectangle's own frame, so RightUpper-LeftUpper and RightUpper-RightLower
// are perpendicular edge directions.
type RectPolygon struct {
	LeftUpper  Vec2
	RightUpper Vec2
	RightLower Vec2
	LeftLower  Vec2
	Angle      float64

	center Vec2
	radius float64
}

// NewRectPolygon creates an unrotated polygon from two opposite corners.
func NewRectPolygon(leftUpper, rightLower Vec2) RectPolygon {
	p := RectPolygon{
		LeftUpper:  leftUpper,
		RightUpper: Vec2{rightLower.X, leftUpper.Y},
		RightLower: rightLower,
		LeftLower:  Vec2{leftUpper.X, rightLower.Y},
	}
	p.cache()
	return p
}

// NewOrientedRectPolygon creates a polygon from four explicit corners and
// the angle they were rotated by.
func NewOrientedRectPolygon(leftUpper, rightUpper, rightLower, leftLower Vec2, angle float64) RectPolygon {
	p := RectPolygon{
		LeftUpper:  leftUpper,
		RightUpper: rightUpper,
		RightLower: rightLower,
		LeftLower:  leftLower,
		Angle:      angle,
	}
	p.cache()
	return p
}

func (p *RectPolygon) cache() {
	p.center = p.LeftUpper.Lerp(p.RightLower, 0.5)
	p.radius = p.RightLower.Sub(p.LeftUpper).Length() / 2
}

// Center returns the midpoint of the diagonal.
func (p RectPolygon) Center() Vec2 {
	return p.center
}

// Radius returns the circumscribed-circle radius (half the diagonal).
func (p RectPolygon) Radius() float64 {
	return p.radius
}

// Size returns the width and height inferred from the corner deltas. Only
// meaningful when the polygon is unrotated.
func (p RectPolygon) Size() Vec2 {
	return p.RightLower.Sub(p.LeftUpper)
}

// Points returns the corners in clockwise order starting at LeftUpper.
func (p RectPolygon) Points() [4]Vec2 {
	return [4]Vec2{p.LeftUpper, p.RightUpper, p.RightLower, p.LeftLower}
}

// Bounds returns the axis-aligned bounding rectangle of the corners.
func (p RectPolygon) Bounds() Rect {
	var b BoundingBoxBuilder
	b.AddPolygon(p)
	return b.Rect()
}

// ContainsPoint reports whether pt lies inside or on the edge of the
// polygon. The rectangle and the point are both rotated back by -Angle,
// which axis-aligns the rectangle, and then compared as a plain box.
func (p RectPolygon) ContainsPoint(pt Vec2) bool {
	lu := p.LeftUpper.Rotate(-p.Angle)
	rl := p.RightLower.Rotate(-p.Angle)
	q := pt.Rotate(-p.Angle)

	minX, maxX := math.Min(lu.X, rl.X), math.Max(lu.X, rl.X)
	minY, maxY := math.Min(lu.Y, rl.Y), math.Max(lu.Y, rl.Y)
	return q.X >= minX && q.X <= maxX && q.Y >= minY && q.Y <= maxY
}

// Overlaps reports whether p and other share any point. Touching edges
// count as overlapping.
func (p RectPolygon) Overlaps(other RectPolygon) bool {
	if circlesApart(p, other) {
		return false
	}
	if isAxisAligned(p.Angle) && isAxisAligned(other.Angle) {
		return testAlignedCollision(p, other)
	}
	return testOrientedCollision(p, other)
}

// IsInsideBounds reports whether all four corners lie within bounds.
func (p RectPolygon) IsInsideBounds(bounds Rect) bool {
	return bounds.Contains(p.LeftUpper) && bounds.Contains(p.RightUpper) &&
		bounds.Contains(p.RightLower) && bounds.Contains(p.LeftLower)
}

// IsOutsideBounds reports whether no corner lies within bounds. A polygon
// straddling an edge is neither inside nor outside.
func (p RectPolygon) IsOutsideBounds(bounds Rect) bool {
	return !bounds.Contains(p.LeftUpper) && !bounds.Contains(p.RightUpper) &&
		!bounds.Contains(p.RightLower) && !bounds.Contains(p.LeftLower)
}

// CrossesBounds reports whether the polygon straddles any of the requested
// edges of bounds. A crossing only counts when every corner stays within
// the perpendicular extent of that edge, so the polygon passes through the
// edge segment rather than its extended line.
func (p RectPolygon) CrossesBounds(bounds Rect, side Side) bool {
	pts := p.Points()
	if side&SideLeft != 0 && crossesVertical(pts, bounds.Left(), bounds.Top(), bounds.Bottom()) {
		return true
	}
	if side&SideRight != 0 && crossesVertical(pts, bounds.Right(), bounds.Top(), bounds.Bottom()) {
		return true
	}
	if side&SideTop != 0 && crossesHorizontal(pts, bounds.Top(), bounds.Left(), bounds.Right()) {
		return true
	}
	if side&SideBottom != 0 && crossesHorizontal(pts, bounds.Bottom(), bounds.Left(), bounds.Right()) {
		return true
	}
	return false
}

func crossesVertical(pts [4]Vec2, x, top, bottom float64) bool {
	greater := 0
	for _, pt := range pts {
		if pt.Y < top || pt.Y > bottom {
			return false
		}
		if pt.X > x {
			greater++
		}
	}
	return greater != 0 && greater != len(pts)
}

func crossesHorizontal(pts [4]Vec2, y, left, right float64) bool {
	greater := 0
	for _, pt := range pts {
		if pt.X < left || pt.X > right {
			return false
		}
		if pt.Y > y {
			greater++
		}
	}
	return greater != 0 && greater != len(pts)
}

// --- Overlap stages ---

// isAxisAligned reports whether angle is a whole number of quarter turns.
func isAxisAligned(angle float64) bool {
	return NearlyZero(math.Remainder(angle, math.Pi/2))
}

// circlesApart is the fast reject: the circumscribed circles do not touch.
func circlesApart(a, b RectPolygon) bool {
	r := a.radius + b.radius
	d := a.center.Sub(b.center)
	return d.LengthSquared() > r*r
}

// testAlignedCollision compares extents directly. Both polygons must be
// axis-aligned.
func testAlignedCollision(a, b RectPolygon) bool {
	aMinX, aMaxX := math.Min(a.LeftUpper.X, a.RightLower.X), math.Max(a.LeftUpper.X, a.RightLower.X)
	aMinY, aMaxY := math.Min(a.LeftUpper.Y, a.RightLower.Y), math.Max(a.LeftUpper.Y, a.RightLower.Y)
	bMinX, bMaxX := math.Min(b.LeftUpper.X, b.RightLower.X), math.Max(b.LeftUpper.X, b.RightLower.X)
	bMinY, bMaxY := math.Min(b.LeftUpper.Y, b.RightLower.Y), math.Max(b.LeftUpper.Y, b.RightLower.Y)

	return aMinX <= bMaxX && bMinX <= aMaxX &&
		aMinY <= bMaxY && bMinY <= aMaxY
}

// testOrientedCollision runs the separating axis test over the two edge
// directions of each polygon.
func testOrientedCollision(a, b RectPolygon) bool {
	axes := [4]Vec2{
		a.RightUpper.Sub(a.LeftUpper),
		a.RightUpper.Sub(a.RightLower),
		b.LeftUpper.Sub(b.LeftLower),
		b.LeftUpper.Sub(b.RightUpper),
	}
	for _, axis := range axes {
		if !hasProjectionOverlapOnAxis(a, b, axis) {
			return false
		}
	}
	return true
}

// projection is the range covered by a polygon projected onto an axis.
type projection struct {
	Min, Max float64
}

// project projects the corners onto axis. The axis is not normalized; both
// polygons share the same scale factor so only relative order matters.
func project(p RectPolygon, axis Vec2) projection {
	lo, hi := minMax4(
		p.LeftUpper.Dot(axis),
		p.RightUpper.Dot(axis),
		p.RightLower.Dot(axis),
		p.LeftLower.Dot(axis),
	)
	return projection{Min: lo, Max: hi}
}

func hasProjectionOverlapOnAxis(a, b RectPolygon, axis Vec2) bool {
	pa := project(a, axis)
	pb := project(b, axis)
	return pa.Min <= pb.Max && pb.Min <= pa.Max
}
