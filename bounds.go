package trellis

// BoundingBoxBuilder accumulates points into an axis-aligned bounding
// rectangle. The zero value is ready to use and has no bounds until the
// first point is added. Insertion order does not affect the result.
type BoundingBoxBuilder struct {
	left, top, right, bottom float64
	seeded                   bool
}

// AddPoint widens the box to include p. The first point seeds a zero-area
// box; later points never shrink it.
func (b *BoundingBoxBuilder) AddPoint(p Vec2) {
	if !b.seeded {
		b.left, b.right = p.X, p.X
		b.top, b.bottom = p.Y, p.Y
		b.seeded = true
		return
	}
	if p.X < b.left {
		b.left = p.X
	}
	if p.X > b.right {
		b.right = p.X
	}
	if p.Y < b.top {
		b.top = p.Y
	}
	if p.Y > b.bottom {
		b.bottom = p.Y
	}
}

// AddPoints adds every point in ps.
func (b *BoundingBoxBuilder) AddPoints(ps ...Vec2) {
	for _, p := range ps {
		b.AddPoint(p)
	}
}

// AddPolygon adds the four corners of p.
func (b *BoundingBoxBuilder) AddPolygon(p RectPolygon) {
	b.AddPoint(p.LeftUpper)
	b.AddPoint(p.RightUpper)
	b.AddPoint(p.RightLower)
	b.AddPoint(p.LeftLower)
}

// Empty reports whether no point has been added yet.
func (b *BoundingBoxBuilder) Empty() bool {
	return !b.seeded
}

// Reset discards all accumulated points.
func (b *BoundingBoxBuilder) Reset() {
	*b = BoundingBoxBuilder{}
}

// Rect returns the accumulated rectangle. An empty builder returns the zero
// Rect; callers that need to tell the two apart check Empty first.
func (b *BoundingBoxBuilder) Rect() Rect {
	if !b.seeded {
		return Rect{}
	}
	return RectFromEdges(b.left, b.top, b.right, b.bottom)
}

// GeometryRect returns the accumulated rectangle as a new GeometryRect.
func (b *BoundingBoxBuilder) GeometryRect() *GeometryRect {
	r := b.Rect()
	return NewGeometryRect(Vec2{r.X, r.Y}, Vec2{r.Width, r.Height})
}
