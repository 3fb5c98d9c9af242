package trellis

// Node-level geometry queries. Each resolves the node's TransformInfo and
// hands it to the node's Geometry. Nodes without geometry never hit.

// ContainsPoint reports whether the node's geometry contains p, given in
// screen space when toScreen is true and frame-local space otherwise.
func (n *Node) ContainsPoint(p Vec2, toScreen bool) bool {
	if n.geometry == nil {
		return false
	}
	t := n.TransformInfo(toScreen)
	return n.geometry.ContainsPoint(p, &t)
}

// Overlaps reports whether the geometries of n and other overlap. Nodes
// under the same frame are compared in frame-local space, skipping the
// camera; otherwise both are projected to the screen.
func (n *Node) Overlaps(other *Node) (bool, error) {
	if n.geometry == nil || other.geometry == nil {
		return false, nil
	}
	toScreen := !commonFrame(n, other)
	self := n.TransformInfo(toScreen)
	ot := other.TransformInfo(toScreen)
	return n.geometry.Overlaps(other.geometry, &self, &ot)
}

// IsInsideBounds reports whether the node's whole geometry lies within bounds.
// A node without geometry is never inside.
func (n *Node) IsInsideBounds(bounds Rect, toScreen bool) bool {
	if n.geometry == nil {
		return false
	}
	t := n.TransformInfo(toScreen)
	return n.geometry.IsInsideBounds(bounds, &t)
}

// IsOutsideBounds reports whether no part of the node's geometry lies within bounds.
// A node without geometry is neither inside nor outside, so both predicates
// report false for it; use ClassifyBounds to tell that case apart from a
// straddling shape.
func (n *Node) IsOutsideBounds(bounds Rect, toScreen bool) bool {
	if n.geometry == nil {
		return false
	}
	t := n.TransformInfo(toScreen)
	return n.geometry.IsOutsideBounds(bounds, &t)
}

// CrossesBounds reports whether the node's geometry straddles any of the
// requested edges of bounds.
func (n *Node) CrossesBounds(bounds Rect, side Side, toScreen bool) bool {
	if n.geometry == nil {
		return false
	}
	t := n.TransformInfo(toScreen)
	return n.geometry.CrossesBounds(bounds, side, &t)
}

// BoundingBox returns the axis-aligned envelope of the node's geometry.
// The second result is false when the node has no geometry.
func (n *Node) BoundingBox(toScreen bool) (Rect, bool) {
	if n.geometry == nil {
		return Rect{}, false
	}
	t := n.TransformInfo(toScreen)
	return n.geometry.BoundingBox(&t), true
}

// BoundsState classifies the node against bounds.
type BoundsState uint8

const (
	BoundsUnknown  BoundsState = iota // no geometry; both bounds predicates report false
	BoundsInside                      // every corner inside
	BoundsOutside                     // no corner inside
	BoundsStraddle                    // some corners inside, some outside
)

func (s BoundsState) String() string {
	switch s {
	case BoundsInside:
		return "inside"
	case BoundsOutside:
		return "outside"
	case BoundsStraddle:
		return "straddle"
	default:
		return "unknown"
	}
}

// ClassifyBounds reports where the node's geometry sits relative to bounds.
// Inside and outside are not complements: a shape straddling an edge is
// neither.
func (n *Node) ClassifyBounds(bounds Rect, toScreen bool) BoundsState {
	if n.geometry == nil {
		return BoundsUnknown
	}
	t := n.TransformInfo(toScreen)
	switch {
	case n.geometry.IsInsideBounds(bounds, &t):
		return BoundsInside
	case n.geometry.IsOutsideBounds(bounds, &t):
		return BoundsOutside
	default:
		return BoundsStraddle
	}
}

// ContentBounds returns the envelope of every geometry in the subtree
// rooted at n, in n's parent space (n's own transform applied). Used to
// size stacking layouts. The second result is false when the subtree
// carries no geometry.
func ContentBounds(n *Node) (Rect, bool) {
	var b BoundingBoxBuilder
	collectContentBounds(n, n.LocalTransform(), &b)
	return b.Rect(), !b.Empty()
}

func collectContentBounds(n *Node, t TransformInfo, b *BoundingBoxBuilder) {
	if n.geometry != nil {
		for _, p := range n.geometry.Polygons(&t) {
			b.AddPolygon(p)
		}
	}
	for _, child := range n.children {
		collectContentBounds(child, child.LocalTransform().Then(t), b)
	}
}
