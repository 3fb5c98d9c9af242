package trellis

// LocalTransform returns the node's own transform relative to its parent.
func (n *Node) LocalTransform() TransformInfo {
	return TransformInfo{
		Position: Vec2{n.X, n.Y},
		Angle:    n.Rotation,
		Scale:    Vec2{n.ScaleX, n.ScaleY},
	}
}

// TransformInfo resolves the node's position, rotation and scale by folding
// its local transform up the parent chain. The walk stops at the enclosing
// frame, whose own placement is not applied. When toScreen is true and a
// frame with a camera was reached, the camera transform is applied last,
// giving screen coordinates; otherwise the result is frame-local.
//
// Per ancestor, from the node up:
//
//	angle    += parent.Rotation
//	scale    *= parent.Scale
//	position  = Rotate(position, parent.Rotation) * parent.Scale + parent.Position
//
// A node with no parent returns its local transform. Runs in O(depth).
func (n *Node) TransformInfo(toScreen bool) TransformInfo {
	t := n.LocalTransform()
	curr := n.Parent
	for curr != nil && curr.Type != NodeTypeFrame {
		t = t.Then(curr.LocalTransform())
		curr = curr.Parent
	}
	if toScreen && curr != nil && curr.camera != nil {
		t = t.Then(curr.camera.TransformInfo())
	}
	return t
}

// Frame returns the nearest enclosing frame, or nil if the node is not
// attached under one. A frame returns itself.
func (n *Node) Frame() *Node {
	for p := n; p != nil; p = p.Parent {
		if p.Type == NodeTypeFrame {
			return p
		}
	}
	return nil
}

// commonFrame reports whether a and b are attached under the same frame.
func commonFrame(a, b *Node) bool {
	fa := a.Frame()
	return fa != nil && fa == b.Frame()
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// SetRotation sets the node's rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
}

// --- Coordinate conversion ---

// LocalToFrame converts a local-space point to frame-local space.
func (n *Node) LocalToFrame(p Vec2) Vec2 {
	return n.TransformInfo(false).Translate(p)
}

// FrameToLocal converts a frame-local point to this node's local space.
func (n *Node) FrameToLocal(p Vec2) Vec2 {
	return n.TransformInfo(false).TranslateBack(p)
}

// LocalToScreen converts a local-space point to screen space.
func (n *Node) LocalToScreen(p Vec2) Vec2 {
	return n.TransformInfo(true).Translate(p)
}

// ScreenToLocal converts a screen-space point to this node's local space.
func (n *Node) ScreenToLocal(p Vec2) Vec2 {
	return n.TransformInfo(true).TranslateBack(p)
}
