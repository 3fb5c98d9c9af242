package trellis

import "golang.org/x/image/font"

// --- ID counter ---

// nodeIDCounter is a plain counter; trellis is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path.
//
// Parent is a lookup pointer only: the parent owns the child through its
// children list. A node has at most one parent at a time and AddChild
// refuses links that would form a cycle, so the transform walk up the
// Parent chain always terminates.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local, relative to Parent)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Ordering
	ZIndex int

	// Metadata
	UserData any
	EntityID uint32

	// Hit shape in local space; replaced wholesale, never edited in place.
	geometry Geometry

	// Frame fields (NodeTypeFrame)
	camera *Camera

	// Text fields (NodeTypeText)
	text     string
	textFace font.Face
	align    TextAlign

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.Interactable = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no geometry.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node whose geometry is a single rectangle of
// the given size with its top-left at the node origin.
func NewSprite(name string, size Vec2) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite}
	nodeDefaults(n)
	n.geometry = NewGeometryRect(Vec2{}, size)
	return n
}

// NewText creates a text node. Its geometry holds one rectangle per line
// measured with face, and is rebuilt whenever the content, face or
// alignment change.
func NewText(name string, content string, face font.Face) *Node {
	n := &Node{Name: name, Type: NodeTypeText, text: content, textFace: face}
	nodeDefaults(n)
	n.rebuildTextGeometry()
	return n
}

// newFrame creates a frame node. Frames are root boundaries: the transform
// walk stops at them and, for screen queries, applies their camera.
func newFrame(name string, cam *Camera) *Node {
	n := &Node{Name: name, Type: NodeTypeFrame, camera: cam}
	nodeDefaults(n)
	return n
}

// Geometry returns the node's hit shape, or nil if it has none.
func (n *Node) Geometry() Geometry {
	return n.geometry
}

// SetGeometry replaces the node's hit shape. Pass nil to remove it.
func (n *Node) SetGeometry(g Geometry) {
	n.geometry = g
}

// Camera returns the frame's camera, or nil for non-frame nodes.
func (n *Node) Camera() *Camera {
	return n.camera
}

// Text returns the content of a text node.
func (n *Node) Text() string {
	return n.text
}

// SetText changes a text node's content and swaps in freshly measured geometry.
func (n *Node) SetText(content string) {
	if n.text == content {
		return
	}
	n.text = content
	n.rebuildTextGeometry()
}

// SetFont changes a text node's face and swaps in freshly measured geometry.
func (n *Node) SetFont(face font.Face) {
	n.textFace = face
	n.rebuildTextGeometry()
}

// SetTextAlign changes a text node's line alignment.
func (n *Node) SetTextAlign(align TextAlign) {
	if n.align == align {
		return
	}
	n.align = align
	n.rebuildTextGeometry()
}

func (n *Node) rebuildTextGeometry() {
	if n.Type != NodeTypeText {
		return
	}
	if n.textFace == nil {
		n.geometry = nil
		return
	}
	n.geometry = NewTextGeometry(n.text, n.textFace, n.align)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, child is a frame, or child is an ancestor of this
// node (cycle).
func (n *Node) AddChild(child *Node) {
	n.checkAttach(child)
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	n.checkAttach(child)
	if index < 0 || index > len(n.children) {
		panic("trellis: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		if index > len(n.children) {
			index = len(n.children)
		}
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

func (n *Node) checkAttach(child *Node) {
	if child == nil {
		panic("trellis: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if child.Type == NodeTypeFrame {
		panic("trellis: a frame cannot be a child")
	}
	if isAncestor(child, n) {
		panic("trellis: adding child would create a cycle")
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("trellis: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("trellis: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	n.childrenSorted = false
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
	clear(n.sortedChildren)
	n.sortedChildren = n.sortedChildren[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("trellis: child's parent is not this node")
	}
	if index < 0 || index >= len(n.children) {
		panic("trellis: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.childrenSorted = false
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// sortedChildList returns the children in ZIndex order (stable), rebuilding
// the cached order when it is stale. Insertion sort: few children, nearly
// sorted in practice.
func (n *Node) sortedChildList() []*Node {
	if n.childrenSorted && n.sortedChildren != nil {
		return n.sortedChildren
	}
	if n.childrenSorted {
		return n.children
	}
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
	return n.sortedChildren
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.geometry = nil
	n.camera = nil
	n.textFace = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// The cached ZIndex order is invalidated so hit tests stop visiting child.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			n.childrenSorted = false
			return
		}
	}
}
