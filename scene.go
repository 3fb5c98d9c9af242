package trellis

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, spatial monitor events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event SpatialEvent)
}

// Scene is the top-level object that owns the frames, the deferred
// structural mutation queue and the spatial monitors.
//
// Structural changes requested while the scene is being walked (from hit
// tests, monitor callbacks, or any per-frame pass) should go through Defer
// and its helpers; they are applied at the end of Update, never in the
// middle of a walk.
type Scene struct {
	frames []*Node
	store  EntityStore
	debug  bool

	deferred      []func()
	deferredSpare []func()

	monitors monitorRegistry
	handlers      []eventHandler
	dispatching   int
	handlersDirty bool
	nextID        uint32

	hitBuf   []*Node
	queryBuf []*Node
}

// NewScene creates an empty scene with the default configuration.
func NewScene() *Scene {
	return NewSceneWithConfig(DefaultConfig())
}

// NewSceneWithConfig creates an empty scene configured by cfg.
func NewSceneWithConfig(cfg Config) *Scene {
	s := &Scene{
		deferred:      make([]func(), 0, cfg.DeferredCap),
		deferredSpare: make([]func(), 0, cfg.DeferredCap),
	}
	if cfg.MaxTreeDepth > 0 {
		debugMaxTreeDepth = cfg.MaxTreeDepth
	}
	if cfg.MaxChildCount > 0 {
		debugMaxChildCount = cfg.MaxChildCount
	}
	s.SetDebugMode(cfg.Debug)
	return s
}

// NewFrame creates a root frame shown through a camera in the given
// screen-space viewport, and adds it to the scene.
func (s *Scene) NewFrame(name string, viewport Rect) *Node {
	f := newFrame(name, newCamera(viewport))
	s.frames = append(s.frames, f)
	return f
}

// RemoveFrame removes a frame from the scene. The frame is not disposed.
func (s *Scene) RemoveFrame(frame *Node) {
	for i, f := range s.frames {
		if f == frame {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

// Frames returns the scene's frames in the order they were added.
// The returned slice MUST NOT be mutated.
func (s *Scene) Frames() []*Node {
	return s.frames
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree-shape warnings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Update advances cameras, applies deferred structural mutations, then
// evaluates spatial monitors against the settled tree.
func (s *Scene) Update(dt float32) {
	for _, f := range s.frames {
		if f.camera != nil {
			f.camera.update(dt)
		}
	}
	s.flushDeferred()
	s.evaluateMonitors()
}

// --- Deferred structural mutation ---

// Defer queues fn to run at the end of the current Update. Queued
// functions run in FIFO order; anything queued while the queue is being
// applied runs on the next Update.
func (s *Scene) Defer(fn func()) {
	s.deferred = append(s.deferred, fn)
}

// DeferAddChild queues parent.AddChild(child).
func (s *Scene) DeferAddChild(parent, child *Node) {
	s.Defer(func() { parent.AddChild(child) })
}

// DeferRemove queues node.RemoveFromParent().
func (s *Scene) DeferRemove(node *Node) {
	s.Defer(node.RemoveFromParent)
}

// DeferDispose queues node.Dispose().
func (s *Scene) DeferDispose(node *Node) {
	s.Defer(node.Dispose)
}

// PendingMutations returns the number of queued deferred mutations.
func (s *Scene) PendingMutations() int {
	return len(s.deferred)
}

// FlushDeferred applies queued mutations immediately. Update calls it;
// callers driving their own loop may call it directly once their walk is done.
func (s *Scene) FlushDeferred() {
	s.flushDeferred()
}

func (s *Scene) flushDeferred() {
	if len(s.deferred) == 0 {
		return
	}
	pending := s.deferred
	s.deferred = s.deferredSpare[:0]
	logger.Debug("applying deferred mutations", "count", len(pending))
	for _, fn := range pending {
		fn()
	}
	clear(pending)
	s.deferredSpare = pending[:0]
}

// --- Spatial queries ---

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending nodes with geometry to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.geometry != nil {
		buf = append(buf, n)
	}
	for _, child := range n.sortedChildList() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// HitTest finds the topmost interactable node under frame whose geometry
// contains the screen point p. Returns nil if nothing is hit.
func (s *Scene) HitTest(frame *Node, p Vec2) *Node {
	s.hitBuf = collectInteractable(frame, s.hitBuf[:0])
	defer clear(s.hitBuf)

	// Iterate backward (reverse painter order): topmost node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		if n.ContainsPoint(p, true) {
			return n
		}
	}
	return nil
}

// HitTestAll returns the topmost hit across all frames, searching frames
// from last added to first.
func (s *Scene) HitTestAll(p Vec2) *Node {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if !f.camera.Viewport.Contains(p) {
			continue
		}
		if n := s.HitTest(f, p); n != nil {
			return n
		}
	}
	return nil
}

// QueryOverlaps appends to buf every node in node's frame whose geometry
// overlaps node's geometry. Comparisons run in frame-local space.
func (s *Scene) QueryOverlaps(node *Node, buf []*Node) ([]*Node, error) {
	frame := node.Frame()
	if frame == nil || node.geometry == nil {
		return buf, nil
	}
	s.queryBuf = collectInteractable(frame, s.queryBuf[:0])
	defer clear(s.queryBuf)

	self := node.TransformInfo(false)
	for _, other := range s.queryBuf {
		if other == node {
			continue
		}
		ot := other.TransformInfo(false)
		hit, err := node.geometry.Overlaps(other.geometry, &self, &ot)
		if err != nil {
			return buf, err
		}
		if hit {
			buf = append(buf, other)
		}
	}
	return buf, nil
}
