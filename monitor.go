package trellis

import "slices"

// EventType identifies a kind of spatial monitor event.
type EventType uint8

const (
	EventBoundsEnter  EventType = iota // node became fully inside the watched bounds
	EventBoundsExit                    // node became fully outside the watched bounds
	EventBoundsCross                   // node started straddling a watched edge
	EventOverlapBegin                  // two watched nodes started overlapping
	EventOverlapEnd                    // two watched nodes stopped overlapping
)

func (e EventType) String() string {
	switch e {
	case EventBoundsEnter:
		return "bounds-enter"
	case EventBoundsExit:
		return "bounds-exit"
	case EventBoundsCross:
		return "bounds-cross"
	case EventOverlapBegin:
		return "overlap-begin"
	case EventOverlapEnd:
		return "overlap-end"
	default:
		return "unknown"
	}
}

// SpatialEvent carries a monitor transition. Other is set for overlap
// events; Bounds and Sides for bounds events.
type SpatialEvent struct {
	Type          EventType
	Node          *Node
	Other         *Node
	EntityID      uint32
	OtherEntityID uint32
	Bounds        Rect
	Sides         Side
}

type boundsMonitor struct {
	id       uint32
	node     *Node
	bounds   Rect
	sides    Side
	toScreen bool
	state    BoundsState
	crossing bool
}

type overlapMonitor struct {
	id          uint32
	a, b        *Node
	overlapping bool
}

type monitorRegistry struct {
	bounds   []boundsMonitor
	overlaps []overlapMonitor
}

type eventHandler struct {
	id uint32
	fn func(SpatialEvent)
}

// Handle unregisters a monitor or event callback.
type Handle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters whatever the handle refers to. Safe to call twice.
func (h Handle) Remove() {
	if h.scene == nil {
		return
	}
	h.scene.removeByID(h.id)
}

func (s *Scene) newID() uint32 {
	s.nextID++
	return s.nextID
}

// OnSpatialEvent registers a callback for monitor transitions. Callbacks
// run at the end of Update, after deferred mutations; structural changes
// made from them should go through Defer.
func (s *Scene) OnSpatialEvent(fn func(SpatialEvent)) Handle {
	id := s.newID()
	s.handlers = append(s.handlers, eventHandler{id: id, fn: fn})
	return Handle{id: id, scene: s}
}

// WatchBounds monitors node against bounds. EventBoundsEnter fires when
// the node's geometry becomes fully inside, EventBoundsExit when it
// becomes fully outside, and EventBoundsCross when it starts straddling
// one of sides. Bounds are frame-local unless toScreen is true.
func (s *Scene) WatchBounds(node *Node, bounds Rect, sides Side, toScreen bool) Handle {
	id := s.newID()
	s.monitors.bounds = append(s.monitors.bounds, boundsMonitor{
		id:       id,
		node:     node,
		bounds:   bounds,
		sides:    sides,
		toScreen: toScreen,
	})
	return Handle{id: id, scene: s}
}

// WatchOverlap monitors a pair of nodes, firing EventOverlapBegin and
// EventOverlapEnd as their geometries start and stop overlapping.
func (s *Scene) WatchOverlap(a, b *Node) Handle {
	id := s.newID()
	s.monitors.overlaps = append(s.monitors.overlaps, overlapMonitor{id: id, a: a, b: b})
	return Handle{id: id, scene: s}
}

func (s *Scene) removeByID(id uint32) {
	for i := range s.handlers {
		if s.handlers[i].id == id {
			if s.dispatching > 0 {
				// emit is walking the slice; compacted once it returns.
				s.handlers[i].fn = nil
				s.handlersDirty = true
			} else {
				s.handlers = slices.Delete(s.handlers, i, i+1)
			}
			return
		}
	}
	for i := range s.monitors.bounds {
		if s.monitors.bounds[i].id == id {
			s.monitors.bounds = append(s.monitors.bounds[:i], s.monitors.bounds[i+1:]...)
			return
		}
	}
	for i := range s.monitors.overlaps {
		if s.monitors.overlaps[i].id == id {
			s.monitors.overlaps = append(s.monitors.overlaps[:i], s.monitors.overlaps[i+1:]...)
			return
		}
	}
}

// evaluateMonitors checks every monitor and emits transitions. Monitors
// whose nodes were disposed are dropped; so are overlap monitors whose
// geometries cannot be compared.
func (s *Scene) evaluateMonitors() {
	var events []SpatialEvent

	kept := s.monitors.bounds[:0]
	for _, m := range s.monitors.bounds {
		if m.node.IsDisposed() {
			continue
		}
		state := m.node.ClassifyBounds(m.bounds, m.toScreen)
		if state != m.state {
			switch state {
			case BoundsInside:
				events = append(events, m.event(EventBoundsEnter))
			case BoundsOutside:
				events = append(events, m.event(EventBoundsExit))
			}
			m.state = state
		}
		crossing := m.sides != SideNone && m.node.CrossesBounds(m.bounds, m.sides, m.toScreen)
		if crossing && !m.crossing {
			events = append(events, m.event(EventBoundsCross))
		}
		m.crossing = crossing
		kept = append(kept, m)
	}
	clear(s.monitors.bounds[len(kept):])
	s.monitors.bounds = kept

	keptOverlaps := s.monitors.overlaps[:0]
	for _, m := range s.monitors.overlaps {
		if m.a.IsDisposed() || m.b.IsDisposed() {
			continue
		}
		hit, err := m.a.Overlaps(m.b)
		if err != nil {
			logger.Error("dropping overlap monitor", "a", m.a.Name, "b", m.b.Name, "err", err)
			continue
		}
		if hit != m.overlapping {
			typ := EventOverlapEnd
			if hit {
				typ = EventOverlapBegin
			}
			events = append(events, SpatialEvent{
				Type:          typ,
				Node:          m.a,
				Other:         m.b,
				EntityID:      m.a.EntityID,
				OtherEntityID: m.b.EntityID,
			})
			m.overlapping = hit
		}
		keptOverlaps = append(keptOverlaps, m)
	}
	clear(s.monitors.overlaps[len(keptOverlaps):])
	s.monitors.overlaps = keptOverlaps

	for _, e := range events {
		s.emit(e)
	}
}

func (m *boundsMonitor) event(typ EventType) SpatialEvent {
	return SpatialEvent{
		Type:     typ,
		Node:     m.node,
		EntityID: m.node.EntityID,
		Bounds:   m.bounds,
		Sides:    m.sides,
	}
}

func (s *Scene) emit(e SpatialEvent) {
	logger.Debug("spatial event", "type", e.Type.String(), "node", e.Node.Name)
	s.dispatching++
	for i := range s.handlers {
		if fn := s.handlers[i].fn; fn != nil {
			fn(e)
		}
	}
	s.dispatching--
	if s.dispatching == 0 && s.handlersDirty {
		s.handlers = slices.DeleteFunc(s.handlers, func(h eventHandler) bool { return h.fn == nil })
		s.handlersDirty = false
	}
	if s.store != nil {
		s.store.EmitEvent(e)
	}
}
