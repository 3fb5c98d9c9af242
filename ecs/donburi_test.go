package ecs

import (
	"testing"

	"github.com/phanxgames/trellis"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []trellis.SpatialEvent
	SpatialEventType.Subscribe(world, func(w donburi.World, e trellis.SpatialEvent) {
		received = append(received, e)
	})

	store.EmitEvent(trellis.SpatialEvent{
		Type:     trellis.EventBoundsExit,
		EntityID: 42,
		Bounds:   trellis.Rect{Width: 100, Height: 200},
	})
	store.EmitEvent(trellis.SpatialEvent{
		Type:          trellis.EventOverlapBegin,
		EntityID:      1,
		OtherEntityID: 2,
	})

	// Events are queued; process them.
	SpatialEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != trellis.EventBoundsExit || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Bounds.Width != 100 || e0.Bounds.Height != 200 {
		t.Errorf("event 0 bounds: %+v", e0.Bounds)
	}

	e1 := received[1]
	if e1.Type != trellis.EventOverlapBegin || e1.OtherEntityID != 2 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_SceneMonitor(t *testing.T) {
	world := donburi.NewWorld()
	scene := trellis.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	frame := scene.NewFrame("main", trellis.Rect{Width: 100, Height: 100})
	box := trellis.NewSprite("box", trellis.Vec2{X: 10, Y: 10})
	box.EntityID = 7
	frame.AddChild(box)
	scene.WatchBounds(box, trellis.Rect{Width: 50, Height: 50}, trellis.SideNone, false)

	var got []trellis.SpatialEvent
	SpatialEventType.Subscribe(world, func(w donburi.World, e trellis.SpatialEvent) {
		got = append(got, e)
	})

	scene.Update(1.0 / 60)
	SpatialEventType.ProcessEvents(world)

	if len(got) != 1 || got[0].Type != trellis.EventBoundsEnter || got[0].EntityID != 7 {
		t.Fatalf("events = %+v, want one bounds-enter for entity 7", got)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store trellis.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	SpatialEventType.Subscribe(world, func(w donburi.World, e trellis.SpatialEvent) {
		count1++
	})
	SpatialEventType.Subscribe(world, func(w donburi.World, e trellis.SpatialEvent) {
		count2++
	})

	store.EmitEvent(trellis.SpatialEvent{Type: trellis.EventOverlapEnd})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
