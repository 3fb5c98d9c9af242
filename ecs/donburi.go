// Package ecs provides ECS adapters for trellis.
package ecs

import (
	"github.com/phanxgames/trellis"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SpatialEventType is the Donburi event type for trellis spatial events.
// Subscribe to this in your ECS systems to receive bounds and overlap
// transitions.
var SpatialEventType = events.NewEventType[trellis.SpatialEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Spatial events are published to SpatialEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) trellis.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event trellis.SpatialEvent) {
	SpatialEventType.Publish(s.world, event)
}
