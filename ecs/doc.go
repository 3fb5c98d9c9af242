// Package ecs provides ECS adapters for trellis spatial monitor events.
//
// The primary adapter is [NewDonburiStore], which bridges trellis spatial
// events (bounds enter/exit/cross, overlap begin/end) into a [Donburi]
// world as typed events. Subscribe to [SpatialEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
