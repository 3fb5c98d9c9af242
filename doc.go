// Package trellis is the spatial core of a retained-mode 2D scene engine.
//
// It resolves where nested scene objects end up (position, rotation and
// scale folded up the parent chain, optionally through a camera) and answers
// collision questions about the rectangles attached to them: overlap, point
// containment, inside/outside bounds, and edge crossing.
//
// # Scene graph
//
// Every positioned element is a [Node]. Nodes hang under a frame created
// with [Scene.NewFrame]; the frame is the root boundary of the transform
// walk and owns the [Camera] used for screen-space queries.
//
//	scene := trellis.NewScene()
//	frame := scene.NewFrame("world", trellis.Rect{Width: 640, Height: 480})
//
//	ship := trellis.NewSprite("ship", trellis.Vec2{X: 32, Y: 16})
//	ship.X, ship.Y = 100, 50
//	ship.Rotation = math.Pi / 4
//	frame.AddChild(ship)
//
// # Transforms
//
// [Node.TransformInfo] walks from a node to its frame and returns a
// [TransformInfo]. Pass false for frame-local coordinates (enough to
// compare two nodes under the same frame) or true to include the camera.
//
//	t := ship.TransformInfo(true)
//	screen := t.Translate(trellis.Vec2{})
//
// # Geometry
//
// A node's [Geometry] is either a single [GeometryRect] or a
// [GeometryRectGroup]. Both convert to [RectPolygon] under a transform and
// delegate to it. Overlap uses a circumscribed-circle fast reject, then an
// axis-aligned interval test or the separating axis test.
//
//	hit, err := ship.Overlaps(rock)
//
// # Deferred mutation and monitors
//
// Structural changes made during a per-frame pass go through [Scene.Defer]
// and are applied at the end of [Scene.Update]. [Scene.WatchBounds] and
// [Scene.WatchOverlap] report transitions as [SpatialEvent] values, which
// the ECS bridge in trellis/ecs forwards to a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package trellis
