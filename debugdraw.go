package trellis

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const debugStrokeWidth = 1

// DrawGeometry strokes the outline of every rectangle of g, placed by t,
// onto dst. Intended for visualizing hit shapes, not for rendering.
func DrawGeometry(dst *ebiten.Image, g Geometry, t *TransformInfo, clr Color) {
	c := clr.toRGBA()
	for _, p := range g.Polygons(t) {
		strokePolygon(dst, p, c)
	}
}

func strokePolygon(dst *ebiten.Image, p RectPolygon, clr color.Color) {
	pts := p.Points()
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			debugStrokeWidth, clr, false)
	}
}

// DrawDebug outlines the geometry of every visible node of every frame in
// screen space. Interactable nodes are drawn in clr; the rest at half alpha.
func (s *Scene) DrawDebug(dst *ebiten.Image, clr Color) {
	dim := clr
	dim.A *= 0.5
	for _, f := range s.frames {
		drawDebugNode(dst, f, clr, dim)
	}
}

func drawDebugNode(dst *ebiten.Image, n *Node, clr, dim Color) {
	if !n.Visible {
		return
	}
	if n.geometry != nil {
		t := n.TransformInfo(true)
		c := clr
		if !n.Interactable {
			c = dim
		}
		DrawGeometry(dst, n.geometry, &t, c)
	}
	for _, child := range n.sortedChildList() {
		drawDebugNode(dst, child, clr, dim)
	}
}
