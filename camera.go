package trellis

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the camera offset.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera projects a frame's local space onto the screen. A frame point p
// lands on the screen at
//
//	Rotate(p, Angle) * Scale - Offset
//
// Offset is a scroll origin, so it is subtracted rather than added.
type Camera struct {
	// Offset is the scroll position in scaled frame units.
	Offset Vec2
	// Angle is the camera rotation in radians.
	Angle float64
	// Scale is the per-axis zoom (1 = no zoom).
	Scale Vec2
	// Viewport is the screen-space rectangle the frame is shown in.
	Viewport Rect

	// BoundsEnabled clamps the offset so the visible area stays within
	// Bounds (rotation is ignored by the clamp).
	BoundsEnabled bool
	// Bounds is the frame-space rectangle the camera is clamped to.
	Bounds Rect

	followTarget *Node
	followOffset Vec2
	followLerp   float64

	scrollTween *scrollAnim
}

// newCamera creates a Camera with the frame origin at the viewport's
// top-left corner.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		Offset:   Vec2{-viewport.X, -viewport.Y},
		Scale:    Vec2{1, 1},
		Viewport: viewport,
	}
}

// TransformInfo returns the camera projection as a TransformInfo.
func (c *Camera) TransformInfo() TransformInfo {
	return TransformInfo{Position: c.Offset.Neg(), Angle: c.Angle, Scale: c.Scale}
}

// FrameToScreen converts a frame-local point to screen space.
func (c *Camera) FrameToScreen(p Vec2) Vec2 {
	return c.TransformInfo().Translate(p)
}

// ScreenToFrame converts a screen point to frame-local space.
func (c *Camera) ScreenToFrame(p Vec2) Vec2 {
	return c.TransformInfo().TranslateBack(p)
}

// VisibleBounds returns the axis-aligned frame-space rectangle covered by
// the viewport.
func (c *Camera) VisibleBounds() Rect {
	t := c.TransformInfo()
	vp := c.Viewport
	var b BoundingBoxBuilder
	b.AddPoint(t.TranslateBack(Vec2{vp.Left(), vp.Top()}))
	b.AddPoint(t.TranslateBack(Vec2{vp.Right(), vp.Top()}))
	b.AddPoint(t.TranslateBack(Vec2{vp.Right(), vp.Bottom()}))
	b.AddPoint(t.TranslateBack(Vec2{vp.Left(), vp.Bottom()}))
	return b.Rect()
}

// CenterOn sets the offset so the frame point p appears at the viewport center.
func (c *Camera) CenterOn(p Vec2) {
	c.Offset = c.offsetCentering(p)
}

func (c *Camera) offsetCentering(p Vec2) Vec2 {
	return p.Rotate(c.Angle).Mul(c.Scale).Sub(c.Viewport.Center())
}

// Follow makes the camera track a target node with the given frame-space
// offset and lerp factor. A lerp of 1.0 snaps immediately; lower values
// give smoother following.
func (c *Camera) Follow(node *Node, offset Vec2, lerp float64) {
	c.followTarget = node
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera so the frame point p ends up centered,
// over duration seconds.
func (c *Camera) ScrollTo(p Vec2, duration float32, easeFn ease.TweenFunc) {
	to := c.offsetCentering(p)
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Offset.X), float32(to.X), duration, easeFn),
		tweenY: gween.New(float32(c.Offset.Y), float32(to.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the offset so the visible area stays
// within Bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// update advances follow, scroll, and bounds clamping. Called from Scene.Update().
func (c *Camera) update(dt float32) {
	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		target := c.followTarget.TransformInfo(false).Position.Add(c.followOffset)
		want := c.offsetCentering(target)
		c.Offset = c.Offset.Lerp(want, c.followLerp)
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.Offset.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Offset.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts the offset per axis so the frame range shown by
// the viewport stays within Bounds. If Bounds is smaller than the visible
// area on an axis, it is centered instead.
func (c *Camera) clampToBounds() {
	c.Offset.X = clampAxis(c.Offset.X, c.Scale.X, c.Viewport.X, c.Viewport.Width, c.Bounds.X, c.Bounds.Width)
	c.Offset.Y = clampAxis(c.Offset.Y, c.Scale.Y, c.Viewport.Y, c.Viewport.Height, c.Bounds.Y, c.Bounds.Height)
}

func clampAxis(offset, scale, viewStart, viewLen, boundStart, boundLen float64) float64 {
	lo := boundStart*scale - viewStart
	hi := (boundStart+boundLen)*scale - viewLen - viewStart
	if lo > hi {
		return (boundStart+boundLen/2)*scale - (viewStart + viewLen/2)
	}
	return math.Max(lo, math.Min(offset, hi))
}
