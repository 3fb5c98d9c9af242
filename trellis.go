package trellis

import (
	"fmt"
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default debug outline color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to color.RGBA with premultiplied alpha.
func (c Color) toRGBA() color.RGBA {
	a := Clamp(c.A, 0, 1)
	return color.RGBA{
		R: uint8(Clamp(c.R, 0, 1)*a*255 + 0.5),
		G: uint8(Clamp(c.G, 0, 1)*a*255 + 0.5),
		B: uint8(Clamp(c.B, 0, 1)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. It is a value type and is copied freely.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides component-wise. Zero components yield Inf or NaN.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{v.X / o.X, v.Y / o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Rotate rotates v about the origin by angle radians. With Y pointing down
// a positive angle turns clockwise on screen.
func (v Vec2) Rotate(angle float64) Vec2 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Lerp interpolates between v and o by t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

func (v Vec2) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", v.X, v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromEdges builds a Rect from its left, top, right and bottom edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Side is a bitmask of rectangle edges used by boundary-crossing tests.
// Values can be combined with bitwise OR (e.g. SideLeft | SideRight).
type Side uint8

const (
	SideLeft Side = 1 << iota
	SideTop
	SideRight
	SideBottom

	SideNone Side = 0
	SideAll       = SideLeft | SideTop | SideRight | SideBottom
)

// NodeType distinguishes the role of a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no geometry of its own
	NodeTypeSprite                    // sized visual with a single rectangle
	NodeTypeText                      // text block with one rectangle per line
	NodeTypeFrame                     // root boundary; owns a Camera
)

// TextAlign controls horizontal alignment of text line rectangles.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align lines to the left edge (default)
	TextAlignCenter                  // center lines on the widest line
	TextAlignRight                   // align lines to the right edge
)
