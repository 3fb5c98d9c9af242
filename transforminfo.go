package trellis

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TransformInfo is the resolved position, rotation and scale of an object
// relative to some reference space (a frame, or the screen when the camera
// is included). It maps points from the object's local space outward.
//
// Mapping order is rotate, then scale, then translate:
//
//	Translate(p) = Rotate(p, Angle) * Scale + Position
type TransformInfo struct {
	Position Vec2
	Angle    float64 // radians
	Scale    Vec2
}

// IdentityTransform returns the transform that leaves every point unchanged.
func IdentityTransform() TransformInfo {
	return TransformInfo{Scale: Vec2{1, 1}}
}

// Translate maps a local point into the transform's outer space.
func (t TransformInfo) Translate(p Vec2) Vec2 {
	return p.Rotate(t.Angle).Mul(t.Scale).Add(t.Position)
}

// TranslateBack maps a point from the outer space back into local space.
// It is the exact inverse of Translate. A zero scale component yields
// non-finite coordinates.
func (t TransformInfo) TranslateBack(p Vec2) Vec2 {
	return p.Sub(t.Position).Div(t.Scale).Rotate(-t.Angle)
}

// Then folds t through one more enclosing level whose own transform is
// outer, returning the combined transform. This is one step of the
// parent-chain walk.
func (t TransformInfo) Then(outer TransformInfo) TransformInfo {
	return TransformInfo{
		Position: outer.Translate(t.Position),
		Angle:    t.Angle + outer.Angle,
		Scale:    t.Scale.Mul(outer.Scale),
	}
}

// IsIdentity reports whether t is the identity transform.
func (t TransformInfo) IsIdentity() bool {
	return t.Position == (Vec2{}) && t.Angle == 0 && t.Scale == (Vec2{1, 1})
}

// GeoM returns an ebiten.GeoM equivalent to Translate, for drawing images
// authored in the object's local space.
func (t TransformInfo) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Rotate(t.Angle)
	m.Scale(t.Scale.X, t.Scale.Y)
	m.Translate(t.Position.X, t.Position.Y)
	return m
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] equivalent to
// Translate, laid out as
//
//	| a  c  tx |
//	| b  d  ty |
func (t TransformInfo) Matrix() [6]float64 {
	sin, cos := math.Sincos(t.Angle)
	sx, sy := t.Scale.X, t.Scale.Y
	return [6]float64{
		cos * sx, sin * sy,
		-sin * sx, cos * sy,
		t.Position.X, t.Position.Y,
	}
}
