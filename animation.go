package trellis

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 transform fields on a Node simultaneously.
// Create one via TweenPosition, TweenScale or TweenRotation and call
// Update(dt) each frame. Values are written straight into the node, so
// the next TransformInfo call sees them. If the target node is disposed,
// the group stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	fields [2]*float64
	count  int
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// tweenTarget pairs a node field with the value it animates toward.
type tweenTarget struct {
	field *float64
	to    float64
}

func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc, targets ...tweenTarget) *TweenGroup {
	g := &TweenGroup{target: node, count: len(targets)}
	for i, tg := range targets {
		g.tweens[i] = gween.New(float32(*tg.field), float32(tg.to), duration, fn)
		g.fields[i] = tg.field
	}
	return g
}

// TweenPosition animates node.X and node.Y to to.
func TweenPosition(node *Node, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn,
		tweenTarget{&node.X, to.X},
		tweenTarget{&node.Y, to.Y},
	)
}

// TweenScale animates node.ScaleX and node.ScaleY to to.
func TweenScale(node *Node, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn,
		tweenTarget{&node.ScaleX, to.X},
		tweenTarget{&node.ScaleY, to.Y},
	)
}

// TweenRotation animates node.Rotation to the target angle in radians.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, tweenTarget{&node.Rotation, to})
}
