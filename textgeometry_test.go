package trellis

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestTextGeometryLines(t *testing.T) {
	g := NewTextGeometry("Hi\n\nabc", basicfont.Face7x13, TextAlignLeft)
	rects := g.Rects()
	if len(rects) != 2 {
		t.Fatalf("rects = %d, want 2 (blank line skipped)", len(rects))
	}
	if rects[0].Position != (Vec2{0, 0}) || rects[0].Size != (Vec2{14, 13}) {
		t.Errorf("line 0 = %+v", rects[0])
	}
	if rects[1].Position != (Vec2{0, 26}) || rects[1].Size != (Vec2{21, 13}) {
		t.Errorf("line 2 = %+v", rects[1])
	}
}

func TestTextGeometryAlignment(t *testing.T) {
	cases := []struct {
		align TextAlign
		wantX float64
	}{
		{TextAlignLeft, 0},
		{TextAlignCenter, 3.5},
		{TextAlignRight, 7},
	}
	for _, tc := range cases {
		g := NewTextGeometry("Hi\nabc", basicfont.Face7x13, tc.align)
		if got := g.Rects()[0].Position.X; got != tc.wantX {
			t.Errorf("align %d: short line X = %v, want %v", tc.align, got, tc.wantX)
		}
		if got := g.Rects()[1].Position.X; got != 0 {
			t.Errorf("align %d: widest line X = %v, want 0", tc.align, got)
		}
	}
}

func TestTextGeometryEmpty(t *testing.T) {
	g := NewTextGeometry("", basicfont.Face7x13, TextAlignLeft)
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0", g.Len())
	}
}

func TestTextNodeHitTestsPerLine(t *testing.T) {
	s, frame := newTestFrame(Rect{Width: 200, Height: 200})
	label := NewText("label", "Hi\nabcdef", basicfont.Face7x13)
	frame.AddChild(label)

	if s.HitTest(frame, Vec2{5, 5}) != label {
		t.Error("point on the first line missed")
	}
	// Right of "Hi" on the first line, but within the second line's width.
	if s.HitTest(frame, Vec2{30, 5}) != nil {
		t.Error("point beside a short line hit")
	}
	if s.HitTest(frame, Vec2{30, 18}) != label {
		t.Error("point on the second line missed")
	}

	label.SetTextAlign(TextAlignRight)
	if s.HitTest(frame, Vec2{30, 5}) != label {
		t.Error("right-aligned short line should cover x=30")
	}
}
