package trellis

import (
	"math"
	"math/rand/v2"
	"testing"
)

// rotatedSquare returns a 10x10 square centered at c, rotated by angle.
func rotatedSquare(c Vec2, angle float64) RectPolygon {
	r := NewGeometryRect(Vec2{-5, -5}, Vec2{10, 10})
	return r.CreateRectPolygon(&TransformInfo{Position: c, Angle: angle, Scale: Vec2{1, 1}})
}

func randomPolygon(r *rand.Rand, rotated bool) RectPolygon {
	g := NewGeometryRect(
		Vec2{r.Float64()*20 - 10, r.Float64()*20 - 10},
		Vec2{1 + r.Float64()*15, 1 + r.Float64()*15},
	)
	t := TransformInfo{
		Position: Vec2{r.Float64()*40 - 20, r.Float64()*40 - 20},
		Scale:    Vec2{1, 1},
	}
	if rotated {
		t.Angle = r.Float64() * 2 * math.Pi
	}
	return g.CreateRectPolygon(&t)
}

// --- Construction ---

func TestNewRectPolygonCorners(t *testing.T) {
	p := NewRectPolygon(Vec2{1, 2}, Vec2{11, 7})
	if p.RightUpper != (Vec2{11, 2}) || p.LeftLower != (Vec2{1, 7}) {
		t.Errorf("corners = %v", p.Points())
	}
	if p.Angle != 0 {
		t.Errorf("Angle = %v, want 0", p.Angle)
	}
	assertVec(t, "Center", p.Center(), Vec2{6, 4.5}, epsilon)
	assertNear(t, "Radius", p.Radius(), math.Hypot(10, 5)/2)
	assertVec(t, "Size", p.Size(), Vec2{10, 5}, epsilon)
}

func TestRotatedPolygonEdgesPerpendicular(t *testing.T) {
	p := rotatedSquare(Vec2{3, 3}, 0.4)
	a := p.RightUpper.Sub(p.LeftUpper)
	b := p.RightUpper.Sub(p.RightLower)
	if math.Abs(a.Dot(b)) > 1e-9 {
		t.Errorf("edge axes not perpendicular: dot = %v", a.Dot(b))
	}
	assertVec(t, "Center", p.Center(), Vec2{3, 3}, 1e-9)
}

// --- Overlaps ---

func TestOverlapsIntervalOverlap(t *testing.T) {
	a := NewRectPolygon(Vec2{0, 0}, Vec2{10, 10})
	b := NewRectPolygon(Vec2{5, 5}, Vec2{15, 15})
	if !a.Overlaps(b) {
		t.Error("A.Overlaps(B) = false, want true")
	}
}

func TestOverlapsFastReject(t *testing.T) {
	a := NewRectPolygon(Vec2{0, 0}, Vec2{10, 10})
	b := NewRectPolygon(Vec2{20, 20}, Vec2{30, 30})
	if !circlesApart(a, b) {
		t.Fatal("expected circumscribed circles to be apart")
	}
	if a.Overlaps(b) {
		t.Error("A.Overlaps(B) = true, want false")
	}
}

func TestOverlapsTouchingEdges(t *testing.T) {
	a := NewRectPolygon(Vec2{0, 0}, Vec2{10, 10})
	b := NewRectPolygon(Vec2{10, 0}, Vec2{20, 10})
	if !a.Overlaps(b) {
		t.Error("edge-sharing rectangles should overlap")
	}
}

func TestOverlapsSeparatedAlongSingleAxis(t *testing.T) {
	// The diamond's circumscribed circle reaches the square, and only the
	// square's X axis separates them. A one-sided range test would report
	// an overlap for one call order.
	diamond := rotatedSquare(Vec2{0, 0}, math.Pi/4)
	square := NewRectPolygon(Vec2{8, -5}, Vec2{18, 5})

	if circlesApart(diamond, square) {
		t.Fatal("fast reject should not apply to this pair")
	}
	if diamond.Overlaps(square) {
		t.Error("diamond.Overlaps(square) = true, want false")
	}
	if square.Overlaps(diamond) {
		t.Error("square.Overlaps(diamond) = true, want false")
	}
}

func TestOverlapsRotatedPair(t *testing.T) {
	a := rotatedSquare(Vec2{0, 0}, math.Pi/4)
	b := rotatedSquare(Vec2{12, 0}, math.Pi/4)
	// Tips at x=7.07 and x=4.93 interpenetrate.
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("interpenetrating diamonds should overlap")
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	r := rand.New(rand.NewPCG(10, 20))
	for i := 0; i < 2000; i++ {
		a := randomPolygon(r, r.IntN(2) == 0)
		b := randomPolygon(r, r.IntN(2) == 0)
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("asymmetric result for\nA=%v angle %v\nB=%v angle %v",
				a.Points(), a.Angle, b.Points(), b.Angle)
		}
	}
}

func TestAlignedAndOrientedTestsAgree(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 2000; i++ {
		a := randomPolygon(r, false)
		b := randomPolygon(r, false)
		aligned := testAlignedCollision(a, b)
		oriented := testOrientedCollision(a, b)
		if aligned != oriented {
			t.Fatalf("aligned=%v oriented=%v for A=%v B=%v", aligned, oriented, a.Points(), b.Points())
		}
	}
}

func TestFastRejectIsSound(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	rejected := 0
	for i := 0; i < 5000; i++ {
		a := randomPolygon(r, true)
		b := randomPolygon(r, true)
		if circlesApart(a, b) {
			rejected++
			if testOrientedCollision(a, b) {
				t.Fatalf("fast reject dropped a real overlap: A=%v B=%v", a.Points(), b.Points())
			}
		}
	}
	if rejected == 0 {
		t.Fatal("generator never exercised the fast reject")
	}
}

func TestQuarterTurnUsesAlignedPath(t *testing.T) {
	if !isAxisAligned(0) || !isAxisAligned(math.Pi/2) || !isAxisAligned(-math.Pi) {
		t.Error("quarter turns should count as axis-aligned")
	}
	if isAxisAligned(0.1) {
		t.Error("0.1 rad should not count as axis-aligned")
	}
	a := rotatedSquare(Vec2{0, 0}, math.Pi/2)
	b := NewRectPolygon(Vec2{4, 4}, Vec2{9, 9})
	if !a.Overlaps(b) {
		t.Error("quarter-turned square should overlap the corner box")
	}
}

// --- ContainsPoint ---

func TestContainsPointRotated45(t *testing.T) {
	p := rotatedSquare(Vec2{0, 0}, math.Pi/4)
	if p.ContainsPoint(Vec2{0, 7.1}) {
		t.Error("(0, 7.1) is past the vertex at 7.07, want false")
	}
	if !p.ContainsPoint(Vec2{0, 7.0}) {
		t.Error("(0, 7.0) is inside, want true")
	}
	if p.ContainsPoint(Vec2{5, 5}) {
		t.Error("(5, 5) lies outside the diamond")
	}
	if !p.ContainsPoint(Vec2{0, 0}) {
		t.Error("center should be contained")
	}
}

func TestContainsPointEdgesInclusive(t *testing.T) {
	p := NewRectPolygon(Vec2{0, 0}, Vec2{10, 10})
	for _, pt := range []Vec2{{0, 0}, {10, 10}, {5, 0}, {10, 5}} {
		if !p.ContainsPoint(pt) {
			t.Errorf("ContainsPoint(%v) = false, want true", pt)
		}
	}
	if p.ContainsPoint(Vec2{10.01, 5}) {
		t.Error("point right of the edge should not be contained")
	}
}

// --- Bounds ---

func TestInsideOutsideBounds(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	inside := NewRectPolygon(Vec2{10, 10}, Vec2{20, 20})
	if !inside.IsInsideBounds(bounds) || inside.IsOutsideBounds(bounds) {
		t.Error("inside rectangle misclassified")
	}

	outside := NewRectPolygon(Vec2{150, 150}, Vec2{160, 160})
	if outside.IsInsideBounds(bounds) || !outside.IsOutsideBounds(bounds) {
		t.Error("outside rectangle misclassified")
	}
}

func TestStraddlingIsNeitherInsideNorOutside(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	p := NewRectPolygon(Vec2{90, 10}, Vec2{110, 20})
	if p.IsInsideBounds(bounds) {
		t.Error("IsInsideBounds = true for straddling rectangle")
	}
	if p.IsOutsideBounds(bounds) {
		t.Error("IsOutsideBounds = true for straddling rectangle")
	}
}

func TestCrossesBounds(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	right := NewRectPolygon(Vec2{90, 10}, Vec2{110, 20})

	if !right.CrossesBounds(bounds, SideRight) {
		t.Error("should cross the right edge")
	}
	if right.CrossesBounds(bounds, SideLeft) {
		t.Error("should not cross the left edge")
	}
	if right.CrossesBounds(bounds, SideTop|SideBottom) {
		t.Error("should not cross top or bottom")
	}
	if !right.CrossesBounds(bounds, SideAll) {
		t.Error("SideAll should include the right edge")
	}
}

func TestCrossesBoundsRequiresAlignment(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	// Straddles the right line but pokes above the top, so it crosses
	// through the corner rather than the right edge segment.
	corner := NewRectPolygon(Vec2{90, -10}, Vec2{110, 20})
	if corner.CrossesBounds(bounds, SideRight) {
		t.Error("corner crossing should not count for the right edge")
	}
	if corner.CrossesBounds(bounds, SideTop) {
		t.Error("corner crossing should not count for the top edge")
	}
}

func TestCrossesBoundsTop(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	p := rotatedSquare(Vec2{50, 0}, 0.3)
	if !p.CrossesBounds(bounds, SideTop) {
		t.Error("rotated square centered on the top edge should cross it")
	}
	if p.CrossesBounds(bounds, SideBottom) {
		t.Error("should not cross the bottom edge")
	}
}

func TestPolygonBounds(t *testing.T) {
	p := rotatedSquare(Vec2{0, 0}, math.Pi/4)
	b := p.Bounds()
	h := 5 * math.Sqrt2
	assertNear(t, "Left", b.Left(), -h)
	assertNear(t, "Right", b.Right(), h)
	if math.Abs(b.Top()+h) > 1e-9 || math.Abs(b.Bottom()-h) > 1e-9 {
		t.Errorf("Bounds = %+v", b)
	}
}
