package trellis

import "math"

// alignedEpsilon is the angle tolerance under which a rectangle is treated
// as axis-aligned.
const alignedEpsilon = 1e-6

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NearlyEqual reports whether a and b differ by at most eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// NearlyZero reports whether v is within alignedEpsilon of zero.
func NearlyZero(v float64) bool {
	return math.Abs(v) <= alignedEpsilon
}

// NormalizeAngle wraps a into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// minMax4 returns the minimum and maximum of four values.
func minMax4(a, b, c, d float64) (lo, hi float64) {
	lo = math.Min(math.Min(a, b), math.Min(c, d))
	hi = math.Max(math.Max(a, b), math.Max(c, d))
	return
}
