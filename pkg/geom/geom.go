package geom

import "math"

// Vec2 is a point or offset in playfield units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 { return b.Sub(a).Len() }

// CirclesOverlap reports whether two circles intersect. Touching circles do
// not overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Dist(a, b) < ra+rb
}

// Direction is a heading in degrees plus a scalar speed. Angle 0 points
// toward +Y (down the screen) and grows clockwise.
type Direction struct {
	Angle float64
	Speed float64
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// DirectionToDelta returns the per-tick displacement for d.
func DirectionToDelta(d Direction) Vec2 {
	rad := ToRadians(d.Angle)
	return Vec2{X: math.Sin(rad) * d.Speed, Y: math.Cos(rad) * d.Speed}
}

// NormalizeAngle wraps a into [0, 360).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 + 360 rounds to 360.
	if a >= 360 {
		a = 0
	}
	return a
}

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
