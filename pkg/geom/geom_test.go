package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngleRange(t *testing.T) {
	for a := -360.0; a <= 720.0; a += 0.25 {
		got := NormalizeAngle(a)
		if got < 0 || got >= 360 {
			t.Fatalf("NormalizeAngle(%v) = %v, want value in [0,360)", a, got)
		}
	}
}

func TestNormalizeAngleValues(t *testing.T) {
	cases := map[float64]float64{
		0:     0,
		90:    90,
		360:   0,
		-90:   270,
		450:   90,
		-360:  0,
		720:   0,
		-1e-9: 360 - 1e-9,
		1080:  0,
	}
	for in, want := range cases {
		assert.InDelta(t, want, NormalizeAngle(in), 1e-9, "input %v", in)
	}
	assert.Equal(t, 0.0, NormalizeAngle(-1e-15))
}

func TestDirectionToDeltaConvention(t *testing.T) {
	down := DirectionToDelta(Direction{Angle: 0, Speed: 3})
	assert.InDelta(t, 0, down.X, 1e-12)
	assert.InDelta(t, 3, down.Y, 1e-12)

	right := DirectionToDelta(Direction{Angle: 90, Speed: 2})
	assert.InDelta(t, 2, right.X, 1e-12)
	assert.InDelta(t, 0, right.Y, 1e-12)

	up := DirectionToDelta(Direction{Angle: 180, Speed: 1})
	assert.InDelta(t, 0, up.X, 1e-12)
	assert.InDelta(t, -1, up.Y, 1e-12)

	left := DirectionToDelta(Direction{Angle: 270, Speed: 1})
	assert.InDelta(t, -1, left.X, 1e-12)
	assert.InDelta(t, 0, left.Y, 1e-12)

	still := DirectionToDelta(Direction{Angle: 123, Speed: 0})
	assert.Equal(t, 0.0, math.Abs(still.X))
	assert.Equal(t, 0.0, math.Abs(still.Y))
}

func TestRadianConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-12)
	assert.InDelta(t, 90, ToDegrees(math.Pi/2), 1e-12)
	assert.InDelta(t, 37.5, ToDegrees(ToRadians(37.5)), 1e-12)
}

func TestCirclesOverlap(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	assert.True(t, CirclesOverlap(a, 20, Vec2{X: 29.9, Y: 0}, 10))
	assert.False(t, CirclesOverlap(a, 20, Vec2{X: 30, Y: 0}, 10), "touching is not overlapping")
	assert.False(t, CirclesOverlap(a, 20, Vec2{X: 30, Y: 30}, 10))
	assert.InDelta(t, 5, Dist(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 20.0, Clamp(-5, 20, 580))
	assert.Equal(t, 580.0, Clamp(900, 20, 580))
	assert.Equal(t, 42.0, Clamp(42, 20, 580))
}
