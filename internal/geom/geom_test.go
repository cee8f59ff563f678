package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside", 1, 1},
		{"just over pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"just under -pi", -math.Pi - 0.5, math.Pi - 0.5},
		{"full turn", 2*math.Pi + 0.25, 0.25},
		{"several turns", -6*math.Pi - 0.25, -0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in)
			assert.True(t, scalar.EqualWithinAbs(got, tt.want, tol), "Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			assert.LessOrEqual(t, math.Abs(got), math.Pi)
		})
	}
}

func TestHeading(t *testing.T) {
	a, ok := Heading(Pt(0, 0), Pt(0, 10))
	assert.True(t, ok)
	assert.InDelta(t, math.Pi/2, a, tol)

	a, ok = Heading(Pt(5, 5), Pt(-5, 5))
	assert.True(t, ok)
	assert.InDelta(t, math.Pi, a, tol)

	_, ok = Heading(Pt(3, 4), Pt(3, 4))
	assert.False(t, ok, "coincident points have no heading")
}

func TestStepAndPolar(t *testing.T) {
	p := Step(Pt(-150, -150), Pt(0, 0), 5)
	assert.InDelta(t, 5, Dist(Pt(-150, -150), p), tol)
	assert.InDelta(t, p.X, p.Y, tol, "stays on the diagonal")

	q := Polar(Pt(1, 1), math.Pi, 2)
	assert.InDelta(t, -1, q.X, tol)
	assert.InDelta(t, 1, q.Y, tol)

	u := Unit(-math.Pi / 2)
	assert.InDelta(t, 0, u.X, tol)
	assert.InDelta(t, -1, u.Y, tol)
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(Pt(-2, 4), Pt(2, 8))
	assert.Equal(t, Pt(0, 6), m)
}
