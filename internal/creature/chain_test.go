package creature

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsnake/internal/geom"
)

func TestChainCascadesInOneTick(t *testing.T) {
	c := NewChain(geom.Pt(0, 0), []float64{10, 10, 10}, 30, Limiter{}, false, 0)

	moved := c.Propagate(geom.Pt(500, 0), geom.Pt(600, 0))

	require.Equal(t, 3, moved)
	want := []float64{470, 440, 410}
	for i, x := range want {
		assert.InDelta(t, x, c.Segments[i].Position.X, 1e-9, "segment %d", i)
		assert.InDelta(t, 0, c.Segments[i].Position.Y, 1e-9, "segment %d", i)
	}
}

func TestChainLeavesCloseSegmentsAlone(t *testing.T) {
	c := NewChain(geom.Pt(0, 0), []float64{10, 10}, 30, Limiter{}, true, 4)
	c.Segments[0].Position = geom.Pt(20, 0)
	c.Segments[1].Position = geom.Pt(-5, 0)

	moved := c.Propagate(geom.Pt(45, 0), geom.Pt(50, 0))

	assert.Equal(t, 0, moved)
	assert.Equal(t, geom.Pt(20, 0), c.Segments[0].Position)
	assert.Equal(t, geom.Pt(-5, 0), c.Segments[1].Position)
	assert.False(t, c.Segments[0].Oriented, "no contour without movement")
}

func TestChainCoincidentSegmentsDoNotMove(t *testing.T) {
	c := NewChain(geom.Pt(7, 7), []float64{5, 5, 5}, 30, Limiter{MaxBend: math.Pi / 6}, true, 3)

	moved := c.Propagate(geom.Pt(7, 7), geom.Pt(7, 7))

	assert.Equal(t, 0, moved)
	for i, s := range c.Segments {
		assert.False(t, math.IsNaN(s.Position.X) || math.IsNaN(s.Position.Y), "segment %d", i)
		assert.Equal(t, geom.Pt(7, 7), s.Position)
		assert.False(t, s.Oriented)
	}
}

func TestChainDistanceConstraint(t *testing.T) {
	const bd = 30.0
	rng := rand.New(rand.NewPCG(1, 2))
	c := NewChain(geom.Pt(0, 0), []float64{20, 18, 16, 14, 12, 10, 8, 6}, bd, Limiter{}, true, 5)

	lead := geom.Pt(0, 0)
	for tick := 0; tick < 500; tick++ {
		lead = geom.Polar(lead, rng.Float64()*2*math.Pi, rng.Float64()*40)
		before := make([]geom.Point, c.Len())
		for i, s := range c.Segments {
			before[i] = s.Position
		}

		c.Propagate(lead, lead)

		for i, s := range c.Segments {
			leader := c.leader(i, lead)
			if geom.Dist(leader, before[i]) > bd {
				assert.InDelta(t, bd, geom.Dist(leader, s.Position), 1e-9, "tick %d segment %d", tick, i)
			} else {
				assert.Equal(t, before[i], s.Position, "tick %d segment %d", tick, i)
			}
		}
	}
}

func TestChainAngularClamp(t *testing.T) {
	const maxBend = math.Pi / 6
	rng := rand.New(rand.NewPCG(7, 11))
	c := NewChain(geom.Pt(0, 0), make13(15), 20, Limiter{MaxBend: maxBend}, true, 6)

	lead, aim := geom.Pt(0, 0), geom.Pt(0, 0)
	heading := 0.0
	for tick := 0; tick < 800; tick++ {
		// Sharp random turns so the limiter has work to do.
		heading += (rng.Float64() - 0.5) * 3
		aim = geom.Polar(lead, heading, 50)
		lead = geom.Polar(lead, heading, 5)

		c.Propagate(lead, aim)

		for i := range c.Segments {
			var prev geom.Point
			switch i {
			case 0:
				prev = aim
			case 1:
				prev = lead
			default:
				prev = c.Segments[i-2].Position
			}
			current := c.leader(i, lead)
			a1, ok1 := geom.Heading(prev, current)
			a2, ok2 := geom.Heading(current, c.Segments[i].Position)
			if !ok1 || !ok2 {
				continue
			}
			bend := math.Abs(geom.Wrap(a2 - a1))
			assert.LessOrEqual(t, bend, maxBend+1e-9, "tick %d segment %d", tick, i)
		}
	}
}

func TestChainContourSymmetry(t *testing.T) {
	radii := []float64{12, 10, 8, 6}
	c := NewChain(geom.Pt(0, 0), radii, 10, Limiter{MaxBend: math.Pi / 4}, true, 5)

	lead := geom.Pt(0, 0)
	for tick := 0; tick < 60; tick++ {
		lead = geom.Polar(lead, float64(tick)*0.15, 5)
		c.Propagate(lead, lead)
	}

	for i, s := range c.Segments {
		require.True(t, s.Oriented, "segment %d", i)
		assert.InDelta(t, s.Radius, geom.Dist(s.Left, s.Position), 1e-9)
		assert.InDelta(t, s.Radius, geom.Dist(s.Right, s.Position), 1e-9)

		mid := geom.Midpoint(s.Left, s.Right)
		assert.InDelta(t, s.Position.X, mid.X, 1e-9)
		assert.InDelta(t, s.Position.Y, mid.Y, 1e-9)

		// The left-right axis is perpendicular to the direction of travel.
		travel, ok := geom.Heading(s.Position, c.leader(i, lead))
		require.True(t, ok)
		side, _ := geom.Heading(s.Right, s.Left)
		assert.InDelta(t, 0, math.Cos(side-travel), 1e-9, "segment %d", i)
	}

	last := c.Segments[len(c.Segments)-1]
	for j, p := range c.Tail {
		assert.InDelta(t, last.Radius, geom.Dist(last.Position, p), 1e-9, "tail dot %d", j)
	}
	assert.InDelta(t, 0, geom.Dist(c.Tail[0], last.Right), 1e-9, "fan starts on the right flank")
	assert.InDelta(t, 0, geom.Dist(c.Tail[len(c.Tail)-1], last.Left), 1e-9, "fan ends on the left flank")
}

func make13(r float64) []float64 {
	out := make([]float64, 13)
	for i := range out {
		out[i] = r
	}
	return out
}
