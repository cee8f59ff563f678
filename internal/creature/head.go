package creature

import (
	"math"

	"procsnake/internal/geom"
)

// HeadState is what Advance reports after each step.
type HeadState struct {
	Position geom.Point
	Angle    float64 // travel direction, only fresh when Moved
	Stopped  bool
	Moved    bool
}

// Head chases the target at a fixed speed and parks once it is close enough.
type Head struct {
	Position geom.Point
	Angle    float64
	Stopped  bool

	// Ring and Eyes are only rewritten on ticks where the head moved.
	Ring     []geom.Point
	Eyes     [2]geom.Point
	Oriented bool

	radius   float64
	velocity float64
	eyeInset float64
}

// NewHead places a head at start with room for dots ring points.
func NewHead(start geom.Point, radius, velocity, eyeInset float64, dots int) *Head {
	return &Head{
		Position: start,
		Ring:     make([]geom.Point, dots),
		radius:   radius,
		velocity: velocity,
		eyeInset: eyeInset,
	}
}

// Advance moves the head one tick toward target.
//
// The head stops once it is within one step of the target and only starts
// chasing again when the target leaves the velocity+radius band, so a parked
// head does not twitch under a jittery pointer.
func (h *Head) Advance(target geom.Point) HeadState {
	dist := geom.Dist(h.Position, target)
	moved := false

	if !h.Stopped && dist > h.velocity {
		// dist > velocity > 0, so the heading is always defined here.
		h.Angle, _ = geom.Heading(h.Position, target)
		h.Position = geom.Polar(h.Position, h.Angle, h.velocity)
		h.orient()
		moved = true
	} else if !h.Stopped {
		h.Stopped = true
	}

	if h.Stopped && dist > h.velocity+h.radius {
		h.Stopped = false
	}

	return HeadState{
		Position: h.Position,
		Angle:    h.Angle,
		Stopped:  h.Stopped,
		Moved:    moved,
	}
}

// orient rebuilds the head cap ring and the eyes from the current angle.
func (h *Head) orient() {
	n := len(h.Ring)
	for i := range h.Ring {
		a := h.Angle + math.Pi/float64(n)*float64(i) - math.Pi/2
		h.Ring[i] = geom.Polar(h.Position, a, h.radius)
	}
	eyeR := h.radius - h.eyeInset
	h.Eyes[0] = geom.Polar(h.Position, h.Angle+math.Pi/4, eyeR)
	h.Eyes[1] = geom.Polar(h.Position, h.Angle-math.Pi/4, eyeR)
	h.Oriented = true
}
