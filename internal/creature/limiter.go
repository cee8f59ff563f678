package creature

import (
	"math"

	"procsnake/internal/geom"
)

// Limiter caps how sharply the chain may turn at a single joint.
// The zero value (MaxBend == 0) is disabled.
type Limiter struct {
	MaxBend float64
}

// Enabled reports whether the limiter does anything.
func (l Limiter) Enabled() bool { return l.MaxBend > 0 }

// Apply bends next back toward the prev->current line when the turn at current
// exceeds MaxBend. The corrected point keeps its distance from current, so
// segment spacing is preserved. ok is false when next was left alone.
func (l Limiter) Apply(prev, current, next geom.Point) (geom.Point, bool) {
	if !l.Enabled() {
		return next, false
	}
	angle1, ok1 := geom.Heading(prev, current)
	angle2, ok2 := geom.Heading(current, next)
	if !ok1 || !ok2 {
		return next, false
	}

	diff := geom.Wrap(angle2 - angle1)
	if math.Abs(diff) <= l.MaxBend {
		return next, false
	}

	corrected := angle1 - l.MaxBend
	if diff > 0 {
		corrected = angle1 + l.MaxBend
	}
	return geom.Polar(current, corrected, geom.Dist(current, next)), true
}
