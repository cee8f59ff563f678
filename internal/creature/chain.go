package creature

import "procsnake/internal/geom"

// Segment is one link of the body.
type Segment struct {
	Position geom.Point
	Radius   float64

	// Left and Right are valid once Oriented is set.
	Left, Right geom.Point
	Oriented    bool
}

// Chain drags an ordered list of segments behind a leader.
//
// Segments are updated strictly in index order and each one chases the
// position its predecessor reached in the same pass, so a head movement
// ripples down the whole body within a single tick.
type Chain struct {
	Segments []Segment
	Tail     []geom.Point

	bodyDistance float64
	limiter      Limiter
	contour      bool

	moved []bool
}

// NewChain allocates every segment at start. Segments are never added or removed.
func NewChain(start geom.Point, radii []float64, bodyDistance float64, limiter Limiter, contour bool, tailDots int) *Chain {
	segs := make([]Segment, len(radii))
	for i, r := range radii {
		segs[i] = Segment{Position: start, Radius: r}
	}
	return &Chain{
		Segments:     segs,
		Tail:         make([]geom.Point, tailDots),
		bodyDistance: bodyDistance,
		limiter:      limiter,
		contour:      contour,
		moved:        make([]bool, len(radii)),
	}
}

// Len returns the number of segments.
func (c *Chain) Len() int { return len(c.Segments) }

// Propagate runs the distance pass with the bend limiter interleaved per
// segment, then derives contour geometry for everything that moved.
// lead is the head position, aim the external target the head is chasing.
// It returns how many segments moved.
func (c *Chain) Propagate(lead, aim geom.Point) int {
	moved := 0
	for i := range c.Segments {
		c.moved[i] = c.follow(i, lead, aim)
		if c.moved[i] {
			moved++
		}
	}
	if c.contour && moved > 0 {
		c.deriveContours(lead)
	}
	return moved
}

// follow applies the distance constraint and then the bend limit to segment i.
func (c *Chain) follow(i int, lead, aim geom.Point) bool {
	seg := &c.Segments[i]
	current := c.leader(i, lead)

	moved := false
	if d := geom.Dist(current, seg.Position); d > c.bodyDistance {
		seg.Position = geom.Step(seg.Position, current, d-c.bodyDistance)
		moved = true
	}

	var prev geom.Point
	switch i {
	case 0:
		prev = aim
	case 1:
		prev = lead
	default:
		prev = c.Segments[i-2].Position
	}
	if p, bent := c.limiter.Apply(prev, current, seg.Position); bent {
		seg.Position = p
		moved = true
	}
	return moved
}

// leader returns the point segment i follows.
func (c *Chain) leader(i int, lead geom.Point) geom.Point {
	if i == 0 {
		return lead
	}
	return c.Segments[i-1].Position
}

// deriveContours runs after the limiter, so side points and the tail fan
// follow the clamped heading.
func (c *Chain) deriveContours(lead geom.Point) {
	last := len(c.Segments) - 1
	for i := range c.Segments {
		if !c.moved[i] {
			continue
		}
		seg := &c.Segments[i]
		angle, ok := geom.Heading(seg.Position, c.leader(i, lead))
		if !ok {
			continue
		}
		seg.Left, seg.Right = SidePoints(seg.Position, angle, seg.Radius)
		seg.Oriented = true
		if i == last {
			TailFan(c.Tail, seg.Position, angle, seg.Radius)
		}
	}
}
