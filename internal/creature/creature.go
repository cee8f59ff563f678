// Package creature animates a segmented creature that chases a target point.
//
// Each tick the head steps toward the target, the body chain is dragged along
// behind it one segment at a time, joints that bend too far are straightened,
// and outline geometry is derived for renderers. A Creature is owned by a
// single frame loop and is not safe for concurrent use.
package creature

import (
	"fmt"

	"procsnake/internal/geom"
)

// TargetSource supplies the point the head chases, sampled once per tick.
type TargetSource interface {
	Target() geom.Point
}

// TargetFunc adapts a function to TargetSource.
type TargetFunc func() geom.Point

// Target implements TargetSource.
func (f TargetFunc) Target() geom.Point { return f() }

// TickResult summarises what a Tick did.
type TickResult struct {
	Paused        bool
	HeadMoved     bool
	Stopped       bool // head is parked after this tick
	JustStopped   bool // head parked on this tick
	JustResumed   bool // head left the parked state on this tick
	SegmentsMoved int
}

// Creature is the frame orchestrator: it owns the head and chain and is their
// only writer.
type Creature struct {
	cfg    Config
	head   *Head
	chain  *Chain
	paused bool
	target geom.Point
	ticks  uint64
}

// New validates cfg and allocates the whole creature at cfg.Start.
func New(cfg Config) (*Creature, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Radii = append([]float64(nil), cfg.Radii...)
	headDots, tailDots := cfg.HeadDots, cfg.TailDots
	if !cfg.Contour {
		headDots, tailDots = 0, 0
	}
	return &Creature{
		cfg:    cfg,
		head:   NewHead(cfg.Start, cfg.HeadRadius, cfg.HeadVelocity, cfg.EyeInset, headDots),
		chain:  NewChain(cfg.Start, cfg.Radii, cfg.BodyDistance, Limiter{MaxBend: cfg.MaxBend}, cfg.Contour, tailDots),
		target: cfg.Start,
	}, nil
}

// MustNew is New for configurations known to be valid, such as presets.
func MustNew(cfg Config) *Creature {
	c, err := New(cfg)
	if err != nil {
		panic(fmt.Errorf("creature: %w", err))
	}
	return c
}

// Config returns a copy of the construction parameters.
func (c *Creature) Config() Config {
	cfg := c.cfg
	cfg.Radii = append([]float64(nil), c.cfg.Radii...)
	return cfg
}

// Paused reports whether ticks are currently ignored.
func (c *Creature) Paused() bool { return c.paused }

// SetPaused sets the pause state.
func (c *Creature) SetPaused(p bool) { c.paused = p }

// TogglePause flips the pause state and returns the new value.
func (c *Creature) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Ticks returns how many unpaused ticks have run.
func (c *Creature) Ticks() uint64 { return c.ticks }

// Step samples src once and runs Tick with it. Paused creatures do not sample.
func (c *Creature) Step(src TargetSource) TickResult {
	if c.paused {
		return TickResult{Paused: true, Stopped: c.head.Stopped}
	}
	return c.Tick(src.Target())
}

// Tick advances the creature one frame toward target.
//
// The chain only moves on ticks where the head moved: a parked head freezes
// the whole body rather than letting it creep up on the head.
func (c *Creature) Tick(target geom.Point) TickResult {
	if c.paused {
		return TickResult{Paused: true, Stopped: c.head.Stopped}
	}
	c.ticks++
	c.target = target

	wasStopped := c.head.Stopped
	hs := c.head.Advance(target)

	res := TickResult{
		HeadMoved:   hs.Moved,
		Stopped:     hs.Stopped,
		JustStopped: !wasStopped && hs.Stopped,
		JustResumed: wasStopped && !hs.Stopped,
	}
	if hs.Moved {
		res.SegmentsMoved = c.chain.Propagate(hs.Position, target)
	}
	return res
}

// Snapshot copies out everything a renderer needs for the current frame.
func (c *Creature) Snapshot() Snapshot {
	h := c.head
	return Snapshot{
		Paused: c.paused,
		Tick:   c.ticks,
		Target: c.target,
		Head: HeadView{
			Position: h.Position,
			Radius:   h.radius,
			Angle:    h.Angle,
			Stopped:  h.Stopped,
			Oriented: h.Oriented,
			Ring:     append([]geom.Point(nil), h.Ring...),
			Eyes:     h.Eyes,
		},
		Segments: append([]Segment(nil), c.chain.Segments...),
		Tail:     append([]geom.Point(nil), c.chain.Tail...),
		Contour:  c.cfg.Contour,
	}
}
