package creature

import (
	"gonum.org/v1/gonum/spatial/r2"

	"procsnake/internal/geom"
)

// HeadView is the renderer's copy of the head.
type HeadView struct {
	Position geom.Point
	Radius   float64
	Angle    float64
	Stopped  bool
	Oriented bool
	Ring     []geom.Point
	Eyes     [2]geom.Point
}

// Snapshot is a frame's worth of derived geometry. It shares no memory with
// the Creature it came from.
type Snapshot struct {
	Paused   bool
	Tick     uint64
	Target   geom.Point
	Head     HeadView
	Segments []Segment
	Tail     []geom.Point
	Contour  bool
}

// Triangle is one filled triangle of the body.
type Triangle struct {
	A, B, C geom.Point
}

// TailReady reports whether the tail fan has been derived at least once.
func (s Snapshot) TailReady() bool {
	return len(s.Tail) > 0 && len(s.Segments) > 0 && s.Segments[len(s.Segments)-1].Oriented
}

// Spine returns the head followed by every segment centre.
func (s Snapshot) Spine() []geom.Point {
	out := make([]geom.Point, 0, len(s.Segments)+1)
	out = append(out, s.Head.Position)
	for _, seg := range s.Segments {
		out = append(out, seg.Position)
	}
	return out
}

// Outline returns the closed body polygon: the head cap, down the left side,
// round the tail fan and back up the right side. Segments without contour
// points yet are skipped. Nil when contour derivation is off or the head has
// never moved.
func (s Snapshot) Outline() []geom.Point {
	if !s.Contour || !s.Head.Oriented {
		return nil
	}
	out := make([]geom.Point, 0, len(s.Head.Ring)+2*len(s.Segments)+len(s.Tail))
	out = append(out, s.Head.Ring...)
	for _, seg := range s.Segments {
		if seg.Oriented {
			out = append(out, seg.Left)
		}
	}
	if s.TailReady() {
		for j := len(s.Tail) - 1; j >= 0; j-- {
			out = append(out, s.Tail[j])
		}
	}
	for i := len(s.Segments) - 1; i >= 0; i-- {
		if s.Segments[i].Oriented {
			out = append(out, s.Segments[i].Right)
		}
	}
	return out
}

// Triangles tessellates the filled body: a fan for the head cap, a quad
// joining the head to the first segment, a quad between every pair of
// oriented neighbours and a fan for the tail cap.
func (s Snapshot) Triangles() []Triangle {
	if !s.Contour || !s.Head.Oriented {
		return nil
	}
	var tris []Triangle

	ring := s.Head.Ring
	hc := s.Head.Position
	for j := 0; j+1 < len(ring); j++ {
		tris = append(tris, Triangle{hc, ring[j], ring[j+1]})
	}

	var prev *Segment
	for i := range s.Segments {
		seg := &s.Segments[i]
		if !seg.Oriented {
			continue
		}
		if prev == nil {
			if n := len(ring); n > 0 {
				tris = append(tris,
					Triangle{ring[n-1], seg.Right, seg.Left},
					Triangle{ring[n-1], ring[0], seg.Right},
				)
			}
		} else {
			tris = append(tris,
				Triangle{prev.Left, prev.Right, seg.Left},
				Triangle{prev.Right, seg.Right, seg.Left},
			)
		}
		prev = seg
	}

	if s.TailReady() {
		tc := s.Segments[len(s.Segments)-1].Position
		for j := 0; j+1 < len(s.Tail); j++ {
			tris = append(tris, Triangle{tc, s.Tail[j], s.Tail[j+1]})
		}
	}
	return tris
}

// Bounds returns the axis-aligned box around the spine, padded by the largest radius.
func (s Snapshot) Bounds() (lo, hi geom.Point) {
	pad := s.Head.Radius
	for _, seg := range s.Segments {
		if seg.Radius > pad {
			pad = seg.Radius
		}
	}
	lo, hi = s.Head.Position, s.Head.Position
	for _, p := range s.Spine() {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	off := r2.Vec{X: pad, Y: pad}
	return r2.Sub(lo, off), r2.Add(hi, off)
}
