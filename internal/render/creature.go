package render

import (
	"procsnake/internal/creature"
	"procsnake/internal/geom"
)

// Style controls how a snapshot is drawn.
type Style struct {
	LineWidth  float64
	ShowSpine  bool // debug skeleton: rods between centres and translucent discs
	ShowTarget bool
	EyeRadius  float64
	DiscSides  int
	// RingInset is the width of the light inner disc on contourless creatures.
	RingInset float64
}

// DefaultStyle matches the desktop look.
func DefaultStyle() Style {
	return Style{
		LineWidth:  3,
		ShowTarget: true,
		EyeRadius:  5,
		DiscSides:  32,
		RingInset:  6,
	}
}

// Frame holds one frame's draw buffers. Reuse it across frames to avoid allocations.
type Frame struct {
	Fill    Mesh      // drawn first
	Stroke  Mesh      // drawn over the fill
	Sprites []float32 // eyes and target marker, drawn last
}

// Build fills f with the geometry for snap.
func (f *Frame) Build(snap creature.Snapshot, st Style) {
	f.Fill.Reset()
	f.Stroke.Reset()
	f.Sprites = f.Sprites[:0]

	if st.ShowSpine {
		f.spine(snap, st)
	}
	if snap.Contour {
		f.outline(snap, st)
	} else {
		f.discs(snap, st)
	}
	if st.ShowTarget {
		f.Sprites = AppendSprite(f.Sprites, snap.Target, 2*st.EyeRadius, Palette.Target, 1)
	}
}

func (f *Frame) spine(snap creature.Snapshot, st Style) {
	spine := snap.Spine()
	f.Fill.Polyline(spine, st.LineWidth, Palette.Spine, 1)
	for _, seg := range snap.Segments {
		f.Fill.Disc(seg.Position, seg.Radius, st.DiscSides, Palette.Stroke, 20.0/255)
	}
}

// outline draws the filled body, its stroke, the tail cap and the eyes.
func (f *Frame) outline(snap creature.Snapshot, st Style) {
	for _, t := range snap.Triangles() {
		f.Fill.Triangle(t.A, t.B, t.C, Palette.Fill, 1)
	}

	var left, right []geom.Point
	for _, seg := range snap.Segments {
		if seg.Oriented {
			left = append(left, seg.Left)
			right = append(right, seg.Right)
		}
	}
	ring := snap.Head.Ring
	if snap.Head.Oriented && len(ring) > 0 {
		f.Stroke.Polyline(ring, st.LineWidth, Palette.Stroke, 1)
		if len(left) > 0 {
			f.Stroke.Line(ring[len(ring)-1], left[0], st.LineWidth, Palette.Stroke, 1)
			f.Stroke.Line(ring[0], right[0], st.LineWidth, Palette.Stroke, 1)
		}
	}
	f.Stroke.Polyline(left, st.LineWidth, Palette.Stroke, 1)
	f.Stroke.Polyline(right, st.LineWidth, Palette.Stroke, 1)
	if snap.TailReady() {
		f.Stroke.Polyline(snap.Tail, st.LineWidth, Palette.Stroke, 1)
	}

	if snap.Head.Oriented {
		for _, e := range snap.Head.Eyes {
			f.Sprites = AppendSprite(f.Sprites, e, 2*st.EyeRadius, Palette.Stroke, 1)
		}
	}
}

// discs draws a contourless creature as outlined circles joined by rods,
// tail first so the head ends up on top.
func (f *Frame) discs(snap creature.Snapshot, st Style) {
	lead := snap.Head.Position
	for i := range snap.Segments {
		seg := snap.Segments[i]
		if i > 0 {
			lead = snap.Segments[i-1].Position
		}
		f.Fill.Line(lead, seg.Position, seg.Radius, Palette.Spine, 1)
		f.Fill.Disc(seg.Position, seg.Radius, st.DiscSides, Palette.Spine, 1)
	}
	for _, seg := range snap.Segments {
		f.Stroke.Disc(seg.Position, seg.Radius-st.RingInset, st.DiscSides, Palette.Background, 1)
	}
	f.Stroke.Disc(snap.Head.Position, snap.Head.Radius, st.DiscSides, Palette.Ghost, 1)
	f.Stroke.Disc(snap.Head.Position, snap.Head.Radius-st.RingInset, st.DiscSides, Palette.Background, 1)
}
