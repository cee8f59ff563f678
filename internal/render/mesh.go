// Package render turns creature snapshots into flat vertex buffers. It has no
// GL dependency so the geometry can be built and checked anywhere; the desktop
// shell only uploads what it produces.
package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"procsnake/internal/geom"
)

// Floats per vertex in a Mesh: x, y, r, g, b, a.
const MeshStride = 6

// Floats per sprite in a sprite buffer: x, y, size, r, g, b, a, rotation.
const SpriteStride = 8

// Mesh accumulates coloured triangles in world coordinates.
type Mesh struct {
	Verts []float32
}

// Reset empties the mesh, keeping its storage.
func (m *Mesh) Reset() { m.Verts = m.Verts[:0] }

// Len returns the vertex count.
func (m *Mesh) Len() int { return len(m.Verts) / MeshStride }

func (m *Mesh) vertex(p geom.Point, r, g, b, a float32) {
	m.Verts = append(m.Verts, float32(p.X), float32(p.Y), r, g, b, a)
}

// Triangle appends one filled triangle.
func (m *Mesh) Triangle(a, b, c geom.Point, col RGB, alpha float32) {
	r, g, bl := col.Floats()
	m.vertex(a, r, g, bl, alpha)
	m.vertex(b, r, g, bl, alpha)
	m.vertex(c, r, g, bl, alpha)
}

// Line appends a stroke of the given width as a quad. Zero-length lines are dropped.
func (m *Mesh) Line(a, b geom.Point, width float64, col RGB, alpha float32) {
	angle, ok := geom.Heading(a, b)
	if !ok {
		return
	}
	n := r2.Scale(width/2, geom.Unit(angle+math.Pi/2))
	a0, a1 := r2.Add(a, n), r2.Sub(a, n)
	b0, b1 := r2.Add(b, n), r2.Sub(b, n)
	m.Triangle(a0, a1, b0, col, alpha)
	m.Triangle(a1, b1, b0, col, alpha)
}

// Polyline strokes consecutive points.
func (m *Mesh) Polyline(pts []geom.Point, width float64, col RGB, alpha float32) {
	for i := 1; i < len(pts); i++ {
		m.Line(pts[i-1], pts[i], width, col, alpha)
	}
}

// Disc appends a filled circle as a triangle fan.
func (m *Mesh) Disc(c geom.Point, radius float64, sides int, col RGB, alpha float32) {
	if radius <= 0 || sides < 3 {
		return
	}
	step := 2 * math.Pi / float64(sides)
	prev := geom.Polar(c, 0, radius)
	for i := 1; i <= sides; i++ {
		next := geom.Polar(c, step*float64(i), radius)
		m.Triangle(c, prev, next, col, alpha)
		prev = next
	}
}

// AppendSprite appends a round point sprite of the given diameter.
func AppendSprite(buf []float32, p geom.Point, diameter float64, col RGB, alpha float32) []float32 {
	r, g, b := col.Floats()
	return append(buf, float32(p.X), float32(p.Y), float32(diameter), r, g, b, alpha, 0)
}
