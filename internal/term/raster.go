package term

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"procsnake/internal/creature"
	"procsnake/internal/geom"
)

// CellKind says what a terminal cell shows. Later kinds paint over earlier ones.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellBody
	CellEdge
	CellHead
	CellEye
	CellTarget
)

// Viewport maps world pixels onto terminal cells. Cells are roughly twice as
// tall as they are wide, so CellH is usually 2*CellW.
type Viewport struct {
	CellW, CellH float64
}

// DefaultViewport gives 100x28 cells for the 800x450 desktop world.
var DefaultViewport = Viewport{CellW: 8, CellH: 16}

// CellCenter returns the world point at the middle of cell (x, y).
func (v Viewport) CellCenter(x, y int) geom.Point {
	return geom.Pt((float64(x)+0.5)*v.CellW, (float64(y)+0.5)*v.CellH)
}

// Cell returns the cell containing p.
func (v Viewport) Cell(p geom.Point) (x, y int) {
	return int(math.Floor(p.X / v.CellW)), int(math.Floor(p.Y / v.CellH))
}

// Grid is a W x H raster of cell kinds, row-major.
type Grid struct {
	W, H  int
	Cells []CellKind
}

// Resize sets the dimensions and clears every cell, reusing storage.
func (g *Grid) Resize(w, h int) {
	g.W, g.H = max(w, 0), max(h, 0)
	n := g.W * g.H
	if cap(g.Cells) < n {
		g.Cells = make([]CellKind, n)
	}
	g.Cells = g.Cells[:n]
	clear(g.Cells)
}

// At returns the kind at (x, y), CellEmpty outside the grid.
func (g *Grid) At(x, y int) CellKind {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return CellEmpty
	}
	return g.Cells[y*g.W+x]
}

func (g *Grid) paint(x, y int, k CellKind) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	if i := y*g.W + x; k > g.Cells[i] {
		g.Cells[i] = k
	}
}

// Count returns how many cells hold k.
func (g *Grid) Count(k CellKind) int {
	n := 0
	for _, c := range g.Cells {
		if c == k {
			n++
		}
	}
	return n
}

// Rasterize paints snap into g. Creatures with contours are filled from their
// triangles; contourless ones from their discs. Body cells bordering empty
// space become edges.
func (g *Grid) Rasterize(snap creature.Snapshot, v Viewport, showTarget bool) {
	if snap.Contour {
		for _, t := range snap.Triangles() {
			g.fillTriangle(t, v)
		}
	} else {
		for _, seg := range snap.Segments {
			g.fillDisc(seg.Position, seg.Radius, v, CellBody)
		}
	}
	g.outline()

	g.fillDisc(snap.Head.Position, snap.Head.Radius*0.5, v, CellHead)
	if snap.Head.Oriented {
		for _, e := range snap.Head.Eyes {
			x, y := v.Cell(e)
			g.paint(x, y, CellEye)
		}
	}
	if showTarget {
		x, y := v.Cell(snap.Target)
		g.paint(x, y, CellTarget)
	}
}

func (g *Grid) outline() {
	var edges []int
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != CellBody {
				continue
			}
			if g.At(x-1, y) == CellEmpty || g.At(x+1, y) == CellEmpty ||
				g.At(x, y-1) == CellEmpty || g.At(x, y+1) == CellEmpty {
				edges = append(edges, y*g.W+x)
			}
		}
	}
	for _, i := range edges {
		g.Cells[i] = CellEdge
	}
}

// span returns the cell range covering the world box [lo, hi], clipped to g.
func (g *Grid) span(lo, hi geom.Point, v Viewport) (x0, y0, x1, y1 int) {
	x0, y0 = v.Cell(lo)
	x1, y1 = v.Cell(hi)
	return max(x0, 0), max(y0, 0), min(x1, g.W-1), min(y1, g.H-1)
}

func (g *Grid) fillDisc(c geom.Point, r float64, v Viewport, k CellKind) {
	if r <= 0 {
		return
	}
	off := r2.Vec{X: r, Y: r}
	x0, y0, x1, y1 := g.span(r2.Sub(c, off), r2.Add(c, off), v)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if geom.Dist(v.CellCenter(x, y), c) <= r {
				g.paint(x, y, k)
			}
		}
	}
}

func (g *Grid) fillTriangle(t creature.Triangle, v Viewport) {
	lo := geom.Pt(min(t.A.X, t.B.X, t.C.X), min(t.A.Y, t.B.Y, t.C.Y))
	hi := geom.Pt(max(t.A.X, t.B.X, t.C.X), max(t.A.Y, t.B.Y, t.C.Y))
	x0, y0, x1, y1 := g.span(lo, hi, v)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inTriangle(v.CellCenter(x, y), t) {
				g.paint(x, y, CellBody)
			}
		}
	}
}

// inTriangle accepts either winding.
func inTriangle(p geom.Point, t creature.Triangle) bool {
	d1 := r2.Cross(r2.Sub(t.B, t.A), r2.Sub(p, t.A))
	d2 := r2.Cross(r2.Sub(t.C, t.B), r2.Sub(p, t.B))
	d3 := r2.Cross(r2.Sub(t.A, t.C), r2.Sub(p, t.C))
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}
