package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsnake/internal/creature"
	"procsnake/internal/geom"
)

func TestMeshPrimitives(t *testing.T) {
	var m Mesh
	m.Line(geom.Pt(0, 0), geom.Pt(10, 0), 4, Palette.Stroke, 1)
	require.Equal(t, 6, m.Len())

	// The quad straddles the line by half the width on each side.
	var ys []float32
	for i := 0; i < m.Len(); i++ {
		ys = append(ys, m.Verts[i*MeshStride+1])
	}
	assert.Contains(t, ys, float32(2))
	assert.Contains(t, ys, float32(-2))

	m.Reset()
	m.Line(geom.Pt(3, 3), geom.Pt(3, 3), 4, Palette.Stroke, 1)
	assert.Zero(t, m.Len(), "degenerate lines are skipped")

	m.Disc(geom.Pt(0, 0), 5, 16, Palette.Fill, 0.5)
	assert.Equal(t, 48, m.Len())
	assert.Equal(t, float32(0.5), m.Verts[5])

	m.Reset()
	m.Disc(geom.Pt(0, 0), 0, 16, Palette.Fill, 1)
	m.Polyline([]geom.Point{geom.Pt(0, 0)}, 1, Palette.Fill, 1)
	assert.Zero(t, m.Len())
}

func TestAppendSprite(t *testing.T) {
	buf := AppendSprite(nil, geom.Pt(1, 2), 10, RGB{R: 255}, 0.75)
	assert.Equal(t, []float32{1, 2, 10, 1, 0, 0, 0.75, 0}, buf)
}

func TestBuildOutlineFrame(t *testing.T) {
	cfg, _ := creature.Preset(creature.PresetOutline)
	c := creature.MustNew(cfg)
	for i := 0; i < 400; i++ {
		c.Tick(geom.Pt(3000, 1500))
	}
	snap := c.Snapshot()

	var f Frame
	f.Build(snap, DefaultStyle())

	assert.Equal(t, 3*len(snap.Triangles()), f.Fill.Len())
	// Ring, two head joints, both sides and the tail fan, two triangles per line.
	lines := (cfg.HeadDots - 1) + 2 + 2*(cfg.Segments()-1) + (cfg.TailDots - 1)
	assert.Equal(t, 6*lines, f.Stroke.Len())
	assert.Len(t, f.Sprites, 3*SpriteStride, "two eyes and the target")

	// Rebuilding reuses the buffers instead of growing them.
	f.Build(snap, DefaultStyle())
	assert.Equal(t, 3*len(snap.Triangles()), f.Fill.Len())
}

func TestBuildDiscFrame(t *testing.T) {
	cfg, _ := creature.Preset(creature.PresetBasic)
	c := creature.MustNew(cfg)
	for i := 0; i < 400; i++ {
		c.Tick(geom.Pt(5000, -150))
	}
	st := DefaultStyle()
	st.ShowTarget = false

	var f Frame
	f.Build(c.Snapshot(), st)

	n := cfg.Segments()
	assert.Equal(t, n*6+n*3*st.DiscSides, f.Fill.Len())
	assert.Equal(t, (n+2)*3*st.DiscSides, f.Stroke.Len())
	assert.Empty(t, f.Sprites)
}

func TestLerp(t *testing.T) {
	a, b := RGB{R: 0, G: 100, B: 200}, RGB{R: 100, G: 100, B: 0}
	assert.Equal(t, a, Lerp(a, b, -1))
	assert.Equal(t, b, Lerp(a, b, 2))
	assert.Equal(t, RGB{R: 50, G: 100, B: 100}, Lerp(a, b, 0.5))
	assert.Equal(t, RGB{R: 128, G: 0, B: 0}, RGB{R: 255}.Mul(128))
}

func cellCoverage(img *image.NRGBA, ch rune) int {
	col, row := int(ch)%FontCols, int(ch)/FontCols
	n := 0
	for y := row * FontCellH; y < (row+1)*FontCellH; y++ {
		for x := col * FontCellW; x < (col+1)*FontCellW; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestFontAtlas(t *testing.T) {
	img, err := NewFontAtlas()
	require.NoError(t, err)
	assert.Equal(t, FontAtlasW, img.Bounds().Dx())
	assert.Equal(t, FontAtlasH, img.Bounds().Dy())

	assert.Zero(t, cellCoverage(img, ' '))
	assert.Positive(t, cellCoverage(img, 'A'))
	assert.Positive(t, cellCoverage(img, 'p'), "descenders stay inside the cell")
}

func TestAppendText(t *testing.T) {
	buf := AppendText(nil, "ab\nc\x01", 10, 20, 0.5, Palette.Hint, 1)
	require.Len(t, buf, 3*6*TextStride, "newlines and control bytes emit nothing")

	// Third glyph starts a new line back at x.
	third := buf[2*6*TextStride:]
	assert.Equal(t, float32(10), third[0])
	assert.Equal(t, float32(20+FontCellH/2), third[1])

	assert.Equal(t, 3*FontCellW, TextWidth("ab\nabc", 1))
	assert.Equal(t, FontCellW, TextWidth("ab", 0.5))
	assert.Zero(t, TextWidth("", 1))
}
