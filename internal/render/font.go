package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font atlas layout: 32 cols x 4 rows, ASCII 0-127, one glyph per cell.
const (
	FontCellW  = 16
	FontCellH  = 32
	FontCols   = 32
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 512
	FontAtlasH = FontCellH * FontRows // 128

	fontSize = 24
)

// TextStride is the float count per text vertex: x, y, u, v, r, g, b, a.
const TextStride = 8

// NewFontAtlas rasterises Go Mono into a white-on-transparent glyph grid.
func NewFontAtlas() (*image.NRGBA, error) {
	fnt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	baseline := ascent + (FontCellH-ascent-face.Metrics().Descent.Ceil())/2
	for c := 32; c < 127; c++ {
		col, row := c%FontCols, c/FontCols
		adv, ok := face.GlyphAdvance(rune(c))
		if !ok {
			continue
		}
		x := col*FontCellW + (FontCellW-adv.Ceil())/2
		d.Dot = fixed.P(x, row*FontCellH+baseline)
		d.DrawString(string(rune(c)))
	}
	return img, nil
}

// AppendText lays text out as textured quads in screen pixels, two triangles
// per printable glyph. Newlines return to x.
func AppendText(buf []float32, text string, x, y, scale float32, col RGB, alpha float32) []float32 {
	cr, cg, cb := col.Floats()
	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale
	sx, sy := x, y
	for _, ch := range text {
		if ch == '\n' {
			sx = x
			sy += h
			continue
		}
		if ch >= 32 && ch <= 126 {
			c := int(ch)
			column, row := c%FontCols, c/FontCols
			u0 := float32(column*FontCellW) / FontAtlasW
			v0 := float32(row*FontCellH) / FontAtlasH
			u1 := float32((column+1)*FontCellW) / FontAtlasW
			v1 := float32((row+1)*FontCellH) / FontAtlasH
			buf = append(buf,
				sx, sy, u0, v0, cr, cg, cb, alpha,
				sx+w, sy, u1, v0, cr, cg, cb, alpha,
				sx, sy+h, u0, v1, cr, cg, cb, alpha,
				sx+w, sy, u1, v0, cr, cg, cb, alpha,
				sx+w, sy+h, u1, v1, cr, cg, cb, alpha,
				sx, sy+h, u0, v1, cr, cg, cb, alpha,
			)
		}
		sx += w
	}
	return buf
}

// TextWidth returns the width in screen pixels of the widest line of text.
func TextWidth(text string, scale float32) int {
	lineLen, maxLineLen := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	return int(float32(maxLineLen*FontCellW) * scale)
}
