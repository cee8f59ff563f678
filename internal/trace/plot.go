package trace

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"procsnake/internal/creature"
	"procsnake/internal/geom"
	"procsnake/internal/render"
)

func nrgba(c render.RGB, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// xys converts world points to plot points. World y grows downward, plot y
// upward, so y is negated to keep the picture the right way up.
func xys(pts []geom.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[i] = plotter.XY{X: p.X, Y: -p.Y}
	}
	return out
}

// bodyShape is the closed outline, nil for creatures without a contour.
func bodyShape(s creature.Snapshot) []geom.Point {
	if o := s.Outline(); len(o) >= 3 {
		return o
	}
	return nil
}

// Plot builds the trace figure: target and head paths, faded keyframe
// outlines and the final body.
func (tr *Trace) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s path, %d ticks", tr.Path, tr.Stats.Ticks)
	p.X.Label.Text = "x (px)"
	p.Y.Label.Text = "-y (px)"
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	for _, kf := range tr.Keyframes {
		shape := bodyShape(kf)
		if shape == nil {
			continue
		}
		poly, err := plotter.NewPolygon(xys(shape))
		if err != nil {
			return nil, fmt.Errorf("keyframe outline: %w", err)
		}
		poly.Color = nrgba(render.Palette.Fill, 40)
		poly.LineStyle.Color = nrgba(render.Palette.Ghost, 80)
		poly.LineStyle.Width = vg.Points(0.5)
		p.Add(poly)
	}

	targets := make([]geom.Point, 0, len(tr.Samples))
	heads := make([]geom.Point, 0, len(tr.Samples))
	for _, s := range tr.Samples {
		targets = append(targets, s.Target)
		heads = append(heads, s.Head)
	}
	if len(targets) > 0 {
		tl, err := plotter.NewLine(xys(targets))
		if err != nil {
			return nil, fmt.Errorf("target line: %w", err)
		}
		tl.Color = nrgba(render.Palette.Target, 255)
		tl.Width = vg.Points(1)
		tl.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(tl)
		p.Legend.Add("target", tl)

		hl, err := plotter.NewLine(xys(heads))
		if err != nil {
			return nil, fmt.Errorf("head line: %w", err)
		}
		hl.Color = nrgba(render.Palette.Stroke, 255)
		hl.Width = vg.Points(1)
		p.Add(hl)
		p.Legend.Add("head", hl)
	}

	if shape := bodyShape(tr.Final); shape != nil {
		poly, err := plotter.NewPolygon(xys(shape))
		if err != nil {
			return nil, fmt.Errorf("final outline: %w", err)
		}
		poly.Color = nrgba(render.Palette.Fill, 255)
		poly.LineStyle.Color = nrgba(render.Palette.Stroke, 255)
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)
	}

	spine, err := plotter.NewScatter(xys(tr.Final.Spine()))
	if err != nil {
		return nil, fmt.Errorf("spine: %w", err)
	}
	spine.GlyphStyle.Color = nrgba(render.Palette.Ghost, 255)
	spine.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(spine)
	p.Legend.Add("spine", spine)

	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = squareRange(p)
	return p, nil
}

// squareRange widens the shorter axis so world units are square on a square canvas.
func squareRange(p *plot.Plot) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = p.X.Min, p.X.Max, p.Y.Min, p.Y.Max
	w, h := xmax-xmin, ymax-ymin
	if w > h {
		pad := (w - h) / 2
		return xmin, xmax, ymin - pad, ymax + pad
	}
	pad := (h - w) / 2
	return xmin - pad, xmax + pad, ymin, ymax
}

// SavePNG writes the plot as a size x size image to file.
func (tr *Trace) SavePNG(file string, size vg.Length) error {
	p, err := tr.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(size, size, file); err != nil {
		return fmt.Errorf("save trace plot: %w", err)
	}
	return nil
}
