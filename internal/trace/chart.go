package trace

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gopkg.in/yaml.v3"

	"procsnake/internal/geom"
)

// WriteHTML renders an interactive page: head-to-target distance and body
// reach per tick, and the final spine as a scatter.
func (tr *Trace) WriteHTML(w io.Writer) error {
	ticks := make([]int, len(tr.Samples))
	dist := make([]opts.LineData, len(tr.Samples))
	reach := make([]opts.LineData, len(tr.Samples))
	for i, s := range tr.Samples {
		ticks[i] = s.Tick
		dist[i] = opts.LineData{Value: geom.Dist(s.Head, s.Target)}
		reach[i] = opts.LineData{Value: s.Reach}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "procsnake trace", Width: "1100px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Head to target",
			Subtitle: fmt.Sprintf("path=%s ticks=%d parks=%d resumes=%d", tr.Path, tr.Stats.Ticks, tr.Stats.Parks, tr.Stats.Resumes),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "tick", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "px"}),
	)
	noSymbol := charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)})
	line.SetXAxis(ticks).
		AddSeries("distance", dist, noSymbol).
		AddSeries("reach", reach, noSymbol)

	spine := tr.Final.Spine()
	pts := make([]opts.ScatterData, len(spine))
	for i, p := range spine {
		pts[i] = opts.ScatterData{Value: []interface{}{p.X, -p.Y}}
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Final spine", Subtitle: fmt.Sprintf("segments=%d", len(tr.Final.Segments))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "-y", Scale: opts.Bool(true)}),
	)
	scatter.AddSeries("spine", pts, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	page := components.NewPage()
	page.PageTitle = "procsnake trace"
	page.AddCharts(line, scatter)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// WriteConfig writes the creature configuration that produced the trace.
func (tr *Trace) WriteConfig(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr.Config); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
