package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// RenderHTML writes a self-contained echarts page with one line per series.
func (f *Figure) RenderHTML(w io.Writer) error {
	if len(f.Series) == 0 {
		return ErrNoSeries
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: f.Title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: f.Title,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: f.XLabel,
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  f.YLabel,
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)

	for _, s := range f.Series {
		data := make([]opts.LineData, len(s.Curve))
		for i, p := range s.Curve {
			data[i] = opts.LineData{Value: []float64{p.X, p.Y}}
		}
		line.AddSeries(s.Name, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}

	if len(f.Marks) > 0 {
		scatter := charts.NewScatter()
		for _, m := range f.Marks {
			scatter.AddSeries(m.Name, []opts.ScatterData{{
				Value:      []float64{m.X, m.Y},
				SymbolSize: 12,
			}})
		}
		line.Overlap(scatter)
	}

	return line.Render(w)
}
