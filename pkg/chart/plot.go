package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func (f *Figure) build() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, s := range f.Series {
		l, err := plotter.NewLine(s.Curve)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(1.5)
		p.Add(l)
		if s.Name != "" {
			p.Legend.Add(s.Name, l)
		}
	}

	for i, m := range f.Marks {
		sc, err := plotter.NewScatter(plotter.XYs{{X: m.X, Y: m.Y}})
		if err != nil {
			return nil, fmt.Errorf("mark %q: %w", m.Name, err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Color = plotutil.Color(len(f.Series) + i)
		p.Add(sc)
		if m.Name != "" {
			p.Legend.Add(m.Name, sc)
		}
	}

	return p, nil
}

// WritePlot renders a static image; format is any gonum/plot extension (png, svg, pdf, ...).
func (f *Figure) WritePlot(w io.Writer, format string, width, height float64) error {
	if len(f.Series) == 0 {
		return ErrNoSeries
	}
	p, err := f.build()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	_, err = wt.WriteTo(w)
	return err
}
