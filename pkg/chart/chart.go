// Package chart renders calculator curves: PNG/SVG/PDF through gonum/plot and
// interactive HTML through go-echarts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edp1096/semilab/pkg/curve"
)

var (
	ErrNoSeries = errors.New("chart: figure has no series")
	ErrFormat   = errors.New("chart: unsupported output format")
)

type Series struct {
	Name  string
	Curve curve.Curve
}

// Mark is a labelled point drawn over the series, e.g. a Q-point.
type Mark struct {
	Name string
	curve.Point
}

type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
	Marks  []Mark
}

func (f *Figure) Add(name string, c curve.Curve) {
	f.Series = append(f.Series, Series{Name: name, Curve: c})
}

func (f *Figure) Mark(name string, x, y float64) {
	f.Marks = append(f.Marks, Mark{Name: name, Point: curve.Point{X: x, Y: y}})
}

// Format returns the lower-case output format for a file name ("png", "html", ...).
func Format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps", "html":
		return ext, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// Save writes the figure to path, choosing the renderer from the extension.
// width and height are in inches and ignored for HTML.
func (f *Figure) Save(path string, width, height float64) (err error) {
	format, err := Format(path)
	if err != nil {
		return err
	}
	if len(f.Series) == 0 {
		return ErrNoSeries
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return f.Write(file, format, width, height)
}

func (f *Figure) Write(w io.Writer, format string, width, height float64) error {
	if len(f.Series) == 0 {
		return ErrNoSeries
	}
	if format == "html" {
		return f.RenderHTML(w)
	}
	return f.WritePlot(w, format, width, height)
}
