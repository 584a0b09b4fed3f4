package plot

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"curve-points/internal/export"
)

// Options controls the rendered chart.
type Options struct {
	Title  string
	Width  int
	Height int
	// Rows and Cols fix the axis ranges to the source image when set.
	Rows int
	Cols int
}

func DefaultOptions() Options {
	return Options{
		Title:  "Extracted points",
		Width:  1024,
		Height: 768,
	}
}

// Render draws points as an unconnected scatter plot and encodes it as PNG.
func Render(w io.Writer, points []export.Point, opts Options) error {
	if len(points) == 0 {
		return errors.New("no points to plot")
	}

	xvalues := make([]float64, len(points))
	yvalues := make([]float64, len(points))
	for i, p := range points {
		xvalues[i] = float64(p.X)
		yvalues[i] = float64(p.Y)
	}

	series := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    2,
			DotColor:    drawing.ColorRed,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	xaxis := chart.XAxis{Name: "x", Range: axisRange(xvalues, opts.Cols)}
	yaxis := chart.YAxis{Name: "y", Range: axisRange(yvalues, opts.Rows)}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  xaxis,
		YAxis:  yaxis,
		Series: []chart.Series{series},
	}
	return graph.Render(chart.PNG, w)
}

// axisRange spans [0, size] when the image size is known, otherwise the
// data padded by one unit so a single point still gives a non-zero range.
func axisRange(values []float64, size int) *chart.ContinuousRange {
	if size > 0 {
		return &chart.ContinuousRange{Min: 0, Max: float64(size)}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}
