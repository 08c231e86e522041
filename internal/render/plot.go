package render

import (
	"errors"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/radioactive/internal/timeline"
)

var ErrNothingToPlot = errors.New("render: no positive samples to plot")

// logValues maps values to log10, flooring non-positive entries at the
// smallest positive log seen so the curve stays continuous.
func logValues(values []float64) []float64 {
	out := make([]float64, len(values))
	floor := math.Inf(1)
	for i, v := range values {
		if v > 0 {
			out[i] = math.Log10(v)
			floor = math.Min(floor, out[i])
		}
	}
	if math.IsInf(floor, 1) {
		floor = 0
	}
	for i, v := range values {
		if v <= 0 {
			out[i] = floor
		}
	}
	return out
}

// PlotOptions controls the terminal chart size.
type PlotOptions struct {
	Width   int
	Height  int
	Caption string
	// ID plots a single isotope column instead of the total.
	ID string
}

// Plot draws log10 of the series total (or one isotope) against sample
// index. Samples are spaced as the grid spaces them, so a log grid reads
// as a log-log chart.
func Plot(s *timeline.Series, opts PlotOptions) (string, error) {
	values := s.Totals()
	if opts.ID != "" {
		values = s.Column(opts.ID)
	}

	positive := false
	for _, v := range values {
		if v > 0 {
			positive = true
			break
		}
	}
	if !positive {
		return "", ErrNothingToPlot
	}

	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 15
	}
	caption := opts.Caption
	if caption == "" {
		caption = "log10 " + string(s.Quantity) + " (" + s.Quantity.Unit() + ")"
	}

	return asciigraph.Plot(logValues(values),
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	), nil
}
