package metrics

import (
	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/timeline"
)

// Metric accumulates a scalar over samples observed in time order.
type Metric interface {
	Name() string
	Observe(s decay.Sample)
	Value() float64
	Reset()
}

type Result struct {
	Name  string
	Value float64
}

// Run resets each metric, feeds it every sample of series and returns the
// values in metric order.
func Run(series *timeline.Series, ms ...Metric) []Result {
	out := make([]Result, len(ms))
	for i, m := range ms {
		m.Reset()
		for _, smp := range series.Samples {
			m.Observe(smp)
		}
		out[i] = Result{Name: m.Name(), Value: m.Value()}
	}
	return out
}

// Default returns the metrics that make sense for quantity q.
func Default(q decay.Quantity, floor float64) []Metric {
	if q == decay.QuantityConcentration {
		return []Metric{NewTotalDrift(), NewAboveFloor(floor)}
	}
	return []Metric{NewDecays(), NewAboveFloor(floor)}
}
