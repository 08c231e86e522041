package metrics

import (
	"math"

	"github.com/san-kum/radioactive/internal/decay"
)

// TotalDrift is the largest relative departure of a sample total from the
// first observed total. For concentration it measures mass conservation.
type TotalDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewTotalDrift() *TotalDrift {
	return &TotalDrift{name: "total_drift"}
}

func (d *TotalDrift) Name() string { return d.name }

func (d *TotalDrift) Observe(s decay.Sample) {
	if d.samples == 0 {
		d.initial = s.Total
	}
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(s.Total-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *TotalDrift) Value() float64 { return d.maxDrift }

func (d *TotalDrift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}
