package metrics

import (
	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/isotope"
)

// Decays integrates total activity (Bq) over the observed times with the
// trapezoid rule, giving the number of decays between the first and last
// sample.
type Decays struct {
	name    string
	sum     float64
	lastT   float64
	lastBq  float64
	samples int
}

func NewDecays() *Decays {
	return &Decays{name: "decays"}
}

func (d *Decays) Name() string { return d.name }

func (d *Decays) Observe(s decay.Sample) {
	if d.samples > 0 {
		dt := (s.Time - d.lastT) * isotope.SecondsPerYear
		d.sum += 0.5 * (s.Total + d.lastBq) * dt
	}
	d.lastT, d.lastBq = s.Time, s.Total
	d.samples++
}

func (d *Decays) Value() float64 { return d.sum }

func (d *Decays) Reset() {
	d.sum = 0
	d.lastT = 0
	d.lastBq = 0
	d.samples = 0
}
