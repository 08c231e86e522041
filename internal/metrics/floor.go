package metrics

import (
	"github.com/san-kum/radioactive/internal/decay"
)

// AboveFloor is the fraction of samples whose total exceeds a threshold.
type AboveFloor struct {
	name    string
	floor   float64
	above   int
	samples int
}

func NewAboveFloor(floor float64) *AboveFloor {
	return &AboveFloor{
		name:  "above_floor",
		floor: floor,
	}
}

func (a *AboveFloor) Name() string { return a.name }

func (a *AboveFloor) Observe(s decay.Sample) {
	a.samples++
	if s.Total > a.floor {
		a.above++
	}
}

func (a *AboveFloor) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return float64(a.above) / float64(a.samples)
}

func (a *AboveFloor) Reset() {
	a.above = 0
	a.samples = 0
}
