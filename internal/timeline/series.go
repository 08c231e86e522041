package timeline

import (
	"github.com/san-kum/radioactive/internal/decay"
)

// Series is a profile sampled over a time grid, in increasing time order.
type Series struct {
	Quantity decay.Quantity
	Times    []float64
	Samples  []decay.Sample
}

func (s *Series) Len() int { return len(s.Times) }

func (s *Series) Totals() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Total
	}
	return out
}

// IDs returns every isotope seen in the series in first-seen order.
func (s *Series) IDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, smp := range s.Samples {
		for _, id := range smp.IDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func (s *Series) Column(id string) []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Get(id)
	}
	return out
}

// FirstBelow returns the earliest sampled time whose total is below floor.
func (s *Series) FirstBelow(floor float64) (float64, bool) {
	for i, smp := range s.Samples {
		if smp.Total < floor {
			return s.Times[i], true
		}
	}
	return 0, false
}

// Peak returns the sample with the largest value for id.
func (s *Series) Peak(id string) (t, v float64) {
	for i, smp := range s.Samples {
		if x := smp.Get(id); x > v {
			t, v = s.Times[i], x
		}
	}
	return t, v
}

// Above drops samples whose total is below floor, keeping order.
func (s *Series) Above(floor float64) *Series {
	out := &Series{Quantity: s.Quantity}
	for i, smp := range s.Samples {
		if smp.Total >= floor {
			out.Times = append(out.Times, s.Times[i])
			out.Samples = append(out.Samples, smp)
		}
	}
	return out
}
