package decay

// Sample is a profile evaluated at one elapsed time. IDs lists the isotopes
// in chain order; Values holds amounts (concentration) or Bq (activity).
type Sample struct {
	Time   float64
	IDs    []string
	Values map[string]float64
	Total  float64
}

func newSample(t float64, capacity int) Sample {
	return Sample{
		Time:   t,
		IDs:    make([]string, 0, capacity),
		Values: make(map[string]float64, capacity),
	}
}

func (s Sample) Get(id string) float64 { return s.Values[id] }

func (s Sample) Has(id string) bool {
	_, ok := s.Values[id]
	return ok
}

func (s *Sample) put(id string, v float64) {
	if _, ok := s.Values[id]; !ok {
		s.IDs = append(s.IDs, id)
	}
	s.Values[id] = v
}

// Profile evaluates isotope abundance and activity at elapsed time t in
// years. Implementations are pure: equal t yields equal samples.
type Profile interface {
	Concentration(t float64) (Sample, error)
	Radioactivity(t float64) (Sample, error)
}

// Quantity names which side of a Profile to evaluate.
type Quantity string

const (
	QuantityConcentration Quantity = "concentration"
	QuantityRadioactivity Quantity = "radioactivity"
)

// Evaluate dispatches to the Profile method named by q.
func Evaluate(p Profile, q Quantity, t float64) (Sample, error) {
	if q == QuantityConcentration {
		return p.Concentration(t)
	}
	return p.Radioactivity(t)
}

func ParseQuantity(s string) (Quantity, bool) {
	switch s {
	case "concentration", "amount", "n":
		return QuantityConcentration, true
	case "radioactivity", "activity", "bq":
		return QuantityRadioactivity, true
	}
	return "", false
}

func (q Quantity) Unit() string {
	if q == QuantityConcentration {
		return "mol"
	}
	return "Bq"
}
