package decay

import "fmt"

// MergePolicy decides how per-chain samples combine when two chains
// report the same isotope. Total is always summed across chains.
type MergePolicy int

const (
	// FirstWriteWins keeps the value of the first chain reporting an
	// isotope and drops later ones.
	FirstWriteWins MergePolicy = iota
	// SumOverlap adds the values of every chain reporting an isotope.
	SumOverlap
)

func (m MergePolicy) String() string {
	switch m {
	case FirstWriteWins:
		return "first-write-wins"
	case SumOverlap:
		return "sum"
	default:
		return fmt.Sprintf("MergePolicy(%d)", int(m))
	}
}

func ParseMergePolicy(s string) (MergePolicy, error) {
	switch s {
	case "", "first-write-wins", "first":
		return FirstWriteWins, nil
	case "sum", "sum-overlap":
		return SumOverlap, nil
	}
	return 0, fmt.Errorf("unknown merge policy: %s", s)
}

func (m MergePolicy) merge(acc *Sample, s Sample) {
	for _, id := range s.IDs {
		v := s.Values[id]
		if !acc.Has(id) {
			acc.put(id, v)
			continue
		}
		if m == SumOverlap {
			acc.Values[id] += v
		}
	}
	acc.Total += s.Total
}

// MixtureProfile combines the chain profiles of a starting mixture.
type MixtureProfile struct {
	series []*ChainProfile
	merge  MergePolicy
}

func (p *MixtureProfile) Series() []*ChainProfile {
	out := make([]*ChainProfile, len(p.series))
	copy(out, p.series)
	return out
}

func (p *MixtureProfile) Chains() []Chain {
	out := make([]Chain, 0, len(p.series))
	for _, s := range p.series {
		out = append(out, s.Chain())
	}
	return out
}

func (p *MixtureProfile) Concentration(t float64) (Sample, error) {
	return p.combine(t, (*ChainProfile).Concentration)
}

func (p *MixtureProfile) Radioactivity(t float64) (Sample, error) {
	return p.combine(t, (*ChainProfile).Radioactivity)
}

func (p *MixtureProfile) combine(t float64, eval func(*ChainProfile, float64) (Sample, error)) (Sample, error) {
	if err := validateTime(t); err != nil {
		return Sample{}, err
	}
	acc := newSample(t, 0)
	for _, series := range p.series {
		s, err := eval(series, t)
		if err != nil {
			return Sample{}, err
		}
		p.merge.merge(&acc, s)
	}
	return acc, nil
}
