package decay

import (
	"fmt"
	"math"

	"github.com/san-kum/radioactive/internal/isotope"
)

type Option func(*Solver)

// WithPolicy sets the branch policy used to resolve chains.
func WithPolicy(p BranchPolicy) Option {
	return func(s *Solver) {
		if p != nil {
			s.policy = p
		}
	}
}

func WithMergePolicy(m MergePolicy) Option {
	return func(s *Solver) { s.merge = m }
}

// WithUntabulatedSeeds accepts seeds missing from the table and treats them
// as stable one-element chains instead of failing with UnknownIsotopeError.
func WithUntabulatedSeeds() Option {
	return func(s *Solver) { s.allowUntabulated = true }
}

type Solver struct {
	db               Database
	policy           BranchPolicy
	merge            MergePolicy
	allowUntabulated bool
	resolver         *Resolver
}

func NewSolver(db Database, opts ...Option) *Solver {
	s := &Solver{
		db:     db,
		policy: FirstListed,
		merge:  FirstWriteWins,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resolver = NewResolver(db, s.policy)
	return s
}

func (s *Solver) Resolver() *Resolver      { return s.resolver }
func (s *Solver) MergePolicy() MergePolicy { return s.merge }
func (s *Solver) AllowsUntabulated() bool  { return s.allowUntabulated }

// ChainProfile is the analytical solution for one decay chain.
type ChainProfile struct {
	chain   Chain
	lambda  []float64
	coef    *Matrix
	initial []float64
}

// ChainProfile resolves the chain seeded at id and builds its Bateman
// coefficients. The starting quantity of every chain member is taken from
// charges; on error charges is left untouched.
func (s *Solver) ChainProfile(id string, charges *ChargeMap) (*ChainProfile, error) {
	chain, err := s.resolver.Chain(id)
	if err != nil {
		return nil, err
	}
	if !chain.SeedKnown && !s.allowUntabulated {
		return nil, &UnknownIsotopeError{ID: id}
	}

	n := chain.Len()
	lambda := make([]float64, n)
	for i, m := range chain.Members {
		lambda[i] = s.db.DecayConstant(m)
	}
	for i := 1; i < n; i++ {
		for k := 0; k < i; k++ {
			if lambda[i] == lambda[k] {
				return nil, &DegenerateChainError{Chain: chain, I: i, K: k}
			}
		}
	}

	initial := make([]float64, n)
	for i, m := range chain.Members {
		initial[i] = charges.Remaining(m)
	}

	c := NewMatrix(n)
	c.Set(0, 0, initial[0])
	for i := 1; i < n; i++ {
		sum := 0.0
		for k := 0; k < i; k++ {
			// member i is fed by member i-1 at rate lambda[i-1]
			v := lambda[i-1] * c.At(i-1, k) / (lambda[i] - lambda[k])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &DegenerateChainError{Chain: chain, I: i, K: k}
			}
			c.Set(i, k, v)
			sum += v
		}
		c.Set(i, i, initial[i]-sum)
	}

	for _, m := range chain.Members {
		charges.Take(m)
	}

	return &ChainProfile{chain: chain, lambda: lambda, coef: c, initial: initial}, nil
}

func (p *ChainProfile) Chain() Chain {
	members := make([]string, len(p.chain.Members))
	copy(members, p.chain.Members)
	return Chain{Members: members, SeedKnown: p.chain.SeedKnown}
}

// Matrix returns a copy of the coefficient matrix.
func (p *ChainProfile) Matrix() *Matrix { return p.coef.Clone() }

func (p *ChainProfile) DecayConstants() []float64 {
	out := make([]float64, len(p.lambda))
	copy(out, p.lambda)
	return out
}

func validateTime(t float64) error {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return &InvalidTimeError{T: t}
	}
	return nil
}

// amounts returns the abundance of every chain member at t, clamped at zero.
func (p *ChainProfile) amounts(t float64) ([]float64, error) {
	if err := validateTime(t); err != nil {
		return nil, err
	}
	n := len(p.lambda)
	out := make([]float64, n)
	if t == 0 {
		for i, v := range p.initial {
			out[i] = math.Max(0, v)
		}
		return out, nil
	}

	exps := make([]float64, n)
	for k, l := range p.lambda {
		exps[k] = math.Exp(-l * t)
	}
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 0; k <= i; k++ {
			sum += p.coef.At(i, k) * exps[k]
		}
		out[i] = math.Max(0, sum)
	}
	return out, nil
}

func (p *ChainProfile) Concentration(t float64) (Sample, error) {
	n, err := p.amounts(t)
	if err != nil {
		return Sample{}, err
	}
	s := newSample(t, len(n))
	for i, v := range n {
		s.put(p.chain.Members[i], v)
		s.Total += v
	}
	return s, nil
}

// Radioactivity returns activity in Bq, treating abundances as moles.
func (p *ChainProfile) Radioactivity(t float64) (Sample, error) {
	n, err := p.amounts(t)
	if err != nil {
		return Sample{}, err
	}
	s := newSample(t, len(n))
	for i, v := range n {
		bq := isotope.Moles(p.lambda[i]*v) / isotope.SecondsPerYear
		s.put(p.chain.Members[i], bq)
		s.Total += bq
	}
	return s, nil
}

// Profile builds one chain profile per top-level isotope of m, in m's
// order, against a single working copy of m. A later chain that revisits
// an isotope already consumed by an earlier chain sees no extra quantity.
func (s *Solver) Profile(m Mixture) (*MixtureProfile, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	charges := m.WorkingCopy()

	series := make([]*ChainProfile, 0, m.Len())
	for _, id := range m.IDs() {
		p, err := s.ChainProfile(id, charges)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", id, err)
		}
		series = append(series, p)
	}
	return &MixtureProfile{series: series, merge: s.merge}, nil
}
