package decay

import (
	"sync"

	"github.com/san-kum/radioactive/internal/isotope"
)

var defaultSolver = sync.OnceValue(func() *Solver {
	return NewSolver(isotope.Default())
})

// Isotopes exposes the shipped table for inspection.
func Isotopes() *isotope.Table { return isotope.Default() }

// DecayChain resolves id against the shipped table with FirstListed.
func DecayChain(id string) (Chain, error) {
	return defaultSolver().Resolver().Chain(id)
}

// DecayChainProfile solves the chain seeded at id, consuming charges.
func DecayChainProfile(id string, charges *ChargeMap) (*ChainProfile, error) {
	return defaultSolver().ChainProfile(id, charges)
}

// DecayProfile solves every chain of m and merges them first-write-wins.
// m is not modified.
func DecayProfile(m Mixture) (*MixtureProfile, error) {
	return defaultSolver().Profile(m)
}
