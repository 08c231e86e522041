// Package decay solves radioactive decay chains analytically.
//
// The package resolves a seed isotope into a linear decay chain, builds the
// Bateman coefficient matrix for that chain and returns pure time-functions
// for isotope abundance and activity:
//
//   - [Resolver]: walks an isotope table into a [Chain] using a [BranchPolicy]
//   - [Solver]: builds a [ChainProfile] per chain and a [MixtureProfile]
//     for a whole [Mixture]
//   - [ChargeMap]: the working quantity pool consumed while coefficients
//     are built
//
// # Example
//
//	m := decay.NewMixture(decay.Charge{ID: "Cs-137", Amount: 1})
//	p, err := decay.DecayProfile(m)
//	if err != nil {
//	    return err
//	}
//	s, _ := p.Radioactivity(30.17)
//	fmt.Println(s.Total)
//
// # Branching
//
// Chains follow a single product per step. Minor branches recorded in the
// table are not tracked; [FirstListed] selects the first tabulated branch.
//
// # Thread Safety
//
// Profiles are immutable once built and may be evaluated concurrently.
// A [ChargeMap] is owned by a single aggregation and is not safe to share.
package decay
