package decay

import (
	"strings"

	"github.com/san-kum/radioactive/internal/isotope"
)

// Database is the read side of an isotope table.
type Database interface {
	Branches(id string) ([]isotope.Branch, bool)
	DecayConstant(id string) float64
}

// Chain is an ordered decay path from a seed to a stable nuclide.
// SeedKnown is false when the seed itself is not tabulated, which makes a
// one-element chain for a typo distinguishable from a stable seed.
type Chain struct {
	Members   []string
	SeedKnown bool
}

func (c Chain) Len() int       { return len(c.Members) }
func (c Chain) Seed() string   { return c.Members[0] }
func (c Chain) Last() string   { return c.Members[len(c.Members)-1] }
func (c Chain) String() string { return strings.Join(c.Members, " -> ") }

type Resolver struct {
	db     Database
	policy BranchPolicy
}

// NewResolver returns a resolver over db. A nil policy means FirstListed.
func NewResolver(db Database, policy BranchPolicy) *Resolver {
	if policy == nil {
		policy = FirstListed
	}
	return &Resolver{db: db, policy: policy}
}

func (r *Resolver) Policy() BranchPolicy { return r.policy }

// Chain walks the table from id, appending the selected product of the
// newest member until that member has no record.
func (r *Resolver) Chain(id string) (Chain, error) {
	members := []string{id}
	seen := map[string]bool{id: true}

	branches, ok := r.db.Branches(id)
	c := Chain{SeedKnown: ok}
	for ok && len(branches) > 0 {
		next := r.policy.Select(branches).Product
		if seen[next] {
			return Chain{}, &CycleError{Path: members, Product: next}
		}
		seen[next] = true
		members = append(members, next)
		branches, ok = r.db.Branches(next)
	}

	c.Members = members
	return c, nil
}
