package decay

import (
	"fmt"
	"sort"

	"github.com/san-kum/radioactive/internal/isotope"
)

// BranchPolicy picks the single product a chain follows from a record's
// decay branches. Select is only called with a non-empty slice.
type BranchPolicy interface {
	Name() string
	Select(branches []isotope.Branch) isotope.Branch
}

type firstListed struct{}

func (firstListed) Name() string { return "first-listed" }

func (firstListed) Select(branches []isotope.Branch) isotope.Branch {
	return branches[0]
}

type largestFraction struct{}

func (largestFraction) Name() string { return "largest-fraction" }

// Select returns the highest-fraction branch; ties keep table order.
func (largestFraction) Select(branches []isotope.Branch) isotope.Branch {
	best := branches[0]
	for _, b := range branches[1:] {
		if b.Fraction > best.Fraction {
			best = b
		}
	}
	return best
}

var (
	// FirstListed follows the first tabulated branch of every record.
	FirstListed BranchPolicy = firstListed{}

	// LargestFraction follows the most probable branch of every record.
	LargestFraction BranchPolicy = largestFraction{}
)

var branchPolicies = map[string]BranchPolicy{
	FirstListed.Name():     FirstListed,
	LargestFraction.Name(): LargestFraction,
}

func PolicyByName(name string) (BranchPolicy, error) {
	p, ok := branchPolicies[name]
	if !ok {
		return nil, fmt.Errorf("unknown branch policy: %s", name)
	}
	return p, nil
}

func ListPolicies() []string {
	names := make([]string, 0, len(branchPolicies))
	for name := range branchPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
