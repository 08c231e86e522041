package decay

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for chain construction and evaluation.
var (
	// ErrUnknownIsotope indicates a seed isotope absent from the table.
	ErrUnknownIsotope = errors.New("decay: isotope not tabulated")

	// ErrDegenerateChain indicates two chain members with equal decay constants.
	ErrDegenerateChain = errors.New("decay: degenerate chain (equal decay constants)")

	// ErrInvalidTime indicates a negative or non-finite elapsed time.
	ErrInvalidTime = errors.New("decay: invalid elapsed time")

	// ErrCyclicChain indicates a product that already appears in the chain.
	ErrCyclicChain = errors.New("decay: cyclic decay chain")

	// ErrInvalidCharge indicates a negative or non-finite starting quantity.
	ErrInvalidCharge = errors.New("decay: invalid charge")
)

type UnknownIsotopeError struct {
	ID string
}

func (e *UnknownIsotopeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownIsotope, e.ID)
}

func (e *UnknownIsotopeError) Unwrap() error { return ErrUnknownIsotope }

// DegenerateChainError reports the chain positions I and K whose decay
// constants coincide.
type DegenerateChainError struct {
	Chain Chain
	I, K  int
}

func (e *DegenerateChainError) Error() string {
	return fmt.Sprintf("%v: %s and %s in %s",
		ErrDegenerateChain, e.Chain.Members[e.K], e.Chain.Members[e.I], e.Chain)
}

func (e *DegenerateChainError) Unwrap() error { return ErrDegenerateChain }

type InvalidTimeError struct {
	T float64
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%v: t=%g", ErrInvalidTime, e.T)
}

func (e *InvalidTimeError) Unwrap() error { return ErrInvalidTime }

type CycleError struct {
	Path    []string
	Product string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrCyclicChain, strings.Join(e.Path, " -> "), e.Product)
}

func (e *CycleError) Unwrap() error { return ErrCyclicChain }
