package isotope

import (
	"math"
	"strconv"
	"strings"
)

const (
	DaysPerYear    = 365.25
	SecondsPerYear = DaysPerYear * 24 * 60 * 60

	// AtomsPerMole is the Avogadro constant used for activity conversion.
	AtomsPerMole = 6.02214179e23
)

func Years(y float64) float64   { return y }
func Days(d float64) float64    { return d / DaysPerYear }
func Hours(h float64) float64   { return h / (24 * DaysPerYear) }
func Minutes(m float64) float64 { return m / (60 * 24 * DaysPerYear) }
func Seconds(s float64) float64 { return s / (60 * 60 * 24 * DaysPerYear) }

// E returns 10^exp, used to scale tabulated halflives.
func E(exp float64) float64 {
	return math.Pow(10, exp)
}

// Moles converts a molar quantity to an atom count.
func Moles(n float64) float64 {
	return n * AtomsPerMole
}

// MassNumber returns the nucleon count encoded in an id such as "U-235" or
// "Pa-234m".
func MassNumber(id string) (int, bool) {
	_, digits, ok := strings.Cut(id, "-")
	if !ok {
		return 0, false
	}
	digits = strings.TrimSuffix(digits, "m")
	a, err := strconv.Atoi(digits)
	if err != nil || a <= 0 {
		return 0, false
	}
	return a, true
}

// KilogramsToMoles converts a mass of id to moles using its mass number as
// the molar mass in g/mol.
func KilogramsToMoles(id string, kg float64) (float64, bool) {
	a, ok := MassNumber(id)
	if !ok {
		return 0, false
	}
	return kg * 1000 / float64(a), true
}
