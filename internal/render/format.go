package render

import (
	"math"
	"strconv"

	"github.com/san-kum/radioactive/internal/isotope"
)

// Duration formats a span in years with the largest unit that keeps the
// number at or above one.
func Duration(years float64) string {
	switch {
	case math.IsInf(years, 1):
		return "stable"
	case years == 0:
		return "0 s"
	case years >= 1:
		return Number(years) + " y"
	case years >= isotope.Days(1):
		return Number(years/isotope.Days(1)) + " d"
	case years >= isotope.Hours(1):
		return Number(years/isotope.Hours(1)) + " h"
	case years >= isotope.Minutes(1):
		return Number(years/isotope.Minutes(1)) + " min"
	default:
		return Number(years/isotope.Seconds(1)) + " s"
	}
}

// Number prints v with four significant digits.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
