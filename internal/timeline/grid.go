package timeline

import (
	"fmt"
	"math"
)

// DecadeMultipliers are the points sampled inside each power of ten.
var DecadeMultipliers = []float64{1, 3, 5, 7, 9}

// LogGrid returns m·10^p for every multiplier m and p in [minDecade, maxDecade].
func LogGrid(minDecade, maxDecade int) ([]float64, error) {
	if maxDecade < minDecade {
		return nil, fmt.Errorf("max decade %d below min decade %d", maxDecade, minDecade)
	}
	times := make([]float64, 0, (maxDecade-minDecade+1)*len(DecadeMultipliers))
	for p := minDecade; p <= maxDecade; p++ {
		times = append(times, decade(p)...)
	}
	return times, nil
}

func decade(p int) []float64 {
	base := math.Pow(10, float64(p))
	out := make([]float64, len(DecadeMultipliers))
	for i, m := range DecadeMultipliers {
		out[i] = m * base
	}
	return out
}

// LinearGrid returns n evenly spaced times from start to end inclusive.
func LinearGrid(start, end float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("linear grid needs at least 2 points, got %d", n)
	}
	if start < 0 || end <= start {
		return nil, fmt.Errorf("invalid linear grid range [%g, %g]", start, end)
	}
	step := (end - start) / float64(n-1)
	times := make([]float64, n)
	for i := range times {
		times[i] = start + float64(i)*step
	}
	times[n-1] = end
	return times, nil
}
