package analysis

import "math"

// fitSlope fits a least-squares line through (xs, ys) and returns its
// slope. Fewer than two points cannot define a slope; the result is
// NaN so parameter sweeps degrade softly instead of aborting.
func fitSlope(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return math.NaN()
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}

	denom := float64(n)*sumXX - sumX*sumX
	if denom == 0 {
		return math.NaN()
	}
	return (float64(n)*sumXY - sumX*sumY) / denom
}
