package analysis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/chaoskit/internal/dynamo"
)

// logFloor keeps log(C(r)) finite when a correlation sum is zero.
const logFloor = 1e-12

// KaplanYorke computes the Kaplan-Yorke dimension from a Lyapunov
// spectrum. The input is re-sorted descending internally, so callers
// need not pre-sort. Returns 0 when even the largest exponent is
// negative, and the full spectrum length when the cumulative sum never
// turns negative.
func KaplanYorke(exponents []float64) float64 {
	sorted := make([]float64, len(exponents))
	copy(sorted, exponents)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	sum := 0.0
	j := 0
	partial := 0.0
	for i, lambda := range sorted {
		sum += lambda
		if sum >= 0 {
			j = i + 1
			partial = sum
		}
	}

	if j == 0 {
		return 0.0
	}
	if j == len(sorted) {
		return float64(j)
	}
	return float64(j) + partial/math.Abs(sorted[j])
}

// CorrelationDimension estimates the correlation dimension of a point
// cloud from the scaling of pairwise-distance correlation sums.
//
// nR radii are log-spaced on [rMin, rMax]; for each radius r the
// correlation sum C(r) is the fraction of point pairs closer than r.
// The dimension is the log-log slope fitted over the middle (20th to
// 80th percentile) of the radii with nonzero sums, which excludes
// small-r sampling noise and large-r saturation. The pairwise pass is
// O(nR·N²).
//
// Returns the radii, the sums and the fitted dimension; the dimension
// is NaN when fewer than two usable radii remain.
func CorrelationDimension(points []dynamo.State, rMin, rMax float64, nR int) ([]float64, []float64, float64, error) {
	if len(points) < 2 {
		return nil, nil, 0, fmt.Errorf("%w: correlation dimension needs at least 2 points, got %d", dynamo.ErrInsufficientData, len(points))
	}
	if rMax <= rMin || rMin <= 0 {
		return nil, nil, 0, fmt.Errorf("%w: need 0 < rMin < rMax, got [%g, %g]", dynamo.ErrInvalidRange, rMin, rMax)
	}
	if nR < 1 {
		return nil, nil, 0, fmt.Errorf("%w: nR must be positive, got %d", dynamo.ErrInvalidRange, nR)
	}

	radii := make([]float64, nR)
	if nR == 1 {
		radii[0] = rMin
	} else {
		ratio := rMax / rMin
		for i := range radii {
			radii[i] = rMin * math.Pow(ratio, float64(i)/float64(nR-1))
		}
	}

	n := len(points)
	sums := make([]float64, nR)
	pairs := float64(n) * float64(n-1) / 2

	for ri, r := range radii {
		count := 0
		for j := 0; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if points[j].Sub(points[k]).Norm() < r {
					count++
				}
			}
		}
		sums[ri] = float64(count) / pairs
	}

	var logR, logC []float64
	for i, c := range sums {
		if c > 0 {
			logR = append(logR, math.Log(radii[i]))
			logC = append(logC, math.Log(c+logFloor))
		}
	}

	lo := int(0.2 * float64(len(logR)))
	hi := int(0.8 * float64(len(logR)))
	if hi-lo < 2 {
		lo, hi = 0, len(logR)
	}
	dim := fitSlope(logR[lo:hi], logC[lo:hi])

	return radii, sums, dim, nil
}

// BoxCounting estimates the box-counting dimension of a trajectory.
//
// If sizes is nil, ten box sizes are generated as extent/2^k for
// k=1..10 where extent is the widest side of the bounding box. For
// each size every point is binned to an integer grid cell and distinct
// occupied cells are counted; the dimension is the slope of log N(ε)
// against log(1/ε).
func BoxCounting(points []dynamo.State, sizes []float64) ([]float64, []float64, float64, error) {
	if len(points) == 0 {
		return nil, nil, 0, fmt.Errorf("%w: box counting needs a non-empty trajectory", dynamo.ErrInsufficientData)
	}

	d := len(points[0])
	min := points[0].Clone()
	max := points[0].Clone()
	for _, p := range points[1:] {
		for i := 0; i < d; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}

	if sizes == nil {
		extent := 0.0
		for i := 0; i < d; i++ {
			if side := max[i] - min[i]; side > extent {
				extent = side
			}
		}
		if extent == 0 {
			extent = 1
		}
		sizes = make([]float64, 10)
		for k := range sizes {
			sizes[k] = extent / math.Pow(2, float64(k+1))
		}
	}

	counts := make([]float64, len(sizes))
	var key strings.Builder
	for si, eps := range sizes {
		occupied := make(map[string]struct{}, len(points))
		for _, p := range points {
			key.Reset()
			for i := 0; i < d; i++ {
				key.WriteString(strconv.Itoa(int(math.Floor((p[i] - min[i]) / eps))))
				key.WriteByte(':')
			}
			occupied[key.String()] = struct{}{}
		}
		counts[si] = float64(len(occupied))
	}

	logInv := make([]float64, len(sizes))
	logN := make([]float64, len(sizes))
	for i := range sizes {
		logInv[i] = math.Log(1 / sizes[i])
		logN[i] = math.Log(counts[i])
	}
	dim := fitSlope(logInv, logN)

	return sizes, counts, dim, nil
}
