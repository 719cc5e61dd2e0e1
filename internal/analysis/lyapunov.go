package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/chaoskit/internal/dynamo"
	"github.com/san-kum/chaoskit/internal/integrators"
)

// Perturbation is the norm every tangent vector is rescaled to after
// each renormalization interval. Small enough to stay in the linear
// regime, large enough to avoid floating-point underflow.
const Perturbation = 1e-8

// ExponentConfig controls the Benettin-style exponent estimators.
type ExponentConfig struct {
	TimeStep   float64    // renormalization interval
	Dt         float64    // internal RK4 step size
	Warmup     int        // unrecorded iterations before measuring
	Iterations int        // recorded iterations
	Rand       *rand.Rand // source for the initial direction; nil for a fixed seed
}

func (cfg ExponentConfig) validate() error {
	if cfg.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", dynamo.ErrInvalidRange, cfg.Iterations)
	}
	if cfg.TimeStep <= 0 || cfg.Dt <= 0 {
		return fmt.Errorf("%w: time step %g and dt %g must be positive", dynamo.ErrInvalidRange, cfg.TimeStep, cfg.Dt)
	}
	return nil
}

// advance integrates sys from (t, x) over one renormalization interval
// using fixed RK4 substeps of roughly cfg.Dt.
func advance(rk *integrators.RK4, sys dynamo.System, x dynamo.State, t float64, cfg ExponentConfig) dynamo.State {
	nSub := int(math.Round(cfg.TimeStep / cfg.Dt))
	if nSub < 1 {
		nSub = 1
	}
	h := cfg.TimeStep / float64(nSub)

	for k := 0; k < nSub; k++ {
		x = rk.Step(sys, x, t+float64(k)*h, h)
	}
	return x
}

// MaxExponent estimates the largest Lyapunov exponent of sys from x0.
//
// A reference point and a point offset by a random direction of norm
// [Perturbation] are advanced together; after each interval the evolved
// separation's log-growth is recorded and the offset is rescaled back
// to [Perturbation] along its current direction. The warmup phase runs
// the same mechanics without recording so the perturbation aligns with
// the most unstable direction first.
//
// Precondition: the local dynamics at x0 must not be degenerate (a
// fixed point with zero separation growth produces non-finite output).
func MaxExponent(sys dynamo.System, x0 dynamo.State, cfg ExponentConfig) (float64, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	if sys.Dim() != len(x0) {
		return 0, fmt.Errorf("%w: system dim %d, state dim %d", dynamo.ErrDimensionMismatch, sys.Dim(), len(x0))
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	delta := randomDirection(rng, len(x0)).Scale(Perturbation)
	x := x0.Clone()
	rk := integrators.NewRK4()
	rkp := integrators.NewRK4()
	t := 0.0

	sumLog := 0.0
	for i := 0; i < cfg.Warmup+cfg.Iterations; i++ {
		xNext := advance(rk, sys, x, t, cfg)
		xpNext := advance(rkp, sys, x.Add(delta), t, cfg)
		t += cfg.TimeStep

		evolved := xpNext.Sub(xNext)
		sep := evolved.Norm()

		if i >= cfg.Warmup {
			sumLog += math.Log(sep / Perturbation)
		}

		delta = evolved.Scale(Perturbation / sep)
		x = xNext
	}

	return sumLog / (float64(cfg.Iterations) * cfg.TimeStep), nil
}

// Spectrum estimates all d Lyapunov exponents of sys from x0 using the
// QR re-orthonormalization method. An orthonormal frame of d tangent
// directions is propagated alongside the reference trajectory; after
// each interval the evolved frame is QR-factorized, the orthogonal
// factor becomes the new frame and log|R_jj| accumulates the stretch
// along each principal direction.
//
// Exponents are returned sorted descending. Their sum is the average
// phase-space volume growth rate (negative for dissipative systems).
func Spectrum(sys dynamo.System, x0 dynamo.State, cfg ExponentConfig) ([]float64, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	d := len(x0)
	if sys.Dim() != d {
		return nil, fmt.Errorf("%w: system dim %d, state dim %d", dynamo.ErrDimensionMismatch, sys.Dim(), d)
	}

	// Initial frame: identity basis.
	frame := mat.NewDense(d, d, nil)
	for j := 0; j < d; j++ {
		frame.Set(j, j, 1)
	}

	x := x0.Clone()
	rk := integrators.NewRK4()
	rkp := integrators.NewRK4()
	t := 0.0

	sums := make([]float64, d)
	evolved := mat.NewDense(d, d, nil)
	var qr mat.QR
	var q, r mat.Dense

	for i := 0; i < cfg.Warmup+cfg.Iterations; i++ {
		xNext := advance(rk, sys, x, t, cfg)

		for j := 0; j < d; j++ {
			xp := x.Clone()
			for k := 0; k < d; k++ {
				xp[k] += Perturbation * frame.At(k, j)
			}
			xpNext := advance(rkp, sys, xp, t, cfg)
			for k := 0; k < d; k++ {
				evolved.Set(k, j, xpNext[k]-xNext[k])
			}
		}

		qr.Factorize(evolved)
		qr.QTo(&q)
		qr.RTo(&r)

		if i >= cfg.Warmup {
			for j := 0; j < d; j++ {
				sums[j] += math.Log(math.Abs(r.At(j, j)) / Perturbation)
			}
		}

		frame.Copy(&q)
		x = xNext
		t += cfg.TimeStep
	}

	exponents := make([]float64, d)
	norm := float64(cfg.Iterations) * cfg.TimeStep
	for j := 0; j < d; j++ {
		exponents[j] = sums[j] / norm
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(exponents)))

	return exponents, nil
}

// randomDirection draws a uniformly distributed unit vector.
func randomDirection(rng *rand.Rand, d int) dynamo.State {
	v := make(dynamo.State, d)
	for {
		for i := range v {
			v[i] = rng.NormFloat64()
		}
		if n := v.Norm(); n > 0 {
			return v.Scale(1 / n)
		}
	}
}
