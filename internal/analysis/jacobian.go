package analysis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/chaoskit/internal/dynamo"
)

// jacobianStep is the central-difference half-width. 1e-6 balances
// truncation against cancellation for fields with O(1)-O(100) values.
const jacobianStep = 1e-6

// Jacobian numerically differentiates a vector field at (t, x) using
// central differences, returning the d×d matrix J_ij = ∂f_i/∂x_j.
func Jacobian(sys dynamo.System, t float64, x dynamo.State) *mat.Dense {
	d := len(x)
	jac := mat.NewDense(d, d, nil)

	for j := 0; j < d; j++ {
		xp := x.Clone()
		xm := x.Clone()
		xp[j] += jacobianStep
		xm[j] -= jacobianStep

		fp := sys.Derive(t, xp)
		fm := sys.Derive(t, xm)
		for i := 0; i < d; i++ {
			jac.Set(i, j, (fp[i]-fm[i])/(2*jacobianStep))
		}
	}

	return jac
}

// Divergence is the trace of the Jacobian at (t, x): the local
// phase-space volume growth rate. For a dissipative system its
// trajectory average matches the sum of the Lyapunov spectrum.
func Divergence(sys dynamo.System, t float64, x dynamo.State) float64 {
	jac := Jacobian(sys, t, x)
	trace := 0.0
	for i := 0; i < len(x); i++ {
		trace += jac.At(i, i)
	}
	return trace
}
