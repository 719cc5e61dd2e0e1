package integrators

import "github.com/san-kum/chaoskit/internal/dynamo"

// Heun is the explicit trapezoidal rule: average of the Euler slope and
// the slope at the Euler-predicted endpoint. Second order.
type Heun struct {
	scratch dynamo.State
}

func NewHeun() *Heun {
	return &Heun{}
}

func (hn *Heun) Step(sys dynamo.System, x dynamo.State, t, h float64) dynamo.State {
	n := len(x)
	if len(hn.scratch) != n {
		hn.scratch = make(dynamo.State, n)
	}

	k1 := sys.Derive(t, x)
	for i := 0; i < n; i++ {
		hn.scratch[i] = x[i] + h*k1[i]
	}
	k2 := sys.Derive(t+h, hn.scratch)

	result := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		result[i] = x[i] + h*0.5*(k1[i]+k2[i])
	}
	return result
}
