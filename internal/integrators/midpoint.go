package integrators

import "github.com/san-kum/chaoskit/internal/dynamo"

// Midpoint evaluates the slope at t+h/2 using a half-step Euler
// prediction. Second order.
type Midpoint struct {
	scratch dynamo.State
}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) Step(sys dynamo.System, x dynamo.State, t, h float64) dynamo.State {
	n := len(x)
	if len(m.scratch) != n {
		m.scratch = make(dynamo.State, n)
	}

	k1 := sys.Derive(t, x)
	for i := 0; i < n; i++ {
		m.scratch[i] = x[i] + h*0.5*k1[i]
	}
	k2 := sys.Derive(t+h*0.5, m.scratch)

	result := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		result[i] = x[i] + h*k2[i]
	}
	return result
}
