package integrators

import "github.com/san-kum/chaoskit/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, t, h float64) dynamo.State {
	dx := sys.Derive(t, x)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + h*dx[i]
	}
	return result
}
