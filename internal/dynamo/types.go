package dynamo

import "math"

// State is a point in phase space. Operations return fresh slices and
// never mutate the receiver.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] + other[i]
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] - other[i]
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Dot(other State) float64 {
	sum := 0.0
	for i := range s {
		sum += s[i] * other[i]
	}
	return sum
}

// System is a continuous-time vector field dx/dt = f(t, x). The
// analysis core treats it as opaque; model parameters live on the
// implementing struct and stay fixed during a call.
type System interface {
	Derive(t float64, x State) State
	Dim() int
}

// Field adapts a plain function to System.
type Field struct {
	F func(t float64, x State) State
	N int
}

func (f Field) Derive(t float64, x State) State { return f.F(t, x) }
func (f Field) Dim() int                        { return f.N }

// Map is a discrete-time system x_{n+1} = f(n, x_n). The iteration
// index is forwarded so maps may depend on it.
type Map interface {
	Apply(n int, x State) State
	Dim() int
}

// MapField adapts a plain function to Map.
type MapField struct {
	F func(n int, x State) State
	N int
}

func (m MapField) Apply(n int, x State) State { return m.F(n, x) }
func (m MapField) Dim() int                   { return m.N }

// Stepper advances a state by one fixed step of size h.
type Stepper interface {
	Step(sys System, x State, t, h float64) State
}

// Configurable exposes tunable model parameters for sweeps.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64)
}
