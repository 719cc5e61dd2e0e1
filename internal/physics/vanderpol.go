package physics

import (
	"math"

	"github.com/san-kum/chaoskit/internal/dynamo"
)

// VanDerPol implements the Van der Pol oscillator, optionally with a
// sinusoidal drive.
// State: [x, y] where y = dx/dt
// Equations:
//
//	dx/dt = y
//	dy/dt = μ(1 - x²)y - x + A·sin(ωt)
type VanDerPol struct {
	mu    float64 // Nonlinearity parameter
	amp   float64 // Drive amplitude; 0 for the autonomous oscillator
	omega float64 // Drive frequency
}

func NewVanDerPol() *VanDerPol {
	return &VanDerPol{
		mu:    1.0, // Classic value for limit cycle
		amp:   0.0,
		omega: 1.0,
	}
}

func (v *VanDerPol) Dim() int { return 2 }

func (v *VanDerPol) Derive(t float64, state dynamo.State) dynamo.State {
	x, y := state[0], state[1]

	dx := y
	dy := v.mu*(1-x*x)*y - x
	if v.amp != 0 {
		dy += v.amp * math.Sin(v.omega*t)
	}

	return dynamo.State{dx, dy}
}

func (v *VanDerPol) DefaultState() dynamo.State {
	return dynamo.State{1.0, 0.0}
}

// GetParams implements dynamo.Configurable
func (v *VanDerPol) GetParams() map[string]float64 {
	return map[string]float64{"mu": v.mu, "amp": v.amp, "omega": v.omega}
}

// SetParam implements dynamo.Configurable
func (v *VanDerPol) SetParam(name string, value float64) {
	switch name {
	case "mu":
		v.mu = value
	case "amp":
		v.amp = value
	case "omega":
		v.omega = value
	}
}
