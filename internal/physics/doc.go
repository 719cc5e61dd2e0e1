// Package physics provides named dynamical system models.
//
// Each continuous model implements [dynamo.System] and each map
// implements [dynamo.Map]; the analysis core never depends on any of
// them, they are thin parameterizations of a right-hand side:
//
//   - [Lorenz]: butterfly attractor (σ=10, ρ=28, β=8/3)
//   - [Rossler]: single-lobe chaotic attractor
//   - [VanDerPol]: limit-cycle oscillator, optionally driven
//   - [Duffing]: driven double-well oscillator
//   - [Henon], [Logistic]: discrete chaotic maps
//
// Models implement [dynamo.Configurable] for parameter sweeps. Lorenz
// and Rossler also expose their analytic Jacobian trace (Divergence)
// for cross-checking the numerical linearization.
package physics
