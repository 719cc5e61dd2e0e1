// Package analysis provides chaos diagnostics for dynamical systems.
//
// The package characterizes trajectories produced by any
// [dynamo.System] or [dynamo.Map]:
//
//   - [MaxExponent]: largest Lyapunov exponent via tangent-vector renormalization
//   - [Spectrum]: full Lyapunov spectrum via QR re-orthonormalization
//   - [Section]: Poincaré section crossings with linear interpolation
//   - [KaplanYorke]: dimension from a Lyapunov spectrum
//   - [CorrelationDimension], [BoxCounting]: fractal dimension estimators
//   - [Jacobian], [Divergence]: numerical linearization helpers
//   - [Bifurcation]: parameter sweep over a tunable map
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda, err := analysis.MaxExponent(sys, x0, cfg)
//	if err == nil && lambda > 0 {
//	    // System is chaotic
//	}
//
// All estimators are pure functions of their inputs plus, for the
// random initial direction in [MaxExponent], an injectable rand source.
package analysis
