// Package dynamo provides core primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types shared by
// the solvers and the chaos-analysis tools:
//
//   - [State]: vector representing a point in phase space
//   - [System]: interface for ODE vector fields (dx/dt = f(t, x))
//   - [Map]: interface for discrete maps (x_{n+1} = f(n, x_n))
//   - [Stepper]: fixed-step numerical integrator interface
//
// # Example
//
//	sys := physics.NewLorenz()
//	traj, _ := solver.SolveNamed("rk4", sys, grid, sys.DefaultState())
//
// # Thread Safety
//
// All operations are pure functions of their inputs; no shared mutable
// state crosses call boundaries. A System implementation must be
// side-effect-free for results to be meaningful.
package dynamo
