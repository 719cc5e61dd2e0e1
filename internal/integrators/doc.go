// Package integrators provides fixed-step explicit ODE steppers.
//
// All steppers implement [dynamo.Stepper] and advance a state by a
// single step of size h:
//
//   - [Euler]: first order, one field evaluation per step
//   - [Heun]: second order, two evaluations
//   - [Midpoint]: second order, two evaluations
//   - [RK4]: classical fourth order, four evaluations
//
// There is no adaptivity or error control; accuracy is determined by
// the step size and the stepper's order. Steppers reuse internal
// scratch buffers between steps, so a single stepper instance must not
// be shared across goroutines.
package integrators
