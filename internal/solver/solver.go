package solver

import (
	"fmt"
	"sort"

	"github.com/san-kum/chaoskit/internal/dynamo"
	"github.com/san-kum/chaoskit/internal/integrators"
)

// steppers is the fixed registry of known step rules. It is never
// mutated after init; each entry constructs a fresh stepper so scratch
// buffers are not shared between callers.
var steppers = map[string]func() dynamo.Stepper{
	"euler":    func() dynamo.Stepper { return integrators.NewEuler() },
	"heun":     func() dynamo.Stepper { return integrators.NewHeun() },
	"midpoint": func() dynamo.Stepper { return integrators.NewMidpoint() },
	"rk4":      func() dynamo.Stepper { return integrators.NewRK4() },
}

// New returns a stepper by name, or ErrUnsupportedSolver.
func New(name string) (dynamo.Stepper, error) {
	fn, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", dynamo.ErrUnsupportedSolver, name, Steppers())
	}
	return fn(), nil
}

// Steppers lists the registered stepper names, sorted.
func Steppers() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Solve drives a stepper across a time grid and returns the full
// trajectory. The grid must be strictly ordered with at least two
// points; it need not be uniform, the per-step size is recomputed from
// consecutive grid entries. The trajectory has the grid's length and
// starts at x0 exactly.
func Solve(st dynamo.Stepper, sys dynamo.System, grid []float64, x0 dynamo.State) ([]dynamo.State, error) {
	if len(grid) < 2 {
		return nil, fmt.Errorf("%w: time grid needs at least 2 points, got %d", dynamo.ErrInvalidRange, len(grid))
	}
	if sys.Dim() != len(x0) {
		return nil, fmt.Errorf("%w: system dim %d, state dim %d", dynamo.ErrDimensionMismatch, sys.Dim(), len(x0))
	}

	traj := make([]dynamo.State, len(grid))
	traj[0] = x0.Clone()

	for i := 0; i < len(grid)-1; i++ {
		h := grid[i+1] - grid[i]
		traj[i+1] = st.Step(sys, traj[i], grid[i], h)
	}

	return traj, nil
}

// SolveNamed resolves a stepper from the registry and runs Solve.
func SolveNamed(name string, sys dynamo.System, grid []float64, x0 dynamo.State) ([]dynamo.State, error) {
	st, err := New(name)
	if err != nil {
		return nil, err
	}
	return Solve(st, sys, grid, x0)
}

// Iterate applies a map nSteps-1 times and returns the trajectory of
// length nSteps starting at x0. The 0-based iteration index is passed
// through to the map.
func Iterate(m dynamo.Map, nSteps int, x0 dynamo.State) ([]dynamo.State, error) {
	if nSteps < 1 {
		return nil, fmt.Errorf("%w: nSteps must be positive, got %d", dynamo.ErrInvalidRange, nSteps)
	}
	if m.Dim() != len(x0) {
		return nil, fmt.Errorf("%w: map dim %d, state dim %d", dynamo.ErrDimensionMismatch, m.Dim(), len(x0))
	}

	traj := make([]dynamo.State, nSteps)
	traj[0] = x0.Clone()
	for n := 0; n < nSteps-1; n++ {
		traj[n+1] = m.Apply(n, traj[n])
	}

	return traj, nil
}

// Grid builds a uniform time grid from 0 to tMax with the given number
// of intervals, so the result has n+1 points.
func Grid(tMax float64, n int) []float64 {
	grid := make([]float64, n+1)
	for i := range grid {
		grid[i] = tMax * float64(i) / float64(n)
	}
	return grid
}
