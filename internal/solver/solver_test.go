package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/chaoskit/internal/dynamo"
)

// decay is x' = -x with exact solution e^{-t}.
var decay = dynamo.Field{
	F: func(t float64, x dynamo.State) dynamo.State { return dynamo.State{-x[0]} },
	N: 1,
}

func TestSolveInvariants(t *testing.T) {
	x0 := dynamo.State{1.0}
	grid := Grid(1.0, 100)

	for _, name := range Steppers() {
		traj, err := SolveNamed(name, decay, grid, x0)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(traj) != len(grid) {
			t.Errorf("%s: trajectory length %d, grid length %d", name, len(traj), len(grid))
		}
		if traj[0][0] != x0[0] {
			t.Errorf("%s: trajectory does not start at x0: %v", name, traj[0])
		}
	}
}

func TestSolveUnknownStepper(t *testing.T) {
	_, err := SolveNamed("rk45", decay, Grid(1.0, 10), dynamo.State{1.0})
	if !errors.Is(err, dynamo.ErrUnsupportedSolver) {
		t.Errorf("expected ErrUnsupportedSolver, got %v", err)
	}
}

func TestSolveShortGrid(t *testing.T) {
	_, err := SolveNamed("rk4", decay, []float64{0.0}, dynamo.State{1.0})
	if !errors.Is(err, dynamo.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for 1-point grid, got %v", err)
	}
}

func TestSolveDimensionMismatch(t *testing.T) {
	_, err := SolveNamed("rk4", decay, Grid(1.0, 10), dynamo.State{1.0, 2.0})
	if !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSolveNonUniformGrid(t *testing.T) {
	// Geometric grid: steps shrink toward t=0.
	grid := []float64{0, 0.5, 0.75, 0.875, 1.0}
	traj, err := SolveNamed("rk4", decay, grid, dynamo.State{1.0})
	if err != nil {
		t.Fatal(err)
	}

	for i, ti := range grid {
		want := math.Exp(-ti)
		if math.Abs(traj[i][0]-want) > 1e-3 {
			t.Errorf("t=%.3f: got %.6f, expected %.6f", ti, traj[i][0], want)
		}
	}
}

func TestIterate(t *testing.T) {
	// Map that returns the iteration index it was called with.
	m := dynamo.MapField{
		F: func(n int, x dynamo.State) dynamo.State { return dynamo.State{float64(n)} },
		N: 1,
	}

	traj, err := Iterate(m, 5, dynamo.State{-1.0})
	if err != nil {
		t.Fatal(err)
	}
	if len(traj) != 5 {
		t.Fatalf("expected 5 states, got %d", len(traj))
	}
	if traj[0][0] != -1.0 {
		t.Errorf("trajectory does not start at x0: %v", traj[0])
	}
	for n := 1; n < 5; n++ {
		if traj[n][0] != float64(n-1) {
			t.Errorf("step %d: expected index %d forwarded, got %v", n, n-1, traj[n][0])
		}
	}
}

func TestIterateInvalidCount(t *testing.T) {
	m := dynamo.MapField{
		F: func(n int, x dynamo.State) dynamo.State { return x },
		N: 1,
	}
	_, err := Iterate(m, 0, dynamo.State{0.0})
	if !errors.Is(err, dynamo.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestGrid(t *testing.T) {
	grid := Grid(2.0, 4)
	if len(grid) != 5 {
		t.Fatalf("expected 5 points, got %d", len(grid))
	}
	if grid[0] != 0 || grid[4] != 2.0 {
		t.Errorf("grid endpoints wrong: %v", grid)
	}
}
