package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/chaoskit/internal/config"
	"github.com/san-kum/chaoskit/internal/dynamo"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	sys, err := r.GetModel("lorenz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys.Dim() != 3 {
		t.Errorf("expected 3-dimensional lorenz, got %d", sys.Dim())
	}

	if _, err := r.GetModel("unknown"); err == nil {
		t.Error("expected error for unknown model")
	}

	m, err := r.GetMap("henon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Dim() != 2 {
		t.Errorf("expected 2-dimensional henon, got %d", m.Dim())
	}

	if _, err := r.GetMap("unknown"); err == nil {
		t.Error("expected error for unknown map")
	}

	if len(r.ListModels()) == 0 || len(r.ListMaps()) == 0 {
		t.Error("expected non-empty registries")
	}
}

func TestInitState(t *testing.T) {
	r := NewRegistry()
	sys, _ := r.GetModel("lorenz")

	x0, err := InitState(sys, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(x0) != 3 {
		t.Errorf("expected default 3-dimensional state, got %v", x0)
	}

	x0, err = InitState(sys, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x0[0] != 4 {
		t.Errorf("explicit state not used: %v", x0)
	}

	if _, err := InitState(sys, []float64{1, 2}); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestExperimentSolve(t *testing.T) {
	r := NewRegistry()
	sys, _ := r.GetModel("lorenz")
	cfg := config.DefaultConfig()
	cfg.Duration = 1.0

	rep, err := New(sys, cfg).Solve(context.Background(), dynamo.State{1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Trajectory) != len(rep.Times) {
		t.Errorf("trajectory and times out of sync: %d vs %d", len(rep.Trajectory), len(rep.Times))
	}
	if rep.Trajectory[0][0] != 1 {
		t.Errorf("trajectory does not start at x0: %v", rep.Trajectory[0])
	}
}

func TestExperimentCanceled(t *testing.T) {
	r := NewRegistry()
	sys, _ := r.GetModel("lorenz")
	cfg := config.DefaultConfig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(sys, cfg).Solve(ctx, dynamo.State{1, 1, 1}); err == nil {
		t.Error("expected context error")
	}
}

func TestExperimentLyapunov(t *testing.T) {
	r := NewRegistry()
	sys, _ := r.GetModel("lorenz")
	cfg := config.DefaultConfig()
	cfg.Lyapunov.Warmup = 10
	cfg.Lyapunov.Iterations = 50

	rep, err := New(sys, cfg).Lyapunov(context.Background(), dynamo.State{1, 1, 1}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Exponent <= 0 {
		t.Errorf("expected positive largest exponent for lorenz, got %f", rep.Exponent)
	}
	if len(rep.Spectrum) != 3 {
		t.Errorf("expected 3 exponents, got %v", rep.Spectrum)
	}
	if rep.KaplanYork <= 0 {
		t.Errorf("expected positive kaplan-yorke dimension, got %f", rep.KaplanYork)
	}
}
