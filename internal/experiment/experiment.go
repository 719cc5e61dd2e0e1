package experiment

import (
	"context"
	"math/rand"

	"github.com/san-kum/chaoskit/internal/analysis"
	"github.com/san-kum/chaoskit/internal/config"
	"github.com/san-kum/chaoskit/internal/dynamo"
	"github.com/san-kum/chaoskit/internal/solver"
)

// Report gathers everything one analysis run produced. Fields are
// filled depending on which analyses ran.
type Report struct {
	Model      string
	Times      []float64
	Trajectory []dynamo.State
	Crossings  []dynamo.State
	Exponent   float64
	Spectrum   []float64
	KaplanYork float64
	CorrDim    float64
	BoxDim     float64
}

// Experiment binds a model to a job config and runs the requested
// analyses. Long loops check ctx between phases; the numeric kernels
// themselves run to completion.
type Experiment struct {
	sys dynamo.System
	cfg *config.Config
	rng *rand.Rand
}

func New(sys dynamo.System, cfg *config.Config) *Experiment {
	return &Experiment{
		sys: sys,
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (e *Experiment) exponentConfig() analysis.ExponentConfig {
	return analysis.ExponentConfig{
		TimeStep:   e.cfg.Lyapunov.TimeStep,
		Dt:         e.cfg.Lyapunov.Dt,
		Warmup:     e.cfg.Lyapunov.Warmup,
		Iterations: e.cfg.Lyapunov.Iterations,
		Rand:       e.rng,
	}
}

// Solve integrates the configured trajectory.
func (e *Experiment) Solve(ctx context.Context, x0 dynamo.State) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid := solver.Grid(e.cfg.Duration, int(e.cfg.Duration/e.cfg.Dt))
	traj, err := solver.SolveNamed(e.cfg.Stepper, e.sys, grid, x0)
	if err != nil {
		return nil, err
	}

	return &Report{Model: e.cfg.Model, Times: grid, Trajectory: traj}, nil
}

// Lyapunov estimates the largest exponent, and optionally the full
// spectrum plus the Kaplan-Yorke dimension derived from it.
func (e *Experiment) Lyapunov(ctx context.Context, x0 dynamo.State, full bool) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := &Report{Model: e.cfg.Model}

	lambda, err := analysis.MaxExponent(e.sys, x0, e.exponentConfig())
	if err != nil {
		return nil, err
	}
	rep.Exponent = lambda

	if full {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		spectrum, err := analysis.Spectrum(e.sys, x0, e.exponentConfig())
		if err != nil {
			return nil, err
		}
		rep.Spectrum = spectrum
		rep.KaplanYork = analysis.KaplanYorke(spectrum)
	}

	return rep, nil
}

// Poincare collects the configured section crossings.
func (e *Experiment) Poincare(ctx context.Context, x0 dynamo.State) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	crossings, err := analysis.Section(e.sys, x0, analysis.SectionConfig{
		Normal:    dynamo.State(e.cfg.Section.Normal),
		Point:     dynamo.State(e.cfg.Section.Point),
		TMax:      e.cfg.Section.TMax,
		Dt:        e.cfg.Section.Dt,
		Direction: analysis.Direction(e.cfg.Section.Direction),
	})
	if err != nil {
		return nil, err
	}

	return &Report{Model: e.cfg.Model, Crossings: crossings}, nil
}

// Dimensions solves a trajectory and estimates its correlation and
// box-counting dimensions.
func (e *Experiment) Dimensions(ctx context.Context, x0 dynamo.State) (*Report, error) {
	rep, err := e.Solve(ctx, x0)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Thin long trajectories; the pairwise pass is quadratic.
	points := rep.Trajectory
	if len(points) > 2000 {
		stride := len(points) / 2000
		thinned := make([]dynamo.State, 0, 2000)
		for i := 0; i < len(points); i += stride {
			thinned = append(thinned, points[i])
		}
		points = thinned
	}

	_, _, corr, err := analysis.CorrelationDimension(points, e.cfg.Dimension.RMin, e.cfg.Dimension.RMax, e.cfg.Dimension.Radii)
	if err != nil {
		return nil, err
	}
	rep.CorrDim = corr

	_, _, box, err := analysis.BoxCounting(rep.Trajectory, nil)
	if err != nil {
		return nil, err
	}
	rep.BoxDim = box

	return rep, nil
}
