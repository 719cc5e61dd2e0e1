package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/chaoskit/internal/analysis"
	"github.com/san-kum/chaoskit/internal/config"
	"github.com/san-kum/chaoskit/internal/dynamo"
	"github.com/san-kum/chaoskit/internal/experiment"
	"github.com/san-kum/chaoskit/internal/solver"
	"github.com/san-kum/chaoskit/internal/storage"
	"github.com/san-kum/chaoskit/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	stepper    string
	seed       int64
	initState  []float64
	configFile string
	preset     string
	// Lyapunov parameters
	timeStep   float64
	warmup     int
	iterations int
	full       bool
	// Section parameters
	normal    []float64
	point     []float64
	direction string
	xAxis     int
	yAxis     int
	// Dimension parameters
	rMin float64
	rMax float64
	nR   int
	// Bifurcation parameters
	paramName  string
	paramMin   float64
	paramMax   float64
	paramSteps int
	mapSteps   int
	// Misc
	saveRun bool
	axis    int
)

var logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaoskit",
		Short: "trajectory integration and chaos analysis for dynamical systems",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaoskit", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a trajectory and store it",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrajectory,
	}
	addSolveFlags(runCmd)

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [model]",
		Short: "estimate Lyapunov exponents",
		Args:  cobra.ExactArgs(1),
		RunE:  runLyapunov,
	}
	addSolveFlags(lyapunovCmd)
	lyapunovCmd.Flags().Float64Var(&timeStep, "interval", 0.5, "renormalization interval")
	lyapunovCmd.Flags().IntVar(&warmup, "warmup", 20, "warmup iterations")
	lyapunovCmd.Flags().IntVar(&iterations, "iterations", 200, "measured iterations")
	lyapunovCmd.Flags().BoolVar(&full, "spectrum", false, "compute the full spectrum and Kaplan-Yorke dimension")

	poincareCmd := &cobra.Command{
		Use:   "poincare [model]",
		Short: "collect Poincaré section crossings",
		Args:  cobra.ExactArgs(1),
		RunE:  runPoincare,
	}
	addSolveFlags(poincareCmd)
	poincareCmd.Flags().Float64SliceVar(&normal, "normal", []float64{0, 0, 1}, "section plane normal")
	poincareCmd.Flags().Float64SliceVar(&point, "point", []float64{0, 0, 27}, "point on the section plane")
	poincareCmd.Flags().StringVar(&direction, "direction", "both", "crossing filter (positive|negative|both)")
	poincareCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	poincareCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")
	poincareCmd.Flags().BoolVar(&saveRun, "save", false, "store crossings")

	dimensionCmd := &cobra.Command{
		Use:   "dimension [model]",
		Short: "estimate fractal dimensions of a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runDimension,
	}
	addSolveFlags(dimensionCmd)
	dimensionCmd.Flags().Float64Var(&rMin, "r-min", 0.1, "smallest correlation radius")
	dimensionCmd.Flags().Float64Var(&rMax, "r-max", 20.0, "largest correlation radius")
	dimensionCmd.Flags().IntVar(&nR, "radii", 20, "number of correlation radii")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation [map]",
		Short: "sweep a map parameter and plot the attractor",
		Args:  cobra.ExactArgs(1),
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().StringVar(&paramName, "param", "r", "parameter to sweep")
	bifurcationCmd.Flags().Float64Var(&paramMin, "min", 2.5, "sweep start")
	bifurcationCmd.Flags().Float64Var(&paramMax, "max", 4.0, "sweep end")
	bifurcationCmd.Flags().IntVar(&paramSteps, "steps", 120, "sweep resolution")
	bifurcationCmd.Flags().IntVar(&mapSteps, "samples", 200, "attractor samples per parameter value")
	bifurcationCmd.Flags().IntVar(&warmup, "warmup", 300, "transient iterations to discard")
	bifurcationCmd.Flags().IntVar(&axis, "axis", 0, "state index to record")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "animate a trajectory coordinate in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)
	liveCmd.Flags().IntVar(&axis, "axis", 0, "state index to chart")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models, maps and steppers",
		Run: func(cmd *cobra.Command, args []string) {
			registry := experiment.NewRegistry()
			fmt.Printf("models:   %s\n", strings.Join(registry.ListModels(), ", "))
			fmt.Printf("maps:     %s\n", strings.Join(registry.ListMaps(), ", "))
			fmt.Printf("steppers: %s\n", strings.Join(solver.Steppers(), ", "))
		},
	}

	rootCmd.AddCommand(runCmd, lyapunovCmd, poincareCmd, dimensionCmd, bifurcationCmd, liveCmd, listCmd, exportCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 100.0, "duration")
	cmd.Flags().StringVar(&stepper, "stepper", "rk4", "stepper (euler|heun|midpoint|rk4)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64SliceVar(&initState, "x0", nil, "initial state (defaults to the model's)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges preset, config file and flags in precedence order:
// flags win over the file, the file wins over the preset.
func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Model = model
	}

	if cmd.Flags().Changed("dt") || cfg.Dt == 0 {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") || cfg.Duration == 0 {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("stepper") || cfg.Stepper == "" {
		cfg.Stepper = stepper
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("x0") {
		cfg.InitState = initState
	}
	if cmd.Flags().Changed("interval") {
		cfg.Lyapunov.TimeStep = timeStep
	}
	if cmd.Flags().Changed("warmup") {
		cfg.Lyapunov.Warmup = warmup
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Lyapunov.Iterations = iterations
	}
	if cfg.Lyapunov.TimeStep == 0 {
		cfg.Lyapunov.TimeStep = config.DefaultTimeStep
	}
	if cfg.Lyapunov.Iterations == 0 {
		cfg.Lyapunov.Iterations = config.DefaultIterations
	}
	if cfg.Lyapunov.Dt == 0 {
		cfg.Lyapunov.Dt = cfg.Dt
	}
	if cmd.Flags().Changed("normal") {
		cfg.Section.Normal = normal
	}
	if cmd.Flags().Changed("point") {
		cfg.Section.Point = point
	}
	if cmd.Flags().Changed("direction") {
		cfg.Section.Direction = direction
	}
	if cmd.Flags().Changed("x-axis") {
		cfg.Section.XAxis = xAxis
	}
	if cmd.Flags().Changed("y-axis") {
		cfg.Section.YAxis = yAxis
	}
	if cfg.Section.TMax == 0 {
		cfg.Section.TMax = cfg.Duration
	}
	if cfg.Section.Dt == 0 {
		cfg.Section.Dt = cfg.Dt
	}
	if cmd.Flags().Changed("r-min") {
		cfg.Dimension.RMin = rMin
	}
	if cmd.Flags().Changed("r-max") {
		cfg.Dimension.RMax = rMax
	}
	if cmd.Flags().Changed("radii") {
		cfg.Dimension.Radii = nR
	}
	if cfg.Dimension.RMin == 0 {
		cfg.Dimension.RMin = 0.1
	}
	if cfg.Dimension.RMax == 0 {
		cfg.Dimension.RMax = 20.0
	}
	if cfg.Dimension.Radii == 0 {
		cfg.Dimension.Radii = config.DefaultRadii
	}

	return cfg, nil
}

func setup(cmd *cobra.Command, model string) (*config.Config, dynamo.System, dynamo.State, error) {
	cfg, err := buildConfig(cmd, model)
	if err != nil {
		return nil, nil, nil, err
	}

	registry := experiment.NewRegistry()
	sys, err := registry.GetModel(model)
	if err != nil {
		return nil, nil, nil, err
	}

	x0, err := experiment.InitState(sys, cfg.InitState)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, sys, x0, nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, sys, x0, err := setup(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	logger.Info("integrating", "model", cfg.Model, "stepper", cfg.Stepper, "dt", cfg.Dt, "duration", cfg.Duration)
	start := time.Now()

	rep, err := experiment.New(sys, cfg).Solve(context.Background(), x0)
	if err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Model: cfg.Model, Kind: "trajectory", Seed: cfg.Seed,
		Dt: cfg.Dt, Duration: cfg.Duration, Stepper: cfg.Stepper,
	}, rep.Times, rep.Trajectory)
	if err != nil {
		return err
	}

	logger.Info("completed", "elapsed", time.Since(start), "steps", len(rep.Trajectory))
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, sys, x0, err := setup(cmd, args[0])
	if err != nil {
		return err
	}

	logger.Info("estimating exponents", "model", cfg.Model,
		"interval", cfg.Lyapunov.TimeStep, "iterations", cfg.Lyapunov.Iterations)
	start := time.Now()

	rep, err := experiment.New(sys, cfg).Lyapunov(context.Background(), x0, full)
	if err != nil {
		return err
	}

	logger.Info("completed", "elapsed", time.Since(start))
	fmt.Printf("largest exponent: %+.6f\n", rep.Exponent)
	if rep.Exponent > 0 {
		fmt.Println("dynamics: chaotic (positive exponent)")
	} else {
		fmt.Println("dynamics: non-chaotic")
	}
	if full {
		fmt.Print("spectrum:")
		for _, lambda := range rep.Spectrum {
			fmt.Printf(" %+.6f", lambda)
		}
		fmt.Printf("\nkaplan-yorke dimension: %.4f\n", rep.KaplanYork)
	}
	return nil
}

func runPoincare(cmd *cobra.Command, args []string) error {
	cfg, sys, x0, err := setup(cmd, args[0])
	if err != nil {
		return err
	}

	logger.Info("collecting section", "model", cfg.Model,
		"direction", cfg.Section.Direction, "t_max", cfg.Section.TMax)

	rep, err := experiment.New(sys, cfg).Poincare(context.Background(), x0)
	if err != nil {
		return err
	}

	fmt.Printf("crossings: %d\n", len(rep.Crossings))
	if len(rep.Crossings) > 0 {
		xs := make([]float64, len(rep.Crossings))
		ys := make([]float64, len(rep.Crossings))
		for i, c := range rep.Crossings {
			xs[i] = c[cfg.Section.XAxis]
			ys[i] = c[cfg.Section.YAxis]
		}
		fmt.Print(viz.Scatter(xs, ys, 72, 22))
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Model: cfg.Model, Kind: "section", Seed: cfg.Seed,
			Dt: cfg.Section.Dt, Duration: cfg.Section.TMax, Stepper: "rk4",
		}, nil, rep.Crossings)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runDimension(cmd *cobra.Command, args []string) error {
	cfg, sys, x0, err := setup(cmd, args[0])
	if err != nil {
		return err
	}

	logger.Info("estimating dimensions", "model", cfg.Model,
		"r_min", cfg.Dimension.RMin, "r_max", cfg.Dimension.RMax)
	start := time.Now()

	rep, err := experiment.New(sys, cfg).Dimensions(context.Background(), x0)
	if err != nil {
		return err
	}

	logger.Info("completed", "elapsed", time.Since(start))
	fmt.Printf("correlation dimension: %.4f\n", rep.CorrDim)
	fmt.Printf("box-counting dimension: %.4f\n", rep.BoxDim)
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	m, err := registry.GetMap(args[0])
	if err != nil {
		return err
	}

	x0 := make(dynamo.State, m.Dim())
	if d, ok := m.(experiment.Defaulter); ok {
		x0 = d.DefaultState()
	}

	logger.Info("sweeping", "map", args[0], "param", paramName,
		"min", paramMin, "max", paramMax, "steps", paramSteps)

	points, err := analysis.Bifurcation(m, paramName, paramMin, paramMax, paramSteps, axis, x0, warmup, mapSteps)
	if err != nil {
		return err
	}

	var xs, ys []float64
	for _, p := range points {
		for _, v := range p.Values {
			xs = append(xs, p.Param)
			ys = append(ys, v)
		}
	}
	fmt.Print(viz.Scatter(xs, ys, 78, 24))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, sys, x0, err := setup(cmd, args[0])
	if err != nil {
		return err
	}
	if axis < 0 || axis >= sys.Dim() {
		return fmt.Errorf("axis %d out of range for %s", axis, args[0])
	}
	return viz.Run(sys, x0, cfg.Dt, axis, cfg.Model)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tKIND\tSTEPPER\tDT\tDURATION")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4f\t%.1f\n", r.ID, r.Model, r.Kind, r.Stepper, r.Dt, r.Duration)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
