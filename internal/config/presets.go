package config

var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			Model: "lorenz", Stepper: "rk4", Dt: 0.01, Duration: 100.0,
			InitState: []float64{1.0, 1.0, 1.0},
			Section: SectionConfig{
				Normal: []float64{0, 0, 1}, Point: []float64{0, 0, 27},
				TMax: 200.0, Dt: 0.01, Direction: "both", XAxis: 0, YAxis: 1,
			},
		},
		"quick": {
			Model: "lorenz", Stepper: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: []float64{1.0, 1.0, 1.0},
		},
	},
	"rossler": {
		"classic": {
			Model: "rossler", Stepper: "rk4", Dt: 0.01, Duration: 500.0,
			InitState: []float64{1.0, 1.0, 1.0},
			Section: SectionConfig{
				Normal: []float64{0, 1, 0}, Point: []float64{0, 0, 0},
				TMax: 500.0, Dt: 0.01, Direction: "positive", XAxis: 0, YAxis: 2,
			},
		},
	},
	"vanderpol": {
		"limit_cycle": {
			Model: "vanderpol", Stepper: "rk4", Dt: 0.01, Duration: 50.0,
			InitState: []float64{1.0, 0.0},
		},
	},
	"duffing": {
		"chaotic": {
			Model: "duffing", Stepper: "rk4", Dt: 0.005, Duration: 200.0,
			InitState: []float64{1.0, 0.0},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
