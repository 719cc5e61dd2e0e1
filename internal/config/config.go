package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 0.01
	DefaultDuration   = 100.0
	DefaultTimeStep   = 0.5
	DefaultWarmup     = 20
	DefaultIterations = 200
	DefaultRadii      = 20
)

type Config struct {
	Model     string          `yaml:"model"`
	Stepper   string          `yaml:"stepper"`
	Dt        float64         `yaml:"dt"`
	Duration  float64         `yaml:"duration"`
	Seed      int64           `yaml:"seed"`
	InitState []float64       `yaml:"init_state"`
	Lyapunov  LyapunovConfig  `yaml:"lyapunov"`
	Section   SectionConfig   `yaml:"section"`
	Dimension DimensionConfig `yaml:"dimension"`
}

type LyapunovConfig struct {
	TimeStep   float64 `yaml:"time_step"`
	Dt         float64 `yaml:"dt"`
	Warmup     int     `yaml:"warmup"`
	Iterations int     `yaml:"iterations"`
}

type SectionConfig struct {
	Normal    []float64 `yaml:"normal"`
	Point     []float64 `yaml:"point"`
	TMax      float64   `yaml:"t_max"`
	Dt        float64   `yaml:"dt"`
	Direction string    `yaml:"direction"`
	XAxis     int       `yaml:"x_axis"`
	YAxis     int       `yaml:"y_axis"`
}

type DimensionConfig struct {
	RMin  float64 `yaml:"r_min"`
	RMax  float64 `yaml:"r_max"`
	Radii int     `yaml:"radii"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "lorenz",
		Stepper:  "rk4",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Lyapunov: LyapunovConfig{
			TimeStep:   DefaultTimeStep,
			Dt:         DefaultDt,
			Warmup:     DefaultWarmup,
			Iterations: DefaultIterations,
		},
		Section: SectionConfig{
			Normal:    []float64{0, 0, 1},
			Point:     []float64{0, 0, 27},
			TMax:      DefaultDuration,
			Dt:        DefaultDt,
			Direction: "both",
			XAxis:     0,
			YAxis:     1,
		},
		Dimension: DimensionConfig{
			RMin:  0.1,
			RMax:  20.0,
			Radii: DefaultRadii,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
