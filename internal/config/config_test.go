package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "lorenz" {
		t.Errorf("expected model lorenz, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Lyapunov.Iterations <= 0 {
		t.Error("lyapunov iterations should be positive")
	}
	if cfg.Section.Direction != "both" {
		t.Errorf("expected direction both, got %s", cfg.Section.Direction)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Section.Point[2] != 27 {
		t.Errorf("expected section plane at z=27, got %v", cfg.Section.Point)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("lorenz", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "classic"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("lorenz"); len(presets) == 0 {
		t.Error("expected presets for lorenz")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "rossler"
	cfg.InitState = []float64{1, 2, 3}
	cfg.Lyapunov.Iterations = 77

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Model != "rossler" {
		t.Errorf("expected model rossler, got %s", loaded.Model)
	}
	if len(loaded.InitState) != 3 || loaded.InitState[1] != 2 {
		t.Errorf("init state not preserved: %v", loaded.InitState)
	}
	if loaded.Lyapunov.Iterations != 77 {
		t.Errorf("lyapunov iterations not preserved: %d", loaded.Lyapunov.Iterations)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
