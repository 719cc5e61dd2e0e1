package viz

import (
	"strings"
	"testing"
)

func TestScatter(t *testing.T) {
	xs := []float64{-1, 0, 1, 2}
	ys := []float64{1, 2, 3, 4}

	out := Scatter(xs, ys, 40, 10)
	if out == "" {
		t.Fatal("expected non-empty plot")
	}
	if !strings.Contains(out, "•") {
		t.Error("expected plotted points")
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 10 {
		t.Error("expected 10 rows")
	}
}

func TestScatterEmpty(t *testing.T) {
	if out := Scatter(nil, nil, 40, 10); out != "" {
		t.Errorf("expected empty string, got %q", out)
	}
	if out := Scatter([]float64{1}, []float64{1, 2}, 40, 10); out != "" {
		t.Error("expected empty string for mismatched lengths")
	}
}
