package physics

import (
	"math"
	"testing"

	"github.com/san-kum/chaoskit/internal/dynamo"
)

func TestModelDimensions(t *testing.T) {
	tests := []struct {
		name string
		sys  dynamo.System
		dim  int
	}{
		{"lorenz", NewLorenz(), 3},
		{"rossler", NewRossler(), 3},
		{"vanderpol", NewVanDerPol(), 2},
		{"duffing", NewDuffing(), 2},
	}

	for _, tt := range tests {
		if tt.sys.Dim() != tt.dim {
			t.Errorf("%s: expected dim %d, got %d", tt.name, tt.dim, tt.sys.Dim())
		}
		dx := tt.sys.Derive(0, make(dynamo.State, tt.dim))
		if len(dx) != tt.dim {
			t.Errorf("%s: derivative length %d, expected %d", tt.name, len(dx), tt.dim)
		}
	}
}

func TestMapDimensions(t *testing.T) {
	tests := []struct {
		name string
		m    dynamo.Map
		dim  int
	}{
		{"henon", NewHenon(), 2},
		{"logistic", NewLogistic(), 1},
	}

	for _, tt := range tests {
		if tt.m.Dim() != tt.dim {
			t.Errorf("%s: expected dim %d, got %d", tt.name, tt.dim, tt.m.Dim())
		}
		next := tt.m.Apply(0, make(dynamo.State, tt.dim))
		if len(next) != tt.dim {
			t.Errorf("%s: image length %d, expected %d", tt.name, len(next), tt.dim)
		}
	}
}

func TestLorenzDerive(t *testing.T) {
	l := NewLorenz()
	dx := l.Derive(0, dynamo.State{1, 1, 1})

	// σ(y-x)=0, x(ρ-z)-y=26, xy-βz=1-8/3
	if dx[0] != 0 {
		t.Errorf("dx[0]: expected 0, got %f", dx[0])
	}
	if dx[1] != 26 {
		t.Errorf("dx[1]: expected 26, got %f", dx[1])
	}
	if math.Abs(dx[2]-(1-8.0/3.0)) > 1e-12 {
		t.Errorf("dx[2]: expected %f, got %f", 1-8.0/3.0, dx[2])
	}
}

func TestSetParam(t *testing.T) {
	l := NewLorenz()
	l.SetParam("rho", 99.0)
	if l.GetParams()["rho"] != 99.0 {
		t.Errorf("rho not updated: %v", l.GetParams())
	}

	h := NewHenon()
	h.SetParam("a", 1.2)
	if h.GetParams()["a"] != 1.2 {
		t.Errorf("a not updated: %v", h.GetParams())
	}
}

func TestDuffingDrive(t *testing.T) {
	d := NewDuffing()

	// Time-dependent forcing: the field must differ across the drive period.
	a := d.Derive(0, dynamo.State{1, 0})
	b := d.Derive(math.Pi/d.Omega, dynamo.State{1, 0})
	if a[1] == b[1] {
		t.Error("expected time-dependent acceleration from the drive term")
	}
}

func TestHenonOrbitBounded(t *testing.T) {
	h := NewHenon()
	x := h.DefaultState()
	for n := 0; n < 1000; n++ {
		x = h.Apply(n, x)
		if !x.IsValid() {
			t.Fatalf("orbit diverged at step %d", n)
		}
	}
	if math.Abs(x[0]) > 2 || math.Abs(x[1]) > 2 {
		t.Errorf("orbit left the attractor region: %v", x)
	}
}
