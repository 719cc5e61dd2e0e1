package physics

import "github.com/san-kum/chaoskit/internal/dynamo"

// Henon implements the Hénon map, the classic 2D chaotic map:
//
//	x_{n+1} = 1 - a·x² + y
//	y_{n+1} = b·x
type Henon struct{ a, b float64 }

func NewHenon() *Henon    { return &Henon{1.4, 0.3} }
func (h *Henon) Dim() int { return 2 }

func (h *Henon) Apply(_ int, s dynamo.State) dynamo.State {
	x, y := s[0], s[1]
	return dynamo.State{1 - h.a*x*x + y, h.b * x}
}

func (h *Henon) DefaultState() dynamo.State { return dynamo.State{0.1, 0.1} }
func (h *Henon) GetParams() map[string]float64 {
	return map[string]float64{"a": h.a, "b": h.b}
}
func (h *Henon) SetParam(n string, v float64) {
	switch n {
	case "a":
		h.a = v
	case "b":
		h.b = v
	}
}
