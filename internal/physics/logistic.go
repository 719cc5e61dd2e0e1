package physics

import "github.com/san-kum/chaoskit/internal/dynamo"

// Logistic implements the logistic map x_{n+1} = r·x(1-x), the
// textbook period-doubling route to chaos.
type Logistic struct{ r float64 }

func NewLogistic() *Logistic { return &Logistic{3.8} }
func (l *Logistic) Dim() int { return 1 }

func (l *Logistic) Apply(_ int, s dynamo.State) dynamo.State {
	x := s[0]
	return dynamo.State{l.r * x * (1 - x)}
}

func (l *Logistic) DefaultState() dynamo.State { return dynamo.State{0.5} }
func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{"r": l.r}
}
func (l *Logistic) SetParam(n string, v float64) {
	if n == "r" {
		l.r = v
	}
}
