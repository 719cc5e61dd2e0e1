package analysis

import (
	"fmt"

	"github.com/san-kum/chaoskit/internal/dynamo"
)

// BifurcationPoint holds the attractor samples observed at one value
// of the swept parameter.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// Bifurcation sweeps a parameter of a Configurable map and records the
// post-transient values of one state variable at each parameter value.
// Useful for visualizing period-doubling routes to chaos.
func Bifurcation(
	m dynamo.Map,
	paramName string,
	paramMin, paramMax float64,
	paramSteps int,
	stateIndex int,
	x0 dynamo.State,
	warmup, samples int,
) ([]BifurcationPoint, error) {
	tunable, ok := m.(dynamo.Configurable)
	if !ok {
		return nil, fmt.Errorf("%w: map has no tunable parameters", dynamo.ErrInvalidRange)
	}
	if paramSteps < 2 {
		return nil, fmt.Errorf("%w: paramSteps must be at least 2, got %d", dynamo.ErrInvalidRange, paramSteps)
	}
	if stateIndex < 0 || stateIndex >= len(x0) {
		return nil, fmt.Errorf("%w: state index %d out of range for dim %d", dynamo.ErrInvalidRange, stateIndex, len(x0))
	}

	results := make([]BifurcationPoint, 0, paramSteps)
	step := (paramMax - paramMin) / float64(paramSteps-1)

	for i := 0; i < paramSteps; i++ {
		param := paramMin + float64(i)*step
		tunable.SetParam(paramName, param)

		x := x0.Clone()
		for n := 0; n < warmup; n++ {
			x = m.Apply(n, x)
		}

		values := make([]float64, 0, samples)
		seen := make(map[int]bool)
		for n := 0; n < samples; n++ {
			x = m.Apply(warmup+n, x)
			// Quantize to collapse near-identical attractor values.
			key := int(x[stateIndex] * 1000)
			if !seen[key] {
				seen[key] = true
				values = append(values, x[stateIndex])
			}
		}

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}

	tunable.SetParam(paramName, paramMin)
	return results, nil
}
