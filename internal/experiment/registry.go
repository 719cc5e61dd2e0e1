package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/chaoskit/internal/dynamo"
	"github.com/san-kum/chaoskit/internal/physics"
)

// Defaulter is implemented by models that ship a canonical initial
// condition.
type Defaulter interface {
	DefaultState() dynamo.State
}

type Registry struct {
	models map[string]func() dynamo.System
	maps   map[string]func() dynamo.Map
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]func() dynamo.System),
		maps:   make(map[string]func() dynamo.Map),
	}

	r.models["lorenz"] = func() dynamo.System { return physics.NewLorenz() }
	r.models["rossler"] = func() dynamo.System { return physics.NewRossler() }
	r.models["vanderpol"] = func() dynamo.System { return physics.NewVanDerPol() }
	r.models["duffing"] = func() dynamo.System { return physics.NewDuffing() }

	r.maps["henon"] = func() dynamo.Map { return physics.NewHenon() }
	r.maps["logistic"] = func() dynamo.Map { return physics.NewLogistic() }

	return r
}

func (r *Registry) GetModel(name string) (dynamo.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (known: %v)", name, r.ListModels())
	}
	return fn(), nil
}

func (r *Registry) GetMap(name string) (dynamo.Map, error) {
	fn, ok := r.maps[name]
	if !ok {
		return nil, fmt.Errorf("unknown map: %s (known: %v)", name, r.ListMaps())
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListMaps() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InitState resolves an initial condition: an explicit state wins,
// otherwise the model's default.
func InitState(sys dynamo.System, explicit []float64) (dynamo.State, error) {
	if len(explicit) > 0 {
		if len(explicit) != sys.Dim() {
			return nil, fmt.Errorf("%w: got %d values for a %d-dimensional model", dynamo.ErrDimensionMismatch, len(explicit), sys.Dim())
		}
		return dynamo.State(explicit).Clone(), nil
	}
	if d, ok := sys.(Defaulter); ok {
		return d.DefaultState(), nil
	}
	return make(dynamo.State, sys.Dim()), nil
}
