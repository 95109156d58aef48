package problems

import (
	"fmt"
	"math"
	"sort"
)

type Registry struct {
	problems map[string]func() Problem
}

func NewRegistry() *Registry {
	r := &Registry{problems: make(map[string]func() Problem)}

	r.problems["decay"] = func() Problem {
		return Problem{
			Name:        "decay",
			Description: "exponential decay, F = -1",
			Y0:          5,
			F:           func(t float64) float64 { return -1 },
			Exact:       func(t float64) float64 { return 5 * math.Exp(-t) },
		}
	}
	r.problems["growth"] = func() Problem {
		return Problem{
			Name:        "growth",
			Description: "exponential growth, F = 0.5",
			Y0:          1,
			F:           func(t float64) float64 { return 0.5 },
			Exact:       func(t float64) float64 { return math.Exp(0.5 * t) },
		}
	}
	r.problems["cooling"] = func() Problem {
		return Problem{
			Name:        "cooling",
			Description: "algebraic cooling, F(t) = -1/(1+t)",
			Y0:          2,
			F:           func(t float64) float64 { return -1 / (1 + t) },
			Exact:       func(t float64) float64 { return 2 / (1 + t) },
		}
	}
	r.problems["ripple"] = func() Problem {
		return Problem{
			Name:        "ripple",
			Description: "oscillating coefficient, F(t) = cos(t)",
			Y0:          1,
			F:           math.Cos,
			Exact:       func(t float64) float64 { return math.Exp(math.Sin(t)) },
		}
	}

	return r
}

func (r *Registry) Get(name string) (Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
