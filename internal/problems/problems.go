// Package problems carries the named scalar linear ODE problems the CLI
// and tests run against, each with its coefficient, default initial
// value, and exact solution where a closed form exists.
package problems

import (
	"github.com/jehanzebchaudhry/stoptime/internal/galerkin"
)

// Problem is a scalar linear ODE y' = F(t)y with initial value Y0.
type Problem struct {
	Name        string
	Description string
	Y0          float64
	F           galerkin.Coefficient
	// Exact is the closed-form solution, nil when none is carried.
	Exact func(t float64) float64
}

// HasExact reports whether a closed-form solution is available.
func (p Problem) HasExact() bool { return p.Exact != nil }
