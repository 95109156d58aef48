// Package integrators provides single-step time integrators for general
// scalar ODEs y' = F(t, y). The cG(q) solver does not depend on them;
// they serve as independent reference integrators.
package integrators

import (
	"fmt"

	"github.com/jehanzebchaudhry/stoptime/internal/rootfind"
)

// RHS is the right-hand side of a general scalar ODE y' = F(t, y).
type RHS func(t, y float64) float64

const stepTolerance = 1e-14

// TrapezoidStep advances y across [t0, t1] with the implicit trapezoid
// (Crank-Nicolson) rule. The implicit equation in the new value is
// closed with the scalar root solver, seeded at the old value.
func TrapezoidStep(yOld, t0, t1 float64, f RHS) (float64, error) {
	dt := t1 - t0
	residual := func(yNew float64) float64 {
		return yNew - yOld - (dt/2)*(f(t0, yOld)+f(t1, yNew))
	}
	return rootfind.Solve(residual, yOld, stepTolerance)
}

// SolveTrapezoid marches node by node across the mesh, returning the
// value of y at every mesh node.
func SolveTrapezoid(y0 float64, mesh []float64, f RHS) ([]float64, error) {
	y := make([]float64, len(mesh))
	y[0] = y0
	for i := 0; i+1 < len(mesh); i++ {
		v, err := TrapezoidStep(y[i], mesh[i], mesh[i+1], f)
		if err != nil {
			return nil, fmt.Errorf("step %d (t=%g): %w", i, mesh[i], err)
		}
		y[i+1] = v
	}
	return y, nil
}
