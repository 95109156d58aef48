package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoConvergence indicates the solver hit its iteration budget before
// the residual dropped below tolerance.
var ErrNoConvergence = errors.New("rootfind: no convergence within iteration budget")

const maxIterations = 200

// Solve finds x with |residual(x)| <= tol, starting from guess. It runs
// secant iteration seeded by a small relative perturbation of the guess
// and nudges past flat spots where the secant is undefined.
func Solve(residual func(float64) float64, guess, tol float64) (float64, error) {
	h := 1e-4 * (1 + math.Abs(guess))
	x0, x1 := guess, guess+h
	f0, f1 := residual(x0), residual(x1)
	if math.Abs(f0) <= tol {
		return x0, nil
	}

	for i := 0; i < maxIterations; i++ {
		if math.Abs(f1) <= tol {
			return x1, nil
		}
		if f1 == f0 {
			x1 += h
			f1 = residual(x1)
			continue
		}
		x2 := SecantStep(f0, f1, x0, x1, 0)
		x0, f0 = x1, f1
		x1, f1 = x2, residual(x2)
	}
	return 0, fmt.Errorf("%w: last residual %g", ErrNoConvergence, f1)
}
