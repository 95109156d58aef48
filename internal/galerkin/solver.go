package galerkin

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// quadOrder is the Gauss rule size used for assembly and error
// quadrature. 5q covers the trial/test polynomial products with margin.
func quadOrder(degree int) int { return 5 * degree }

// SolveLinear solves y' = F(t)y, y(mesh[0]) = y0, with cG(degree).
//
// The solve is strictly sequential over subintervals: each local system
// depends on the previous subinterval's terminal value. Per subinterval
// a q x (q+1) matrix of weighted residual integrals is assembled; the
// first column multiplies the known entering value and moves to the
// right-hand side, which encodes C0 continuity without a global
// assembly, leaving a dense q x q solve for the unknown nodes.
func SolveLinear(y0 float64, f Coefficient, mesh Mesh, degree int) (*Solution, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	if degree < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDegree, degree)
	}

	q := degree
	order := quadOrder(q)
	N := mesh.Subintervals()
	y := make([]float64, N*q+1)
	y[0] = y0

	a := mat.NewDense(q, q+1, nil)
	A := mat.NewDense(q, q, nil)
	b := mat.NewVecDense(q, nil)
	var s mat.VecDense
	for n := 0; n < N; n++ {
		left, right := mesh[n], mesh[n+1]
		for row := 0; row < q; row++ {
			for col := 0; col <= q; col++ {
				a.Set(row, col, GaussLegendre(left, right, order, func(x float64) float64 {
					return TestBasis(left, right, q, row, x) *
						(TrialBasisDeriv(left, right, q, col, x) - f(x)*TrialBasis(left, right, q, col, x))
				}))
			}
		}

		known := y[n*q]
		for row := 0; row < q; row++ {
			b.SetVec(row, -known*a.At(row, 0))
			for col := 1; col <= q; col++ {
				A.Set(row, col-1, a.At(row, col))
			}
		}

		if err := s.SolveVec(A, b); err != nil {
			return nil, fmt.Errorf("%w: subinterval %d [%g, %g]: %v", ErrSingularSystem, n, left, right, err)
		}
		for j := 0; j < q; j++ {
			y[n*q+1+j] = s.AtVec(j)
		}
	}

	return &Solution{Values: y, Mesh: mesh, Degree: q}, nil
}
