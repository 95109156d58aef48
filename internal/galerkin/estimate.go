package galerkin

// ErrorEstimate is the dual-weighted-residual error decomposition for a
// forward solution at the adjoint's terminal time: one contribution per
// subinterval of the reconciled grid, their sum, and the grid itself.
type ErrorEstimate struct {
	Total float64
	Local []float64
	Grid  Mesh
}

// EstimateError estimates the error in forward at adjoint.Mesh.End().
// The forward and adjoint solutions may live on different meshes and
// degrees. The adjoint weights the forward residual -Y' + F*Y, so a
// forward solution that satisfied the ODE exactly would estimate zero.
//
// The grids are reconciled first: the forward mesh is reused when both
// end together, otherwise its prefix below the adjoint's terminal time
// is taken and that time appended exactly, keeping every quadrature
// point inside both solutions' domains.
func EstimateError(forward, adjoint *Solution, f Coefficient) (*ErrorEstimate, error) {
	grid := forward.Mesh
	if forward.Mesh.End() != adjoint.Mesh.End() {
		g, err := forward.Mesh.TruncateAt(adjoint.Mesh.End())
		if err != nil {
			return nil, err
		}
		grid = g
	}

	N := grid.Subintervals()
	order := quadOrder(forward.Degree)
	local := make([]float64, N)
	total := 0.0
	for n := 0; n < N; n++ {
		var evalErr error
		local[n] = GaussLegendre(grid[n], grid[n+1], order, func(x float64) float64 {
			yv, err := forward.At(x)
			if err != nil {
				evalErr = err
				return 0
			}
			dy, err := forward.DerivAt(x)
			if err != nil {
				evalErr = err
				return 0
			}
			phi, err := adjoint.At(x)
			if err != nil {
				evalErr = err
				return 0
			}
			return phi * (-dy + f(x)*yv)
		})
		if evalErr != nil {
			return nil, evalErr
		}
		total += local[n]
	}

	return &ErrorEstimate{Total: total, Local: local, Grid: grid}, nil
}
