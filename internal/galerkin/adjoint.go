package galerkin

// SolveAdjoint solves the dual problem phi' = -F(t)phi backward from the
// final mesh node with phi(T) = 1, the terminal condition of the
// stopping-time error representation.
//
// The substitution s = T - t turns the dual into a forward problem
// psi' = F(T-s)psi, psi(0) = 1 on the mirrored mesh, so the one cG(q)
// kernel serves both directions; the nodal vector is mirrored back onto
// the original mesh afterwards.
func SolveAdjoint(f Coefficient, mesh Mesh, degree int) (*Solution, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	T := mesh.End()
	rev := make(Mesh, len(mesh))
	for i, t := range mesh {
		rev[len(mesh)-1-i] = T - t
	}

	psi, err := SolveLinear(1, func(s float64) float64 { return f(T - s) }, rev, degree)
	if err != nil {
		return nil, err
	}

	vals := make([]float64, len(psi.Values))
	for i, v := range psi.Values {
		vals[len(vals)-1-i] = v
	}
	return &Solution{Values: vals, Mesh: mesh, Degree: degree}, nil
}
