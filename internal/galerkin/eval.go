package galerkin

import "fmt"

// Coefficient is the ODE coefficient F in y' = F(t)y. It must be
// evaluable at arbitrary quadrature points within the mesh span and
// carry no state.
type Coefficient func(t float64) float64

// Solution is a nodal vector paired with the mesh and degree that give
// it meaning. For a mesh of N subintervals and degree q the vector has
// N*q+1 entries; entry q*i+j is the value at the j-th trial node of
// subinterval i, with endpoint values shared between neighbors.
type Solution struct {
	Values []float64
	Mesh   Mesh
	Degree int
}

// At evaluates the piecewise polynomial at x. The final mesh node
// returns the last nodal value directly, so the half-open subinterval
// lookup never falls off the end. Points outside the mesh span are an
// ErrOutOfDomain failure, never a silent zero.
func (s *Solution) At(x float64) (float64, error) {
	m := s.Mesh
	if x < m.Start() || x > m.End() {
		return 0, fmt.Errorf("%w: x=%g not in [%g, %g]", ErrOutOfDomain, x, m.Start(), m.End())
	}
	if x == m.End() {
		return s.Values[len(s.Values)-1], nil
	}
	i := m.locate(x)
	q := s.Degree
	sum := 0.0
	for j := 0; j <= q; j++ {
		sum += s.Values[q*i+j] * TrialBasis(m[i], m[i+1], q, j, x)
	}
	return sum, nil
}

// DerivAt evaluates the derivative of the piecewise polynomial at x.
// At the final mesh node the last subinterval's polynomial is used.
func (s *Solution) DerivAt(x float64) (float64, error) {
	m := s.Mesh
	if x < m.Start() || x > m.End() {
		return 0, fmt.Errorf("%w: x=%g not in [%g, %g]", ErrOutOfDomain, x, m.Start(), m.End())
	}
	i := m.locate(x)
	q := s.Degree
	sum := 0.0
	for j := 0; j <= q; j++ {
		sum += s.Values[q*i+j] * TrialBasisDeriv(m[i], m[i+1], q, j, x)
	}
	return sum, nil
}

// NodeValue returns the trajectory value stored at mesh node i.
func (s *Solution) NodeValue(i int) float64 {
	return s.Values[s.Degree*i]
}
