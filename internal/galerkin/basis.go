package galerkin

// Trial functions are Lagrange cardinal polynomials on degree+1 equally
// spaced nodes per subinterval; test functions live on a separate set of
// degree equally spaced nodes, one polynomial degree lower.

// TrialBasis evaluates the degree-d Lagrange polynomial that is 1 at the
// j-th of d+1 equispaced nodes on [left, right] and 0 at the others.
// x is not restricted to [left, right].
func TrialBasis(left, right float64, degree, j int, x float64) float64 {
	h := (right - left) / float64(degree)
	xj := left + float64(j)*h
	v := 1.0
	for k := 0; k <= degree; k++ {
		if k == j {
			continue
		}
		xk := left + float64(k)*h
		v *= (x - xk) / (xj - xk)
	}
	return v
}

// TrialBasisDeriv evaluates the derivative of TrialBasis analytically by
// the sum-of-products rule.
func TrialBasisDeriv(left, right float64, degree, j int, x float64) float64 {
	h := (right - left) / float64(degree)
	node := func(k int) float64 { return left + float64(k)*h }
	xj := node(j)
	d := 0.0
	for m := 0; m <= degree; m++ {
		if m == j {
			continue
		}
		v := 1.0
		for k := 0; k <= degree; k++ {
			if k == j || k == m {
				continue
			}
			v *= (x - node(k)) / (xj - node(k))
		}
		d += v / (xj - node(m))
	}
	return d
}

// TestBasis evaluates the degree-1 lower Lagrange polynomial on degree
// equispaced nodes on [left, right]. For degree 1 the test space is the
// constant 1.
func TestBasis(left, right float64, degree, j int, x float64) float64 {
	if degree <= 1 {
		return 1
	}
	h := (right - left) / float64(degree-1)
	xj := left + float64(j)*h
	z := 1.0
	for k := 0; k < degree; k++ {
		if k == j {
			continue
		}
		xk := left + float64(k)*h
		z *= (x - xk) / (xj - xk)
	}
	return z
}
