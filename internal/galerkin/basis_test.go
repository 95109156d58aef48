package galerkin

import (
	"math"
	"testing"
)

func TestTrialBasisCardinal(t *testing.T) {
	left, right := 1.5, 4.0
	for degree := 1; degree <= 4; degree++ {
		h := (right - left) / float64(degree)
		for j := 0; j <= degree; j++ {
			for k := 0; k <= degree; k++ {
				got := TrialBasis(left, right, degree, j, left+float64(k)*h)
				want := 0.0
				if k == j {
					want = 1.0
				}
				if math.Abs(got-want) > 1e-12 {
					t.Errorf("degree %d: basis %d at node %d = %.15f, want %g", degree, j, k, got, want)
				}
			}
		}
	}
}

func TestTrialBasisDerivMatchesFiniteDifference(t *testing.T) {
	left, right := 0.0, 2.0
	h := 1e-6
	for degree := 1; degree <= 4; degree++ {
		for j := 0; j <= degree; j++ {
			for _, x := range []float64{0.1, 0.77, 1.3, 1.9} {
				analytic := TrialBasisDeriv(left, right, degree, j, x)
				numeric := (TrialBasis(left, right, degree, j, x+h) - TrialBasis(left, right, degree, j, x-h)) / (2 * h)
				if math.Abs(analytic-numeric) > 1e-5 {
					t.Errorf("degree %d basis %d at x=%g: analytic %.10f, finite diff %.10f", degree, j, x, analytic, numeric)
				}
			}
		}
	}
}

func TestTestBasisConstantForDegreeOne(t *testing.T) {
	for _, x := range []float64{-3, 0, 0.5, 7} {
		if got := TestBasis(0, 1, 1, 0, x); got != 1 {
			t.Errorf("degree-1 test basis at x=%g = %g, want 1", x, got)
		}
	}
}

func TestTestBasisCardinal(t *testing.T) {
	left, right := -1.0, 3.0
	for degree := 2; degree <= 4; degree++ {
		h := (right - left) / float64(degree-1)
		for j := 0; j < degree; j++ {
			for k := 0; k < degree; k++ {
				got := TestBasis(left, right, degree, j, left+float64(k)*h)
				want := 0.0
				if k == j {
					want = 1.0
				}
				if math.Abs(got-want) > 1e-12 {
					t.Errorf("degree %d: test basis %d at node %d = %.15f, want %g", degree, j, k, got, want)
				}
			}
		}
	}
}
