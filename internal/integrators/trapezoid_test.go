package integrators

import (
	"math"
	"testing"
)

func uniformMesh(t0, t1 float64, n int) []float64 {
	m := make([]float64, n+1)
	for i := range m {
		m[i] = t0 + (t1-t0)*float64(i)/float64(n)
	}
	return m
}

func TestSolveTrapezoidExponentialDecay(t *testing.T) {
	y, err := SolveTrapezoid(1, uniformMesh(0, 1, 100), func(tm, y float64) float64 {
		return -y
	})
	if err != nil {
		t.Fatal(err)
	}
	want := math.Exp(-1)
	if math.Abs(y[len(y)-1]-want) > 1e-4 {
		t.Errorf("y(1) = %.8f, want %.8f", y[len(y)-1], want)
	}
}

func TestTrapezoidExactForLinearRHS(t *testing.T) {
	// y' = t has quadratic solution; the trapezoid rule integrates a
	// linear integrand exactly, step size notwithstanding.
	y, err := SolveTrapezoid(0, uniformMesh(0, 2, 4), func(tm, y float64) float64 {
		return tm
	})
	if err != nil {
		t.Fatal(err)
	}
	mesh := uniformMesh(0, 2, 4)
	for i, v := range y {
		want := mesh[i] * mesh[i] / 2
		if math.Abs(v-want) > 1e-10 {
			t.Errorf("y(%g) = %.12f, want %.12f", mesh[i], v, want)
		}
	}
}

func TestSolveTrapezoidNonlinear(t *testing.T) {
	// y' = -y^2, y(0) = 1 has solution 1/(1+t).
	y, err := SolveTrapezoid(1, uniformMesh(0, 2, 200), func(tm, y float64) float64 {
		return -y * y
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(y[len(y)-1]-1.0/3.0) > 1e-4 {
		t.Errorf("y(2) = %.8f, want %.8f", y[len(y)-1], 1.0/3.0)
	}
}

func TestTrapezoidStepSecondOrder(t *testing.T) {
	// Halving the step must cut the one-step error by about 8 (third
	// order locally).
	f := func(tm, y float64) float64 { return -y }
	errAt := func(dt float64) float64 {
		got, err := TrapezoidStep(1, 0, dt, f)
		if err != nil {
			t.Fatal(err)
		}
		return math.Abs(got - math.Exp(-dt))
	}
	coarse := errAt(0.2)
	fine := errAt(0.1)
	if fine >= coarse/4 {
		t.Errorf("step halving reduced error only %.3e -> %.3e", coarse, fine)
	}
}
