package galerkin

import (
	"math"
	"sync"
)

type quadRule struct {
	nodes   []float64
	weights []float64
}

var (
	ruleMu    sync.Mutex
	ruleCache = make(map[int]quadRule)
)

// legendreRule computes the order-point Gauss-Legendre nodes and weights
// on [-1, 1] by Newton iteration on the three-term Legendre recurrence.
// Rules are cached per order; assembly asks for the same 5q rule once
// per matrix entry.
func legendreRule(order int) quadRule {
	ruleMu.Lock()
	defer ruleMu.Unlock()
	if r, ok := ruleCache[order]; ok {
		return r
	}

	n := order
	x := make([]float64, n)
	w := make([]float64, n)
	for i := 0; i < (n+1)/2; i++ {
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var pn, dpn float64
		for iter := 0; iter < 100; iter++ {
			p0 := 1.0 // P_k(z)
			p1 := 0.0 // P_{k-1}(z)
			for k := 0; k < n; k++ {
				p2 := p1
				p1 = p0
				p0 = ((2*float64(k)+1)*z*p1 - float64(k)*p2) / float64(k+1)
			}
			pn = p0
			dpn = float64(n) * (z*p0 - p1) / (z*z - 1)
			dz := pn / dpn
			z -= dz
			if math.Abs(dz) < 1e-15 {
				break
			}
		}
		x[i] = -z
		x[n-1-i] = z
		w[i] = 2 / ((1 - z*z) * dpn * dpn)
		w[n-1-i] = w[i]
	}

	r := quadRule{nodes: x, weights: w}
	ruleCache[order] = r
	return r
}

// GaussLegendre integrates f over [left, right] with an order-point
// Gauss-Legendre rule: exact for polynomials of degree <= 2*order-1.
// The caller chooses the order; there is no adaptivity.
func GaussLegendre(left, right float64, order int, f func(float64) float64) float64 {
	r := legendreRule(order)
	c := (right - left) / 2
	mid := (left + right) / 2
	sum := 0.0
	for k, p := range r.nodes {
		sum += c * r.weights[k] * f(c*p+mid)
	}
	return sum
}
