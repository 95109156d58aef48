package galerkin_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jehanzebchaudhry/stoptime/internal/galerkin"
)

var _ = Describe("cG(q) convergence", func() {
	growth := func(t float64) float64 { return 1 }

	terminalError := func(n, degree int) float64 {
		sol, err := galerkin.SolveLinear(1, growth, galerkin.Uniform(0, 1, n), degree)
		Expect(err).NotTo(HaveOccurred())
		return math.Abs(sol.NodeValue(n) - math.E)
	}

	It("converges under mesh refinement at fixed degree", func() {
		prev := terminalError(2, 1)
		for _, n := range []int{4, 8, 16} {
			cur := terminalError(n, 1)
			Expect(cur).To(BeNumerically("<", prev))
			prev = cur
		}
		// cG(1) nodal values converge at second order, so two mesh
		// doublings shave roughly a factor 16.
		Expect(terminalError(16, 1)).To(BeNumerically("<", terminalError(4, 1)/8))
	})

	It("converges under degree elevation on a fixed mesh", func() {
		prev := terminalError(4, 1)
		for _, q := range []int{2, 3} {
			cur := terminalError(4, q)
			Expect(cur).To(BeNumerically("<", prev))
			prev = cur
		}
	})
})

var _ = Describe("dual-weighted residual estimate", func() {
	decay := func(t float64) float64 { return -1 }

	It("tracks the true terminal error across mesh resolutions", func() {
		adjoint, err := galerkin.SolveAdjoint(decay, galerkin.Uniform(0, 2, 64), 3)
		Expect(err).NotTo(HaveOccurred())

		for _, n := range []int{4, 8, 16} {
			forward, err := galerkin.SolveLinear(5, decay, galerkin.Uniform(0, 2, n), 1)
			Expect(err).NotTo(HaveOccurred())

			est, err := galerkin.EstimateError(forward, adjoint, decay)
			Expect(err).NotTo(HaveOccurred())

			endValue, err := forward.At(2.0)
			Expect(err).NotTo(HaveOccurred())
			trueErr := 5*math.Exp(-2) - endValue

			Expect(est.Total).To(BeNumerically("~", trueErr, 1e-4))
		}
	})
})
