package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/jehanzebchaudhry/stoptime/internal/galerkin"
)

// Sample evaluates the piecewise solution at n+1 equally spaced points
// across its mesh span. Sampling stays inside the span, so evaluation
// cannot fail.
func Sample(sol *galerkin.Solution, n int) []float64 {
	t0, t1 := sol.Mesh.Start(), sol.Mesh.End()
	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		x := t0 + (t1-t0)*float64(i)/float64(n)
		v, err := sol.At(x)
		if err != nil {
			continue
		}
		out[i] = v
	}
	return out
}

// Trajectory plots the solution as an ascii graph.
func Trajectory(sol *galerkin.Solution, width, height int, caption string) string {
	data := Sample(sol, width)
	return GraphStyle.Render(asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	))
}

// LocalErrors plots the per-subinterval error contributions.
func LocalErrors(est *galerkin.ErrorEstimate, width, height int) string {
	return GraphStyle.Render(asciigraph.Plot(est.Local,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("local error contribution per subinterval"),
	))
}
