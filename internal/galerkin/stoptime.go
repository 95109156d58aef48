package galerkin

import "fmt"

// Node identifies one grid node of a crossing window: its mesh index,
// its time, and the length of the nodal-value prefix of the trajectory
// up to and including that node. Prefixes are (length into the owned
// nodal buffer) views, not copies.
type Node struct {
	Index     int
	Time      float64
	PrefixLen int
}

// Crossing is the numerical stopping time of a trajectory: the first
// time the piecewise solution crosses the target, interpolated between
// the straddling grid nodes, together with the four-node window
// (left neighbor, the two straddling nodes, right neighbor) needed for
// the adjoint-based error analysis.
type Crossing struct {
	Target   float64
	Fraction float64 // interpolation fraction s in (0, 1)
	Time     float64 // s*t2 + (1-s)*t1

	Left, First, Second, Right Node

	sol *Solution
}

// Prefix returns the trajectory's nodal values up to and including n.
// The returned slice aliases the solution's buffer; callers must not
// mutate it.
func (c *Crossing) Prefix(n Node) []float64 {
	return c.sol.Values[:n.PrefixLen]
}

// LocateCrossing scans the trajectory's subintervals in increasing order
// for the first one whose start node and the value one trial step later
// straddle the target, then interpolates the crossing time linearly
// between the subinterval's endpoint values. Later crossings are not
// found.
//
// A trajectory that never straddles the target is ErrNoCrossing; a
// crossing in the first or last subinterval is ErrCrossingAtBoundary
// (the window needs both neighbors); equal endpoint values are
// ErrFlatCrossing rather than a division by zero.
func LocateCrossing(sol *Solution, target float64) (*Crossing, error) {
	q := sol.Degree
	t := sol.Mesh
	Y := sol.Values
	M := len(t)

	for i := 0; i+1 < M; i++ {
		a, b := Y[q*i], Y[q*i+1]
		if !((a > target && b < target) || (a < target && b > target)) {
			continue
		}
		if i == 0 || i+2 >= M {
			return nil, fmt.Errorf("%w: subinterval %d of %d", ErrCrossingAtBoundary, i, M-1)
		}
		y1, y2 := Y[q*i], Y[q*i+q]
		if y1 == y2 {
			return nil, fmt.Errorf("%w: value %g at t=%g and t=%g", ErrFlatCrossing, y1, t[i], t[i+1])
		}
		s := (target - y1) / (y2 - y1)
		return &Crossing{
			Target:   target,
			Fraction: s,
			Time:     s*t[i+1] + (1-s)*t[i],
			Left:     Node{Index: i - 1, Time: t[i-1], PrefixLen: q*i - q + 1},
			First:    Node{Index: i, Time: t[i], PrefixLen: q*i + 1},
			Second:   Node{Index: i + 1, Time: t[i+1], PrefixLen: q*i + q + 1},
			Right:    Node{Index: i + 2, Time: t[i+2], PrefixLen: q*i + 2*q + 1},
			sol:      sol,
		}, nil
	}
	return nil, fmt.Errorf("%w: target %g", ErrNoCrossing, target)
}
