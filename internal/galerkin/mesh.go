package galerkin

import (
	"fmt"
	"sort"
)

// Mesh is an ordered, strictly increasing sequence of time nodes. It is
// immutable once constructed; TruncateAt returns a new mesh.
type Mesh []float64

// Uniform builds a mesh of n equal subintervals spanning [t0, t1].
func Uniform(t0, t1 float64, n int) Mesh {
	m := make(Mesh, n+1)
	h := (t1 - t0) / float64(n)
	for i := 0; i <= n; i++ {
		m[i] = t0 + float64(i)*h
	}
	m[n] = t1
	return m
}

func (m Mesh) Validate() error {
	if len(m) < 2 {
		return fmt.Errorf("%w: have %d nodes", ErrBadMesh, len(m))
	}
	for i := 1; i < len(m); i++ {
		if m[i] <= m[i-1] {
			return fmt.Errorf("%w: node %d (%g) <= node %d (%g)", ErrBadMesh, i, m[i], i-1, m[i-1])
		}
	}
	return nil
}

func (m Mesh) Start() float64 { return m[0] }

func (m Mesh) End() float64 { return m[len(m)-1] }

func (m Mesh) Subintervals() int { return len(m) - 1 }

// locate returns the index i of the subinterval [m[i], m[i+1]] holding x,
// treating the final node as part of the last subinterval. The caller
// guarantees x lies within the mesh span.
func (m Mesh) locate(x float64) int {
	i := sort.SearchFloat64s(m, x)
	if i < len(m) && m[i] == x {
		if i == len(m)-1 {
			return i - 1
		}
		return i
	}
	return i - 1
}

// TruncateAt returns the longest prefix of m whose nodes are all strictly
// below T, with T appended as the exact final node. T must lie inside
// the mesh span; otherwise ErrMeshMismatch is returned.
func (m Mesh) TruncateAt(T float64) (Mesh, error) {
	if T <= m.Start() || T > m.End() {
		return nil, fmt.Errorf("%w: T=%g outside (%g, %g]", ErrMeshMismatch, T, m.Start(), m.End())
	}
	out := make(Mesh, 0, len(m))
	for _, t := range m {
		if t >= T {
			break
		}
		out = append(out, t)
	}
	return append(out, T), nil
}
