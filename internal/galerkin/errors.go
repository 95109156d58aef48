package galerkin

import "errors"

// Domain errors for the cG(q) solver and its derived quantities.
var (
	// ErrBadMesh indicates a mesh that is too short or not strictly increasing.
	ErrBadMesh = errors.New("galerkin: mesh must be strictly increasing with at least 2 nodes")

	// ErrBadDegree indicates a non-positive polynomial degree.
	ErrBadDegree = errors.New("galerkin: polynomial degree must be positive")

	// ErrOutOfDomain indicates an evaluation point outside the mesh span.
	ErrOutOfDomain = errors.New("galerkin: evaluation point outside mesh span")

	// ErrSingularSystem indicates a singular or ill-conditioned local system.
	ErrSingularSystem = errors.New("galerkin: local system is singular or ill-conditioned")

	// ErrMeshMismatch indicates the adjoint terminal time cannot be reached
	// by any prefix of the forward mesh.
	ErrMeshMismatch = errors.New("galerkin: terminal time not reachable on forward mesh")

	// ErrNoCrossing indicates the trajectory never straddles the target.
	ErrNoCrossing = errors.New("galerkin: trajectory never crosses the target")

	// ErrCrossingAtBoundary indicates a crossing in the first or last
	// subinterval, where the four-node window has no neighbor on one side.
	ErrCrossingAtBoundary = errors.New("galerkin: crossing in first or last subinterval")

	// ErrFlatCrossing indicates equal values at the straddling nodes.
	ErrFlatCrossing = errors.New("galerkin: straddling nodes have equal values")
)
