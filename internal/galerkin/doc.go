// Package galerkin solves scalar linear ODEs y' = F(t)y with a
// continuous Galerkin finite element method of arbitrary degree, cG(q),
// and estimates the error in a threshold-crossing quantity of interest.
//
// The package provides:
//
//   - [Mesh]: ordered time grid defining the subintervals
//   - [Solution]: nodal values paired with their mesh and degree
//   - [SolveLinear]: the cG(q) forward solver
//   - [SolveAdjoint]: the backward dual solve, reduced to a forward one
//   - [EstimateError]: dual-weighted-residual error decomposition
//   - [LocateCrossing]: first threshold crossing of a trajectory
//
// # Example
//
//	mesh := galerkin.Uniform(0, 10, 100)
//	sol, _ := galerkin.SolveLinear(5, func(t float64) float64 { return -1 }, mesh, 2)
//	cr, _ := galerkin.LocateCrossing(sol, 0.5)
//
// All operations are pure functions of their inputs; meshes and nodal
// vectors are never mutated after construction.
package galerkin
