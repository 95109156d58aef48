// Package rootfind provides closed-form scalar root-finding step
// formulas and a small derivative-free solver for equations f(x) = r.
// The steps are stateless; iteration policy belongs to the caller or to
// [Solve].
package rootfind
