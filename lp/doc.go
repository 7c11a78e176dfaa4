// Package lp defines the linear-programming surface shared by every
// component in this module: a Problem to describe, a Solution to read,
// and a Solver interface that any backend can satisfy.
//
// A Problem has the form
//
//	minimize (or maximize)  ColCosts · x
//	subject to              RowLower ≤ A·x ≤ RowUpper
//	and                     ColLower ≤ x ≤ ColUpper
//
// where A is given sparsely as a list of Nonzero entries. Equality
// rows set RowLower == RowUpper.
//
// The package holds no solving code. Backends (see the sibling simplex
// package) implement
//
//	Solve(ctx context.Context, p *Problem) (*Solution, error)
//
// and translate their failure modes onto the shared sentinels
// ErrInfeasible, ErrUnbounded and ErrMalformed so that callers can
// errors.Is against a single vocabulary regardless of the engine.
// A Solver must be stateless between calls: two goroutines may share
// one instance.
package lp
