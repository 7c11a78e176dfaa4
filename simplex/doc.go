// Package simplex provides the in-process lp.Solver used throughout
// this module, built on gonum's dense simplex implementation
// (gonum.org/v1/gonum/optimize/convex/lp).
//
// The backend accepts any bounded-variable lp.Problem and translates
// it to the general form gonum expects:
//
//   - equality rows go to A·x = b,
//   - range and one-sided rows become G·x ≤ h (a finite lower bound
//     contributes a negated row),
//   - finite variable bounds contribute unit rows to G,
//   - maximization negates the cost vector.
//
// lp.Convert then rewrites the general form into standard form
// (free variables split into positive and negative parts, one slack
// per inequality) and lp.Simplex solves it with Bland's rule, which
// makes results deterministic for identical inputs.
//
// The translation is dense, so this backend suits the kernel-sized
// programs this module produces (hundreds of arcs), not industrial
// models. Solving is synchronous and uninterruptible once started;
// the context is honored at the call boundary only.
//
// Failure modes map onto the shared sentinels: gonum's infeasible and
// unbounded verdicts surface as lp.ErrInfeasible and lp.ErrUnbounded,
// malformed input as lp.ErrMalformed, and anything else (singular
// bases, pivot breakdowns) passes through wrapped with the operation
// name.
package simplex
