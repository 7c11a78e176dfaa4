package lp

import (
	"context"
	"errors"
)

var (
	// ErrInfeasible is wrapped by backends when no feasible point exists.
	ErrInfeasible = errors.New("lp: infeasible problem")

	// ErrUnbounded is wrapped by backends when the objective is unbounded.
	ErrUnbounded = errors.New("lp: unbounded problem")

	// ErrMalformed is wrapped when a Problem fails validation.
	ErrMalformed = errors.New("lp: malformed problem")
)

// Solver solves linear programs. Implementations must be safe for
// concurrent use and must not retain the Problem after Solve returns.
//
// On success the Solution has StatusOptimal and one value per column.
// Infeasible and unbounded problems return an error wrapping
// ErrInfeasible or ErrUnbounded (the Solution, when non-nil, carries
// the matching status). Cancellation of ctx is reported as ctx.Err().
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}
