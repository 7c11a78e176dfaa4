package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/flowcut/lp"
)

// DefaultTolerance is the pivot tolerance handed to gonum's Simplex.
// Zero keeps the engine's exact comparisons.
const DefaultTolerance = 0.0

// Option configures a Solver before creation.
type Option func(*Solver)

// WithTolerance sets the pivot tolerance passed to the underlying
// simplex engine. Panics if tol is negative or NaN; zero means exact
// comparisons.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic("simplex: WithTolerance requires tol >= 0")
	}

	return func(s *Solver) { s.tol = tol }
}

// Solver implements lp.Solver on gonum's dense simplex. The zero
// value is not ready; use New. A Solver holds no per-solve state and
// is safe for concurrent use.
type Solver struct {
	tol float64
}

// New returns a Solver with DefaultTolerance unless overridden.
func New(opts ...Option) *Solver {
	s := &Solver{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve translates p into gonum's general form, runs the simplex
// method, and maps the outcome back onto the shared lp vocabulary.
//
// Steps:
//  1. Guard the context and validate p (O(V + R + nnz)).
//  2. Assemble dense inequality and equality blocks: range rows split
//     into two inequalities, finite variable bounds become unit rows.
//  3. lp.Convert to standard form, lp.Simplex with the configured
//     tolerance, Bland's rule pivoting.
//  4. Recover x from the positive/negative split and recompute the
//     objective against the original costs (exact for the returned
//     point, regardless of slack bookkeeping).
//
// Complexity: the translation allocates O((R + V) · V) dense entries;
// simplex iteration count is problem dependent.
func (s *Solver) Solve(ctx context.Context, p *lp.Problem) (*lp.Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", lp.ErrMalformed)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.NumVariables()
	if n == 0 {
		return solveVacuous(p)
	}

	c := make([]float64, n)
	copy(c, p.ColCosts)
	if p.Maximize {
		floats.Scale(-1, c)
	}

	g, h, a, b, err := assemble(p)
	if err != nil {
		return nil, err
	}
	if len(h) == 0 && len(b) == 0 {
		return solveFree(p)
	}

	cNew, aNew, bNew := convexlp.Convert(c, g, h, a, b)
	_, xt, err := convexlp.Simplex(cNew, aNew, bNew, s.tol, nil)
	if err != nil {
		return classify(err)
	}

	x := make([]float64, n)
	for j := 0; j < n; j++ {
		x[j] = xt[j] - xt[n+j]
	}

	return &lp.Solution{
		Status:    lp.StatusOptimal,
		Values:    x,
		Objective: floats.Dot(p.ColCosts, x),
	}, nil
}

// assemble builds the dense general-form blocks from a validated
// problem. Duplicate sparse entries accumulate; rows with two
// infinite bounds vanish.
func assemble(p *lp.Problem) (g mat.Matrix, h []float64, a mat.Matrix, b []float64, err error) {
	n := p.NumVariables()
	m := p.NumRows()

	// Densify the sparse rows once.
	dense := make([][]float64, m)
	for i := range dense {
		dense[i] = make([]float64, n)
	}
	for _, nz := range p.ConstMatrix {
		dense[nz.Row][nz.Col] += nz.Val
	}

	var (
		ineq   []float64 // flattened rows
		hs     []float64
		eq     []float64
		bs     []float64
		numIne int
		numEq  int
	)
	appendIneq := func(row []float64, bound float64) {
		ineq = append(ineq, row...)
		hs = append(hs, bound)
		numIne++
	}

	for i := 0; i < m; i++ {
		lo, up := p.RowLower[i], p.RowUpper[i]
		if lo == up {
			if math.IsInf(lo, 0) {
				return nil, nil, nil, nil, fmt.Errorf("%w: row %d pins an infinite value", lp.ErrMalformed, i)
			}
			eq = append(eq, dense[i]...)
			bs = append(bs, lo)
			numEq++

			continue
		}
		if !math.IsInf(up, 1) {
			appendIneq(dense[i], up)
		}
		if !math.IsInf(lo, -1) {
			appendIneq(scaled(dense[i], -1), -lo)
		}
	}

	// Finite variable bounds become unit inequality rows; after the
	// free-variable split inside Convert even a zero lower bound needs
	// its row.
	for j := 0; j < n; j++ {
		if up := p.ColUpper[j]; !math.IsInf(up, 1) {
			appendIneq(unit(n, j, 1), up)
		}
		if lo := p.ColLower[j]; !math.IsInf(lo, -1) {
			appendIneq(unit(n, j, -1), -lo)
		}
	}

	if numIne > 0 {
		g = mat.NewDense(numIne, n, ineq)
		h = hs
	}
	if numEq > 0 {
		a = mat.NewDense(numEq, n, eq)
		b = bs
	}

	return g, h, a, b, nil
}

// solveVacuous settles a zero-variable problem: every row evaluates
// to zero, so feasibility is a bounds check.
func solveVacuous(p *lp.Problem) (*lp.Solution, error) {
	for i := 0; i < p.NumRows(); i++ {
		if p.RowLower[i] > 0 || p.RowUpper[i] < 0 {
			return &lp.Solution{Status: lp.StatusInfeasible},
				fmt.Errorf("simplex: empty problem with unsatisfiable row %d: %w", i, lp.ErrInfeasible)
		}
	}

	return &lp.Solution{Status: lp.StatusOptimal, Values: []float64{}}, nil
}

// solveFree settles a problem whose assembly produced no rows: every
// variable is unbounded on both sides, so a nonzero cost escapes to
// infinity and an all-zero cost vector is optimal at the origin. The
// conversion layer cannot represent the empty system.
func solveFree(p *lp.Problem) (*lp.Solution, error) {
	for j, cost := range p.ColCosts {
		if cost != 0 {
			return &lp.Solution{Status: lp.StatusUnbounded},
				fmt.Errorf("simplex: free column %s with nonzero cost: %w", p.Name(j), lp.ErrUnbounded)
		}
	}

	return &lp.Solution{Status: lp.StatusOptimal, Values: make([]float64, p.NumVariables())}, nil
}

// classify maps gonum's verdicts onto the shared sentinels, keeping
// the status visible on the returned Solution as well.
func classify(err error) (*lp.Solution, error) {
	switch {
	case errors.Is(err, convexlp.ErrInfeasible):
		return &lp.Solution{Status: lp.StatusInfeasible}, fmt.Errorf("simplex: %w", lp.ErrInfeasible)
	case errors.Is(err, convexlp.ErrUnbounded):
		return &lp.Solution{Status: lp.StatusUnbounded}, fmt.Errorf("simplex: %w", lp.ErrUnbounded)
	default:
		return &lp.Solution{Status: lp.StatusUnknown}, fmt.Errorf("simplex: solve: %w", err)
	}
}

// scaled returns row scaled by f as a fresh slice.
func scaled(row []float64, f float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = f * v
	}

	return out
}

// unit returns an n-vector with value v at position j.
func unit(n, j int, v float64) []float64 {
	out := make([]float64, n)
	out[j] = v

	return out
}
