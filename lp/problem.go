package lp

import (
	"fmt"
	"math"
)

// Inf returns positive infinity, suitable for unbounded row or column
// bounds.
func Inf() float64 { return math.Inf(1) }

// NegInf returns negative infinity, suitable for unbounded row or
// column bounds.
func NegInf() float64 { return math.Inf(-1) }

// Nonzero is one entry of the sparse constraint matrix.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// Problem is a linear program in bounded-variable form.
//
// Build it incrementally: AddVariable for every column first, then the
// Add*Row helpers. All slices stay index-aligned; Validate checks the
// result before a backend consumes it.
type Problem struct {
	// Maximize flips the optimization sense (default is minimize).
	Maximize bool

	// ColCosts are the objective coefficients, one per variable.
	ColCosts []float64

	// ColLower and ColUpper bound each variable; use NegInf/Inf for
	// unbounded sides.
	ColLower []float64
	ColUpper []float64

	// ColNames label variables for diagnostics; never used numerically.
	ColNames []string

	// RowLower and RowUpper bound each constraint row.
	RowLower []float64
	RowUpper []float64

	// ConstMatrix holds the constraint matrix as (row, col, value)
	// entries in insertion order.
	ConstMatrix []Nonzero
}

// NewProblem returns an empty problem (minimization sense).
func NewProblem() *Problem { return &Problem{} }

// AddVariable appends a variable with the given objective coefficient
// and bounds, returning its column index. An empty name is replaced by
// a positional one.
func (p *Problem) AddVariable(name string, cost, lower, upper float64) int {
	idx := len(p.ColCosts)
	if name == "" {
		name = fmt.Sprintf("x%d", idx)
	}
	p.ColCosts = append(p.ColCosts, cost)
	p.ColLower = append(p.ColLower, lower)
	p.ColUpper = append(p.ColUpper, upper)
	p.ColNames = append(p.ColNames, name)

	return idx
}

// AddDenseRow appends the constraint lower ≤ coeffs·x ≤ upper given a
// dense coefficient vector; zero coefficients are filtered out.
func (p *Problem) AddDenseRow(lower float64, coeffs []float64, upper float64) int {
	row := len(p.RowLower)
	p.RowLower = append(p.RowLower, lower)
	p.RowUpper = append(p.RowUpper, upper)
	for col, val := range coeffs {
		if val != 0 {
			p.ConstMatrix = append(p.ConstMatrix, Nonzero{Row: row, Col: col, Val: val})
		}
	}

	return row
}

// AddSparseRow appends the constraint lower ≤ Σ vals[i]·x[cols[i]] ≤ upper.
// cols and vals must have equal length; zero values are filtered out.
func (p *Problem) AddSparseRow(lower float64, cols []int, vals []float64, upper float64) int {
	row := len(p.RowLower)
	p.RowLower = append(p.RowLower, lower)
	p.RowUpper = append(p.RowUpper, upper)
	for i, col := range cols {
		if vals[i] != 0 {
			p.ConstMatrix = append(p.ConstMatrix, Nonzero{Row: row, Col: col, Val: vals[i]})
		}
	}

	return row
}

// AddEqRow appends the equality constraint Σ vals[i]·x[cols[i]] = rhs.
func (p *Problem) AddEqRow(cols []int, vals []float64, rhs float64) int {
	return p.AddSparseRow(rhs, cols, vals, rhs)
}

// AddLeRow appends the constraint Σ vals[i]·x[cols[i]] ≤ rhs.
func (p *Problem) AddLeRow(cols []int, vals []float64, rhs float64) int {
	return p.AddSparseRow(NegInf(), cols, vals, rhs)
}

// AddGeRow appends the constraint Σ vals[i]·x[cols[i]] ≥ rhs.
func (p *Problem) AddGeRow(cols []int, vals []float64, rhs float64) int {
	return p.AddSparseRow(rhs, cols, vals, Inf())
}

// NumVariables returns the number of columns.
func (p *Problem) NumVariables() int { return len(p.ColCosts) }

// NumRows returns the number of constraint rows.
func (p *Problem) NumRows() int { return len(p.RowLower) }

// Name returns the diagnostic label of column i, or a positional label
// when i is out of range.
func (p *Problem) Name(i int) string {
	if i < 0 || i >= len(p.ColNames) {
		return fmt.Sprintf("x%d", i)
	}

	return p.ColNames[i]
}

// Validate checks internal consistency: aligned slice lengths, finite
// costs, ordered bounds, and matrix entries inside the declared
// dimensions. Backends call it before translating the problem; a
// failure wraps ErrMalformed.
func (p *Problem) Validate() error {
	n := len(p.ColCosts)
	if len(p.ColLower) != n || len(p.ColUpper) != n || len(p.ColNames) != n {
		return fmt.Errorf("%w: column slices disagree (%d costs, %d lower, %d upper, %d names)",
			ErrMalformed, n, len(p.ColLower), len(p.ColUpper), len(p.ColNames))
	}
	m := len(p.RowLower)
	if len(p.RowUpper) != m {
		return fmt.Errorf("%w: row slices disagree (%d lower, %d upper)",
			ErrMalformed, m, len(p.RowUpper))
	}

	for i := 0; i < n; i++ {
		if math.IsNaN(p.ColCosts[i]) || math.IsInf(p.ColCosts[i], 0) {
			return fmt.Errorf("%w: non-finite cost on %s", ErrMalformed, p.Name(i))
		}
		if math.IsNaN(p.ColLower[i]) || math.IsNaN(p.ColUpper[i]) {
			return fmt.Errorf("%w: NaN bound on %s", ErrMalformed, p.Name(i))
		}
		if p.ColLower[i] > p.ColUpper[i] {
			return fmt.Errorf("%w: crossed bounds on %s [%g, %g]",
				ErrMalformed, p.Name(i), p.ColLower[i], p.ColUpper[i])
		}
	}
	for i := 0; i < m; i++ {
		if math.IsNaN(p.RowLower[i]) || math.IsNaN(p.RowUpper[i]) {
			return fmt.Errorf("%w: NaN bound on row %d", ErrMalformed, i)
		}
		if p.RowLower[i] > p.RowUpper[i] {
			return fmt.Errorf("%w: crossed bounds on row %d [%g, %g]",
				ErrMalformed, i, p.RowLower[i], p.RowUpper[i])
		}
	}
	for _, nz := range p.ConstMatrix {
		if nz.Row < 0 || nz.Row >= m {
			return fmt.Errorf("%w: matrix entry row %d outside [0, %d)", ErrMalformed, nz.Row, m)
		}
		if nz.Col < 0 || nz.Col >= n {
			return fmt.Errorf("%w: matrix entry col %d outside [0, %d)", ErrMalformed, nz.Col, n)
		}
		if math.IsNaN(nz.Val) || math.IsInf(nz.Val, 0) {
			return fmt.Errorf("%w: non-finite matrix entry at (%d, %d)", ErrMalformed, nz.Row, nz.Col)
		}
	}

	return nil
}
