package lp

// Status is the outcome of a solve.
type Status int

const (
	// StatusUnknown means the backend terminated without classifying
	// the problem.
	StatusUnknown Status = iota

	// StatusOptimal means an optimal solution was found.
	StatusOptimal

	// StatusInfeasible means no point satisfies all constraints.
	StatusInfeasible

	// StatusUnbounded means the objective improves without limit.
	StatusUnbounded
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Solution carries the result of solving a Problem.
type Solution struct {
	// Status classifies the outcome; Values and Objective are only
	// meaningful when Status == StatusOptimal.
	Status Status

	// Values holds one primal value per variable, index-aligned with
	// the Problem columns.
	Values []float64

	// Objective is the objective value at the solution, in the
	// problem's own sense (already negated back for maximization).
	Objective float64
}

// IsOptimal reports whether the solve reached optimality.
func (s *Solution) IsOptimal() bool { return s.Status == StatusOptimal }

// Value returns the solution value of column i, or 0 when i is out of
// range.
func (s *Solution) Value(i int) float64 {
	if i < 0 || i >= len(s.Values) {
		return 0
	}

	return s.Values[i]
}
