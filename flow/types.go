package flow

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/flowcut/network"
)

var (
	// ErrNilNetwork is returned when the network argument is nil.
	ErrNilNetwork = errors.New("flow: nil network")

	// ErrNilSolver is returned when the solver argument is nil.
	ErrNilSolver = errors.New("flow: nil solver")

	// ErrNilResult is returned when the result argument is nil.
	ErrNilResult = errors.New("flow: nil result")

	// ErrNilSolution is returned when the solution argument is nil.
	ErrNilSolution = errors.New("flow: nil solution")

	// ErrDegenerateNetwork is returned by the LP builders when no arc
	// leaves the source or no arc enters the sink. The high-level
	// entry points translate this into a zero flow and an empty cut.
	ErrDegenerateNetwork = errors.New("flow: degenerate network: no arc leaves the source or none enters the sink")

	// ErrNotOptimal is returned when residual extraction finds an
	// augmenting path or an unsaturated crossing arc, i.e. the given
	// flow is not maximal.
	ErrNotOptimal = errors.New("flow: flow is not maximal")

	// ErrInfeasibleAssignment is returned when solver output violates
	// capacity bounds or conservation beyond tolerance.
	ErrInfeasibleAssignment = errors.New("flow: solver returned an infeasible assignment")

	// ErrFractionalCut is returned when the cut LP lands on a vertex
	// that is not 0/1 within tolerance. The relaxation is integral for
	// this constraint family, so a fractional vertex is reported, never
	// rounded.
	ErrFractionalCut = errors.New("flow: cut LP returned a fractional vertex")
)

const (
	// DefaultEpsilon is the structural zero: capacities and residuals
	// at or below it count as absent.
	DefaultEpsilon = 1e-9

	// DefaultTolerance is the verification slack applied to solver
	// output (bounds, conservation, duality checks).
	DefaultTolerance = 1e-6
)

// Options configures all flow and cut computations.
//   - Ctx: checked at solve boundaries; defaults to context.Background().
//   - Epsilon: structural zero for capacities and flows (default 1e-9).
//   - Tolerance: verification slack for solver output (default 1e-6).
//   - Verbose: print each major step.
type Options struct {
	Ctx       context.Context
	Epsilon   float64
	Tolerance float64
	Verbose   bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Epsilon:   DefaultEpsilon,
		Tolerance: DefaultTolerance,
		Verbose:   false,
	}
}

// normalize fills zero values so the defaults survive a partially
// populated struct literal.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
}

// ArcFlow pairs an arc with the flow it carries.
type ArcFlow struct {
	Arc  network.Arc
	Flow float64
}

// Result is a verified maximum-flow assignment.
type Result struct {
	// Value is the net flow leaving the source.
	Value float64

	// Flow maps every arc of the network to its share, including
	// zero-flow arcs.
	Flow map[network.ArcKey]float64
}

// FlowOn returns the flow on arc tail->head, or 0 when the arc is
// absent.
func (r *Result) FlowOn(tail, head string) float64 {
	return r.Flow[network.ArcKey{Tail: tail, Head: head}]
}

// Positive returns the arcs carrying flow above eps, sorted by tail
// then head, with capacities attached for reporting.
func (r *Result) Positive(net *network.Network, eps float64) []ArcFlow {
	if net == nil {
		return nil
	}
	out := make([]ArcFlow, 0, len(r.Flow))
	for _, a := range net.Arcs() {
		if f := r.Flow[a.Key()]; f > eps {
			out = append(out, ArcFlow{Arc: a, Flow: f})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Arc.Tail != out[j].Arc.Tail {
			return out[i].Arc.Tail < out[j].Arc.Tail
		}

		return out[i].Arc.Head < out[j].Arc.Head
	})

	return out
}

// Cut is a verified minimum cut.
type Cut struct {
	// Value is the total capacity of the cut arcs.
	Value float64

	// Arcs are the cut arcs in network insertion order.
	Arcs []network.Arc

	// SourceSide lists the nodes on the source side, sorted. For the
	// residual strategy this is the BFS-reachable set; for the dual LP
	// it is read off the node variables.
	SourceSide []string
}

// Keys returns the capacity-free identities of the cut arcs, in the
// same order as Arcs.
func (c *Cut) Keys() []network.ArcKey {
	keys := make([]network.ArcKey, len(c.Arcs))
	for i, a := range c.Arcs {
		keys[i] = a.Key()
	}

	return keys
}

// Contains reports whether arc tail->head is part of the cut.
func (c *Cut) Contains(tail, head string) bool {
	for _, a := range c.Arcs {
		if a.Tail == tail && a.Head == head {
			return true
		}
	}

	return false
}
