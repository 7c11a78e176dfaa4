// Package flow computes maximum flows and minimum cuts on a
// network.Network by linear programming. It builds the flow LP, hands
// it to any lp.Solver, verifies the answer, and extracts the minimum
// cut two independent ways:
//
//   - Residual reachability
//
//   - Method: BFS over residual capacities of an optimal flow; the
//     source-reachable set S induces the cut, and every arc crossing
//     out of S is saturated.
//
//   - Time:   O(V + A) after the solve.
//
//   - Use when a flow is already in hand.
//
//   - Dual LP
//
//   - Method: a companion linear program with one variable per arc
//     (pay the capacity to cut it) and one per interior node (which
//     side is it on). The constraint family is totally unimodular,
//     so the continuous relaxation lands on 0/1 vertices.
//
//   - Time:   one extra LP solve.
//
//   - Use to cross-check the residual cut or when only the cut is
//     wanted.
//
// Strong duality ties everything together: the maximum-flow value and
// both cut values must agree exactly, and this package verifies that
// before returning anything.
//
// # API
//
// Options configures every entry point:
//
//	type Options struct {
//	    Ctx       context.Context // cancellation at solve boundaries
//	    Epsilon   float64         // structural zero for capacities and flows
//	    Tolerance float64         // verification slack for solver output
//	    Verbose   bool            // print progress steps
//	}
//
// Use DefaultOptions() to obtain production-safe defaults.
//
// The high-level entry points:
//
//	MaxFlow(net, solver, opts)        -> *Result  (value + assignment)
//	MinCut(net, solver, opts)         -> *Cut     (solve, then residual)
//	MinCutLP(net, solver, opts)       -> *Cut     (dual LP end to end)
//	MinCutFromFlow(net, result, opts) -> *Cut     (residual, no solve)
//
// The LP builders are exported for callers that bring their own
// solver orchestration:
//
//	BuildFlowLP(net) -> *FlowLP   (maximize net flow out of the source)
//	BuildCutLP(net)  -> *CutLP    (minimize capacity of cut arcs)
//
// Structurally dead networks, where no arc leaves the source or none
// enters the sink, are a policy case: the builders refuse them with
// ErrDegenerateNetwork, while MaxFlow, MinCut and MinCutLP treat them
// as a legal zero: max flow 0, empty cut, no solver call.
//
// # Errors
//
//	ErrNilNetwork           - nil *network.Network argument
//	ErrNilSolver            - nil lp.Solver argument
//	ErrNilResult            - nil *Result argument
//	ErrNilSolution          - nil *lp.Solution argument
//	ErrDegenerateNetwork    - builder refused a structurally dead network
//	ErrNotOptimal           - residual extraction found an augmenting path
//	                          or an unsaturated crossing arc
//	ErrInfeasibleAssignment - solver output violates bounds or conservation
//	ErrFractionalCut        - cut LP vertex not within tolerance of 0/1
//	lp.ErrInfeasible / lp.ErrUnbounded - propagated unchanged from the solver
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled
//
// # Integration
//
//   - Relies on github.com/katalvlaran/flowcut/network for the model
//     and github.com/katalvlaran/flowcut/lp for the solver surface.
//   - github.com/katalvlaran/flowcut/simplex is the bundled backend.
package flow
