package flow

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/flowcut/lp"
	"github.com/katalvlaran/flowcut/network"
)

// IsDegenerate reports whether net falls under the zero-flow policy:
// no arc leaves the source or no arc enters the sink. A nil network
// counts as degenerate.
func IsDegenerate(net *network.Network) bool {
	if net == nil {
		return true
	}

	return net.OutDegree(net.Source()) == 0 || net.InDegree(net.Sink()) == 0
}

// MaxFlow computes a verified maximum flow from source to sink.
//
// Steps:
//  1. Normalize options, guard arguments and the context (O(1)).
//  2. Structurally dead networks return a zero assignment without a
//     solver call (documented policy; the builder would refuse them).
//  3. BuildFlowLP, then solver.Solve under opts.Ctx. Solver failures,
//     including lp.ErrInfeasible and lp.ErrUnbounded, propagate
//     unchanged.
//  4. Interpret and verify the answer (bounds, conservation, value).
//
// Complexity: O(V + A) around one LP solve.
func MaxFlow(net *network.Network, solver lp.Solver, opts Options) (*Result, error) {
	opts.normalize()
	if net == nil {
		return nil, ErrNilNetwork
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	// 2) Zero-flow policy for structurally dead networks.
	if IsDegenerate(net) {
		if opts.Verbose {
			fmt.Printf("MaxFlow: degenerate network, value 0 without solving\n")
		}

		return zeroResult(net), nil
	}

	model, err := BuildFlowLP(net)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		fmt.Printf("MaxFlow: %d arcs, %d conservation rows\n",
			model.Problem.NumVariables(), model.Problem.NumRows())
	}

	sol, err := solver.Solve(opts.Ctx, model.Problem)
	if err != nil {
		return nil, err
	}

	res, err := model.Result(sol, opts)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		fmt.Printf("MaxFlow: optimal value %g\n", res.Value)
	}

	return res, nil
}

// MinCut computes a maximum flow and extracts its minimum cut by
// residual reachability. One LP solve total.
func MinCut(net *network.Network, solver lp.Solver, opts Options) (*Cut, error) {
	opts.normalize()

	res, err := MaxFlow(net, solver, opts)
	if err != nil {
		return nil, err
	}

	return MinCutFromFlow(net, res, opts)
}

// MinCutLP computes the minimum cut by solving the dual LP directly,
// independent of any flow. Structurally dead networks yield an empty
// cut over the forward-reachable closure, mirroring what the residual
// strategy reports at zero flow. Solver failures propagate unchanged;
// a fractional vertex is reported as ErrFractionalCut.
func MinCutLP(net *network.Network, solver lp.Solver, opts Options) (*Cut, error) {
	opts.normalize()
	if net == nil {
		return nil, ErrNilNetwork
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	if IsDegenerate(net) {
		if opts.Verbose {
			fmt.Printf("MinCutLP: degenerate network, empty cut without solving\n")
		}

		return MinCutFromFlow(net, zeroResult(net), opts)
	}

	model, err := BuildCutLP(net)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		fmt.Printf("MinCutLP: %d variables, %d rows\n",
			model.Problem.NumVariables(), model.Problem.NumRows())
	}

	sol, err := solver.Solve(opts.Ctx, model.Problem)
	if err != nil {
		return nil, err
	}

	cut, err := model.Cut(sol, opts)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		fmt.Printf("MinCutLP: %d cut arcs, value %g\n", len(cut.Arcs), cut.Value)
	}

	return cut, nil
}

// Verify re-checks an assignment (and optionally a cut) against the
// network invariants: capacity bounds, interior conservation, and cut
// value equal to flow value. It is the cross-validation hook for
// callers that obtained the pieces separately.
func Verify(net *network.Network, res *Result, cut *Cut, opts Options) error {
	opts.normalize()
	if net == nil {
		return ErrNilNetwork
	}
	if res == nil {
		return ErrNilResult
	}

	for _, a := range net.Arcs() {
		f := res.Flow[a.Key()]
		if f < -opts.Tolerance || f > a.Capacity+opts.Tolerance {
			return fmt.Errorf("%w: arc %s carries %g outside [0, %g]",
				ErrInfeasibleAssignment, a.Key(), f, a.Capacity)
		}
	}
	for _, v := range net.Interior() {
		var balance float64
		for _, a := range net.Incoming(v) {
			balance += res.Flow[a.Key()]
		}
		for _, a := range net.Outgoing(v) {
			balance -= res.Flow[a.Key()]
		}
		if math.Abs(balance) > opts.Tolerance {
			return fmt.Errorf("%w: node %q off balance by %g", ErrInfeasibleAssignment, v, balance)
		}
	}
	if cut != nil {
		if drift := math.Abs(cut.Value - res.Value); drift > opts.Tolerance*float64(1+net.ArcCount()) {
			return fmt.Errorf("%w: cut value %g vs flow value %g", ErrNotOptimal, cut.Value, res.Value)
		}
	}

	return nil
}

// zeroResult returns the all-zero assignment over net's arcs.
func zeroResult(net *network.Network) *Result {
	flows := make(map[network.ArcKey]float64, net.ArcCount())
	for _, a := range net.Arcs() {
		flows[a.Key()] = 0
	}

	return &Result{Value: 0, Flow: flows}
}

// SortArcKeys orders arc identities by tail then head, for stable
// reporting.
func SortArcKeys(keys []network.ArcKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Tail != keys[j].Tail {
			return keys[i].Tail < keys[j].Tail
		}

		return keys[i].Head < keys[j].Head
	})
}
