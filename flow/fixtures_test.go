package flow_test

import (
	"context"

	"github.com/katalvlaran/flowcut/lp"
	"github.com/katalvlaran/flowcut/network"
)

// classicNetwork returns the six-node network whose maximum flow is
// 180 and whose unique minimum cut is {A->C, D->t}.
func classicNetwork() *network.Network {
	net, err := network.FromArcs("s", "t",
		network.Arc{Tail: "s", Head: "A", Capacity: 100},
		network.Arc{Tail: "s", Head: "B", Capacity: 150},
		network.Arc{Tail: "A", Head: "B", Capacity: 120},
		network.Arc{Tail: "A", Head: "C", Capacity: 90},
		network.Arc{Tail: "B", Head: "D", Capacity: 110},
		network.Arc{Tail: "C", Head: "D", Capacity: 120},
		network.Arc{Tail: "C", Head: "t", Capacity: 140},
		network.Arc{Tail: "D", Head: "t", Capacity: 90},
	)
	if err != nil {
		panic(err)
	}

	return net
}

// singleArc returns the trivial network s -50-> t.
func singleArc() *network.Network {
	net, err := network.FromArcs("s", "t",
		network.Arc{Tail: "s", Head: "t", Capacity: 50},
	)
	if err != nil {
		panic(err)
	}

	return net
}

// splitNetwork has arcs out of the source and into the sink, but no
// path between them: max flow 0, empty cut.
func splitNetwork() *network.Network {
	net, err := network.FromArcs("s", "t",
		network.Arc{Tail: "s", Head: "A", Capacity: 5},
		network.Arc{Tail: "B", Head: "t", Capacity: 7},
	)
	if err != nil {
		panic(err)
	}

	return net
}

// deadSourceNetwork has no arc leaving the source at all.
func deadSourceNetwork() *network.Network {
	net, err := network.FromArcs("s", "t",
		network.Arc{Tail: "B", Head: "t", Capacity: 7},
	)
	if err != nil {
		panic(err)
	}

	return net
}

// backflowNetwork carries an arc back into the source. The cycle
// s->X->s can hold up to 6 units of circulation, so only a net
// objective keeps the optimum at the 4 units that actually reach t.
func backflowNetwork() *network.Network {
	net, err := network.FromArcs("s", "t",
		network.Arc{Tail: "s", Head: "X", Capacity: 10},
		network.Arc{Tail: "X", Head: "t", Capacity: 4},
		network.Arc{Tail: "X", Head: "s", Capacity: 6},
	)
	if err != nil {
		panic(err)
	}

	return net
}

// islandNetwork pairs the trivial s -50-> t arc with a component that
// touches neither terminal. The X->Y arc can never carry s-t flow;
// its two conservation rows would mirror each other and leave the
// equality block rank deficient.
func islandNetwork() *network.Network {
	net, err := network.FromArcs("s", "t",
		network.Arc{Tail: "s", Head: "t", Capacity: 50},
		network.Arc{Tail: "X", Head: "Y", Capacity: 3},
	)
	if err != nil {
		panic(err)
	}

	return net
}

// countingSolver wraps a solver and counts Solve invocations.
type countingSolver struct {
	inner lp.Solver
	calls int
}

func (c *countingSolver) Solve(ctx context.Context, p *lp.Problem) (*lp.Solution, error) {
	c.calls++

	return c.inner.Solve(ctx, p)
}

// failingSolver always returns the configured error.
type failingSolver struct {
	err error
}

func (f *failingSolver) Solve(context.Context, *lp.Problem) (*lp.Solution, error) {
	return nil, f.err
}

// cannedSolver returns a fixed solution, for doctoring interpreter
// input.
type cannedSolver struct {
	sol *lp.Solution
}

func (c *cannedSolver) Solve(context.Context, *lp.Problem) (*lp.Solution, error) {
	return c.sol, nil
}
