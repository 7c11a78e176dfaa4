package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flowcut/lp"
	"github.com/katalvlaran/flowcut/network"
)

// FlowLP is the max-flow linear program of one network, plus the
// bookkeeping needed to read a solver's answer back onto arcs.
// Column i of Problem is the flow on Arcs()[i].
type FlowLP struct {
	// Problem is ready to hand to any lp.Solver.
	Problem *lp.Problem

	arcs []network.Arc
	net  *network.Network
}

// BuildFlowLP formulates the maximum-flow problem of net:
//
//	maximize   Σ f[a] over arcs leaving the source
//	         − Σ f[a] over arcs entering the source
//	subject to 0 ≤ f[a] ≤ capacity(a)            per arc
//	           inflow(v) − outflow(v) = 0        per interior node
//
// Subtracting flow back into the source keeps the objective equal to
// the delivered s→t flow even when such arcs exist; without them the
// two objectives coincide.
//
// Steps:
//  1. Refuse nil and structurally dead networks (ErrDegenerateNetwork
//     when no arc leaves the source or none enters the sink).
//  2. One bounded variable per arc, in insertion order, named
//     flow[tail,head]. Arcs whose weak component contains neither
//     terminal are pinned to zero: they cannot carry s-t flow.
//  3. One conservation equality per interior node of a terminal
//     component, in sorted order. A component with no terminal gets no
//     rows at all; its node rows would sum to zero and leave the
//     equality block rank deficient for the solver.
//
// The builder is pure: it never talks to a solver.
//
// Complexity: O(V + A) time and memory.
func BuildFlowLP(net *network.Network) (*FlowLP, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if IsDegenerate(net) {
		return nil, ErrDegenerateNetwork
	}

	arcs := net.Arcs()
	live := liveNodes(net)
	p := lp.NewProblem()
	p.Maximize = true

	// 2) Flow variable per arc; source-incident arcs carry the
	//    objective coefficient, arcs outside the terminal components
	//    are pinned to zero.
	colOf := make(map[network.ArcKey]int, len(arcs))
	for _, a := range arcs {
		cost := 0.0
		switch {
		case a.Tail == net.Source():
			cost = 1
		case a.Head == net.Source():
			cost = -1
		}
		upper := a.Capacity
		if !live[a.Tail] {
			upper = 0
		}
		name := fmt.Sprintf("flow[%s,%s]", a.Tail, a.Head)
		colOf[a.Key()] = p.AddVariable(name, cost, 0, upper)
	}

	// 3) Conservation row per interior node of a terminal component.
	for _, v := range net.Interior() {
		if !live[v] {
			continue
		}
		in := net.Incoming(v)
		out := net.Outgoing(v)
		cols := make([]int, 0, len(in)+len(out))
		vals := make([]float64, 0, len(in)+len(out))
		for _, a := range in {
			cols = append(cols, colOf[a.Key()])
			vals = append(vals, 1)
		}
		for _, a := range out {
			cols = append(cols, colOf[a.Key()])
			vals = append(vals, -1)
		}
		p.AddEqRow(cols, vals, 0)
	}

	return &FlowLP{Problem: p, arcs: arcs, net: net}, nil
}

// Arcs returns the arcs in column order (copy).
func (m *FlowLP) Arcs() []network.Arc {
	out := make([]network.Arc, len(m.arcs))
	copy(out, m.arcs)

	return out
}

// Result interprets a solver answer and verifies it before anything
// escapes: value count, capacity bounds, conservation, and agreement
// between the recomputed value and the reported objective. Sub-epsilon
// numerical noise is clamped into the feasible box; genuine violations
// return ErrInfeasibleAssignment.
//
// Complexity: O(V + A).
func (m *FlowLP) Result(sol *lp.Solution, opts Options) (*Result, error) {
	opts.normalize()
	if sol == nil {
		return nil, ErrNilSolution
	}
	if !sol.IsOptimal() {
		return nil, fmt.Errorf("flow: cannot interpret a %s solution", sol.Status)
	}
	if len(sol.Values) != len(m.arcs) {
		return nil, fmt.Errorf("%w: %d values for %d arcs",
			ErrInfeasibleAssignment, len(sol.Values), len(m.arcs))
	}

	// Bounds check with clamping of fp noise.
	flows := make(map[network.ArcKey]float64, len(m.arcs))
	for i, a := range m.arcs {
		f := sol.Values[i]
		if f < -opts.Tolerance || f > a.Capacity+opts.Tolerance {
			return nil, fmt.Errorf("%w: arc %s carries %g outside [0, %g]",
				ErrInfeasibleAssignment, a.Key(), f, a.Capacity)
		}
		if f < 0 {
			f = 0
		}
		if f > a.Capacity {
			f = a.Capacity
		}
		flows[a.Key()] = f
	}

	// Conservation check per interior node.
	for _, v := range m.net.Interior() {
		var balance float64
		for _, a := range m.net.Incoming(v) {
			balance += flows[a.Key()]
		}
		for _, a := range m.net.Outgoing(v) {
			balance -= flows[a.Key()]
		}
		if math.Abs(balance) > opts.Tolerance {
			return nil, fmt.Errorf("%w: node %q off balance by %g",
				ErrInfeasibleAssignment, v, balance)
		}
	}

	// The value is recomputed from the clamped assignment so Result
	// stays self-consistent; it must agree with the solver objective.
	var value float64
	for _, a := range m.net.Outgoing(m.net.Source()) {
		value += flows[a.Key()]
	}
	for _, a := range m.net.Incoming(m.net.Source()) {
		value -= flows[a.Key()]
	}
	if drift := math.Abs(value - sol.Objective); drift > opts.Tolerance*float64(1+len(m.arcs)) {
		return nil, fmt.Errorf("%w: objective drift %g", ErrInfeasibleAssignment, drift)
	}

	return &Result{Value: value, Flow: flows}, nil
}

// liveNodes marks every node weakly connected to a terminal, walking
// arcs in both directions from the source and the sink.
func liveNodes(net *network.Network) map[string]bool {
	adj := make(map[string][]string)
	for _, a := range net.Arcs() {
		adj[a.Tail] = append(adj[a.Tail], a.Head)
		adj[a.Head] = append(adj[a.Head], a.Tail)
	}

	live := map[string]bool{net.Source(): true, net.Sink(): true}
	queue := []string{net.Source(), net.Sink()}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adj[v] {
			if !live[w] {
				live[w] = true
				queue = append(queue, w)
			}
		}
	}

	return live
}
