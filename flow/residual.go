package flow

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/flowcut/network"
)

// residualCaps builds the residual capacity map of an assignment:
// forward residual capacity − flow on every arc, plus a backward
// residual equal to the flow it carries. Entries at or below eps are
// dropped so the BFS never walks structural zeros.
//
// The returned map has the shape residual[u][v] = spare capacity u→v.
//
// Complexity: O(V + A) time and memory.
func residualCaps(net *network.Network, res *Result, eps float64) map[string]map[string]float64 {
	residual := make(map[string]map[string]float64, net.NodeCount())
	add := func(u, v string, c float64) {
		if c <= eps {
			return
		}
		if residual[u] == nil {
			residual[u] = make(map[string]float64)
		}
		residual[u][v] += c
	}

	for _, a := range net.Arcs() {
		f := res.Flow[a.Key()]
		add(a.Tail, a.Head, a.Capacity-f)
		add(a.Head, a.Tail, f)
	}

	return residual
}

// reachable runs a BFS over residual capacities and returns the set of
// nodes reachable from start.
func reachable(residual map[string]map[string]float64, start string) map[string]bool {
	seen := map[string]bool{start: true}
	queue := []string{start}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v := range residual[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// MinCutFromFlow extracts the minimum cut certified by an optimal flow
// using residual reachability; no solver is involved.
//
// Steps:
//  1. Build residual capacities from res (O(V + A)).
//  2. BFS from the source; S is the reachable set. If the sink lands
//     in S an augmenting path still exists, so res is not maximal:
//     ErrNotOptimal.
//  3. The cut arcs are exactly the arcs from S to the far side. Each
//     must be saturated, and back-crossing arcs must be empty; any
//     slack beyond tolerance is again ErrNotOptimal.
//  4. The summed capacity must equal res.Value (strong duality).
//
// The returned partition is the source-minimal one; other minimum
// cuts may exist when the optimum is not unique.
//
// Complexity: O(V + A) time and memory.
func MinCutFromFlow(net *network.Network, res *Result, opts Options) (*Cut, error) {
	opts.normalize()
	if net == nil {
		return nil, ErrNilNetwork
	}
	if res == nil {
		return nil, ErrNilResult
	}

	// 1) + 2) Residual reachability from the source.
	residual := residualCaps(net, res, opts.Epsilon)
	side := reachable(residual, net.Source())
	if side[net.Sink()] {
		return nil, fmt.Errorf("%w: augmenting path from %q to %q remains",
			ErrNotOptimal, net.Source(), net.Sink())
	}

	// 3) Collect and audit the crossing arcs.
	cut := &Cut{}
	for _, a := range net.Arcs() {
		f := res.Flow[a.Key()]
		switch {
		case side[a.Tail] && !side[a.Head]:
			if a.Capacity-f > opts.Tolerance {
				return nil, fmt.Errorf("%w: crossing arc %s has %g spare capacity",
					ErrNotOptimal, a.Key(), a.Capacity-f)
			}
			cut.Arcs = append(cut.Arcs, a)
			cut.Value += a.Capacity
		case !side[a.Tail] && side[a.Head]:
			if f > opts.Tolerance {
				return nil, fmt.Errorf("%w: back-crossing arc %s carries %g",
					ErrNotOptimal, a.Key(), f)
			}
		}
	}

	// 4) Strong duality: cut capacity equals flow value.
	if drift := math.Abs(cut.Value - res.Value); drift > opts.Tolerance*float64(1+net.ArcCount()) {
		return nil, fmt.Errorf("%w: cut capacity %g vs flow value %g",
			ErrNotOptimal, cut.Value, res.Value)
	}

	cut.SourceSide = make([]string, 0, len(side))
	for v := range side {
		cut.SourceSide = append(cut.SourceSide, v)
	}
	sort.Strings(cut.SourceSide)

	if opts.Verbose {
		fmt.Printf("MinCut: %d nodes on the source side, %d crossing arcs, value %g\n",
			len(cut.SourceSide), len(cut.Arcs), cut.Value)
	}

	return cut, nil
}
