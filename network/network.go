package network

import (
	"fmt"
	"math"
	"sort"
)

// New builds a Network from an explicit node set, an arc list, and the
// designated source and sink. The capacity of each connection travels
// inside its Arc.
//
// Validation is exhaustive and fails on the first violation:
//  1. source and sink are non-empty and distinct.
//  2. Every declared node ID is non-empty (duplicates collapse; nodes
//     form a set).
//  3. source and sink are members of the node set.
//  4. Every arc, in input order: endpoints non-empty and declared,
//     tail != head, capacity finite and >= 0, (tail, head) unique.
//
// The returned Network is immutable: accessors hand out copies, and
// adjacency indices are built once here so later queries cost
// O(degree).
//
// Complexity: O(N log N + A) time, O(N + A) memory.
func New(nodes []string, arcs []Arc, source, sink string) (*Network, error) {
	// 1) Source / sink identity checks before anything else.
	if source == "" {
		return nil, fmt.Errorf("%w (source)", ErrEmptyNodeID)
	}
	if sink == "" {
		return nil, fmt.Errorf("%w (sink)", ErrEmptyNodeID)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %q", ErrSourceIsSink, source)
	}

	// 2) Collapse the declared node list into a set.
	nodeSet := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		if id == "" {
			return nil, fmt.Errorf("%w (node list)", ErrEmptyNodeID)
		}
		nodeSet[id] = struct{}{}
	}

	// 3) Membership of the two distinguished nodes.
	if _, ok := nodeSet[source]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if _, ok := nodeSet[sink]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrSinkNotFound, sink)
	}

	n := &Network{
		source:   source,
		sink:     sink,
		nodeSet:  nodeSet,
		arcs:     make([]Arc, 0, len(arcs)),
		capacity: make(map[string]map[string]float64, len(nodeSet)),
		out:      make(map[string][]Arc, len(nodeSet)),
		in:       make(map[string][]Arc, len(nodeSet)),
	}

	// 4) Validate and index each arc in input order.
	for _, a := range arcs {
		if a.Tail == "" || a.Head == "" {
			return nil, fmt.Errorf("%w (arc %q->%q)", ErrEmptyNodeID, a.Tail, a.Head)
		}
		if a.Tail == a.Head {
			return nil, fmt.Errorf("%w: %q", ErrSelfLoop, a.Tail)
		}
		if _, ok := nodeSet[a.Tail]; !ok {
			return nil, fmt.Errorf("%w: %q (arc %s)", ErrNodeNotFound, a.Tail, a.Key())
		}
		if _, ok := nodeSet[a.Head]; !ok {
			return nil, fmt.Errorf("%w: %q (arc %s)", ErrNodeNotFound, a.Head, a.Key())
		}
		if math.IsNaN(a.Capacity) || math.IsInf(a.Capacity, 0) {
			return nil, fmt.Errorf("%w: arc %s", ErrNonFiniteCapacity, a.Key())
		}
		if a.Capacity < 0 {
			return nil, fmt.Errorf("%w: arc %s has capacity %g", ErrNegativeCapacity, a.Key(), a.Capacity)
		}
		if _, dup := n.capacity[a.Tail][a.Head]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArc, a.Key())
		}

		if n.capacity[a.Tail] == nil {
			n.capacity[a.Tail] = make(map[string]float64)
		}
		n.capacity[a.Tail][a.Head] = a.Capacity
		n.arcs = append(n.arcs, a)
		n.out[a.Tail] = append(n.out[a.Tail], a)
		n.in[a.Head] = append(n.in[a.Head], a)
	}

	// 5) Freeze the sorted node list for deterministic iteration.
	n.nodes = make([]string, 0, len(nodeSet))
	for id := range nodeSet {
		n.nodes = append(n.nodes, id)
	}
	sort.Strings(n.nodes)

	return n, nil
}

// FromArcs builds a Network whose node set is derived from the arc
// endpoints plus source and sink. It is the convenient form for tests
// and tools; New is the strict form with a declared node set.
//
// A source or sink with no incident arcs is still a member of the node
// set, so structurally dead networks build fine and simply carry no
// flow.
func FromArcs(source, sink string, arcs ...Arc) (*Network, error) {
	nodes := make([]string, 0, 2+2*len(arcs))
	nodes = append(nodes, source, sink)
	for _, a := range arcs {
		// Empty endpoints stay undeclared; the arc check in New owns
		// that diagnostic.
		if a.Tail != "" {
			nodes = append(nodes, a.Tail)
		}
		if a.Head != "" {
			nodes = append(nodes, a.Head)
		}
	}

	return New(nodes, arcs, source, sink)
}
