// Package network models a directed, capacitated flow network with a
// bound source and sink, validated once at construction and immutable
// afterwards.
//
// A Network is the input to every flow computation in this module: it
// owns the node set, the arc list with real non-negative capacities,
// and prebuilt adjacency indices so that Outgoing/Incoming queries run
// in O(degree) without scanning the arc list.
//
// # Construction
//
// Use New when the node set is declared explicitly (endpoints must be
// members), or FromArcs when the node set should be derived from the
// arc endpoints plus source and sink:
//
//	net, err := network.FromArcs("s", "t",
//	    network.Arc{Tail: "s", Head: "A", Capacity: 100},
//	    network.Arc{Tail: "A", Head: "t", Capacity: 90},
//	)
//
// Construction fails fast on the first violation; a Network that builds
// successfully satisfies every structural invariant and never changes,
// so it is safe for concurrent readers without locks.
//
// # Errors
//
// All construction failures wrap ErrInvalidNetwork, with a detail
// sentinel per condition:
//
//	ErrSourceIsSink      - source and sink are the same node
//	ErrEmptyNodeID       - an empty node identifier anywhere
//	ErrSourceNotFound    - source missing from the node set
//	ErrSinkNotFound      - sink missing from the node set
//	ErrNodeNotFound      - an arc endpoint missing from the node set
//	ErrSelfLoop          - an arc with tail == head
//	ErrNegativeCapacity  - an arc with capacity < 0
//	ErrNonFiniteCapacity - an arc with NaN or infinite capacity
//	ErrDuplicateArc      - two arcs sharing (tail, head)
//
// Match with errors.Is against either the detail sentinel or
// ErrInvalidNetwork for the whole class.
//
// Complexity: New runs in O(N + A) time and memory for N nodes and A
// arcs (plus O(N log N) to sort the node list once).
package network
