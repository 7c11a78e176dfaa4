package network

// This file declares Arc, Network and the construction error sentinels.

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNetwork is the class sentinel wrapped by every
	// construction failure in this package.
	ErrInvalidNetwork = errors.New("network: invalid network")

	// ErrSourceIsSink is returned when source and sink name the same node.
	ErrSourceIsSink = fmt.Errorf("%w: source equals sink", ErrInvalidNetwork)

	// ErrEmptyNodeID is returned when any node identifier is the empty string.
	ErrEmptyNodeID = fmt.Errorf("%w: empty node ID", ErrInvalidNetwork)

	// ErrSourceNotFound is returned when the source is not in the node set.
	ErrSourceNotFound = fmt.Errorf("%w: source not found", ErrInvalidNetwork)

	// ErrSinkNotFound is returned when the sink is not in the node set.
	ErrSinkNotFound = fmt.Errorf("%w: sink not found", ErrInvalidNetwork)

	// ErrNodeNotFound is returned when an arc endpoint is not in the node set.
	ErrNodeNotFound = fmt.Errorf("%w: arc endpoint not declared", ErrInvalidNetwork)

	// ErrSelfLoop is returned for an arc whose tail equals its head.
	ErrSelfLoop = fmt.Errorf("%w: self-loop", ErrInvalidNetwork)

	// ErrNegativeCapacity is returned for an arc with capacity below zero.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidNetwork)

	// ErrNonFiniteCapacity is returned for a NaN or infinite capacity.
	ErrNonFiniteCapacity = fmt.Errorf("%w: non-finite capacity", ErrInvalidNetwork)

	// ErrDuplicateArc is returned when two arcs share the same (tail, head).
	ErrDuplicateArc = fmt.Errorf("%w: duplicate arc", ErrInvalidNetwork)
)

// Arc is a directed capacitated connection between two nodes.
// Arc is a value type; two arcs are the same connection when their
// Tail and Head match.
type Arc struct {
	Tail     string
	Head     string
	Capacity float64
}

// Key identifies the arc regardless of capacity, e.g. for map indexing.
func (a Arc) Key() ArcKey { return ArcKey{Tail: a.Tail, Head: a.Head} }

// String renders the arc as `tail->head (cap)`.
func (a Arc) String() string {
	return fmt.Sprintf("%s->%s (%g)", a.Tail, a.Head, a.Capacity)
}

// ArcKey is the capacity-free identity of an arc, usable as a map key.
type ArcKey struct {
	Tail string
	Head string
}

// String renders the key as `tail->head`.
func (k ArcKey) String() string { return k.Tail + "->" + k.Head }

// Network is a validated, immutable directed flow network.
// All structural invariants hold once New returns; the value is safe
// for concurrent readers.
type Network struct {
	source string
	sink   string

	nodes   []string            // sorted
	nodeSet map[string]struct{} // membership index

	arcs     []Arc                         // insertion order
	capacity map[string]map[string]float64 // capacity[tail][head]

	out map[string][]Arc // outgoing adjacency, insertion order
	in  map[string][]Arc // incoming adjacency, insertion order
}
