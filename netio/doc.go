// Package netio reads and writes flow networks as YAML documents, so
// tools and tests can keep their fixtures in files instead of code.
//
// # Schema
//
// A document names the source, the sink, an optional list of extra
// nodes, and the arc list. Node sets are otherwise derived from the
// arc endpoints, exactly as network.FromArcs does:
//
//	source: s
//	sink: t
//	nodes: [C]          # optional; nodes with no incident arcs
//	arcs:
//	  - tail: s
//	    head: A
//	    capacity: 100
//	  - {tail: A, head: t, capacity: 90}
//
// An omitted capacity defaults to zero. A document with no arcs parses
// into a structurally dead network; downstream flow computations return
// a zero result for it rather than an error.
//
// # Errors
//
// Parse and Load separate two failure classes:
//
//   - ErrInvalidDocument - the bytes are not a well-formed document:
//     malformed YAML, unknown fields, or a missing source/sink key.
//   - network.ErrInvalidNetwork - the document is well-formed but the
//     network it describes is not; the network package sentinels
//     (ErrDuplicateArc, ErrNegativeCapacity, ...) pass through
//     unchanged so callers match them with errors.Is as usual.
//
// Marshal inverts Parse: the emitted document round-trips through Parse
// into an equal Network.
package netio
