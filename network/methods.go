package network

// Source returns the designated source node.
func (n *Network) Source() string { return n.source }

// Sink returns the designated sink node.
func (n *Network) Sink() string { return n.sink }

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// ArcCount returns the number of arcs.
func (n *Network) ArcCount() int { return len(n.arcs) }

// Nodes returns all node IDs in sorted order (copy).
func (n *Network) Nodes() []string {
	out := make([]string, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// Arcs returns all arcs in insertion order (copy).
func (n *Network) Arcs() []Arc {
	out := make([]Arc, len(n.arcs))
	copy(out, n.arcs)

	return out
}

// HasNode reports whether id is a member of the node set.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodeSet[id]

	return ok
}

// HasArc reports whether an arc tail->head exists.
func (n *Network) HasArc(tail, head string) bool {
	_, ok := n.capacity[tail][head]

	return ok
}

// Capacity returns the capacity of arc tail->head and whether the arc
// exists.
func (n *Network) Capacity(tail, head string) (float64, bool) {
	c, ok := n.capacity[tail][head]

	return c, ok
}

// Outgoing returns the arcs leaving id in insertion order (copy).
// Unknown IDs yield nil.
func (n *Network) Outgoing(id string) []Arc {
	return copyArcs(n.out[id])
}

// Incoming returns the arcs entering id in insertion order (copy).
// Unknown IDs yield nil.
func (n *Network) Incoming(id string) []Arc {
	return copyArcs(n.in[id])
}

// Interior returns every node except source and sink, sorted.
// These are exactly the nodes subject to flow conservation.
func (n *Network) Interior() []string {
	out := make([]string, 0, len(n.nodes))
	for _, id := range n.nodes {
		if id == n.source || id == n.sink {
			continue
		}
		out = append(out, id)
	}

	return out
}

// OutDegree returns the number of arcs leaving id.
func (n *Network) OutDegree(id string) int { return len(n.out[id]) }

// InDegree returns the number of arcs entering id.
func (n *Network) InDegree(id string) int { return len(n.in[id]) }

func copyArcs(arcs []Arc) []Arc {
	if arcs == nil {
		return nil
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}
