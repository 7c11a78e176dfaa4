package flow

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/flowcut/lp"
	"github.com/katalvlaran/flowcut/network"
)

// CutLP is the minimum-cut linear program of one network: the dual of
// the flow LP, with one "pay to cut" variable per arc and one side
// variable per interior node.
type CutLP struct {
	// Problem is ready to hand to any lp.Solver (minimization).
	Problem *lp.Problem

	arcs []network.Arc
	zOf  map[string]int
	net  *network.Network
}

// BuildCutLP formulates the minimum-cut problem of net:
//
//	minimize   Σ capacity(a) · r[a]
//	subject to r[a] + z[head] ≥ 1            arcs leaving the source
//	           r[a] − z[tail] ≥ 0            arcs entering the sink
//	           r[a] + z[head] − z[tail] ≥ 0  arcs between interior nodes
//	           r[a] ≥ 1                      a direct source→sink arc
//	           0 ≤ r, z ≤ 1
//
// z[v] = 1 reads as "v sits on the source side"; the source is
// implicitly 1 and the sink implicitly 0, which is how the four row
// families above fall out of the single interior rule. Arcs pointing
// back into the source or out of the sink can never cross the
// partition outward, their rows are vacuous and therefore omitted.
//
// The constraint matrix is totally unimodular, so although r and z
// are continuous, every optimal vertex is 0/1 and the arcs crossing
// the z-partition with r > 0.5 form a minimum cut whose capacity
// equals the maximum flow.
//
// Same nil and degeneracy policy as BuildFlowLP.
//
// Complexity: O(V + A) time and memory.
func BuildCutLP(net *network.Network) (*CutLP, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if IsDegenerate(net) {
		return nil, ErrDegenerateNetwork
	}

	arcs := net.Arcs()
	p := lp.NewProblem()

	rOf := make(map[network.ArcKey]int, len(arcs))
	for _, a := range arcs {
		name := fmt.Sprintf("cut[%s,%s]", a.Tail, a.Head)
		rOf[a.Key()] = p.AddVariable(name, a.Capacity, 0, 1)
	}
	zOf := make(map[string]int)
	for _, v := range net.Interior() {
		zOf[v] = p.AddVariable(fmt.Sprintf("side[%s]", v), 0, 0, 1)
	}

	source, sink := net.Source(), net.Sink()
	for _, a := range arcs {
		r := rOf[a.Key()]
		switch {
		case a.Head == source || a.Tail == sink:
			// Cannot cross the partition outward; no row needed.
		case a.Tail == source && a.Head == sink:
			p.AddGeRow([]int{r}, []float64{1}, 1)
		case a.Tail == source:
			p.AddGeRow([]int{r, zOf[a.Head]}, []float64{1, 1}, 1)
		case a.Head == sink:
			p.AddGeRow([]int{r, zOf[a.Tail]}, []float64{1, -1}, 0)
		default:
			p.AddGeRow([]int{r, zOf[a.Head], zOf[a.Tail]}, []float64{1, 1, -1}, 0)
		}
	}

	return &CutLP{Problem: p, arcs: arcs, zOf: zOf, net: net}, nil
}

// Arcs returns the arcs in column order (copy).
func (m *CutLP) Arcs() []network.Arc {
	out := make([]network.Arc, len(m.arcs))
	copy(out, m.arcs)

	return out
}

// Cut interprets a solver answer. Every r and z must sit within
// tolerance of 0 or 1; a fractional vertex is reported as
// ErrFractionalCut, never rounded into shape. The source side is read
// off the z variables first; the cut arcs are those that cross the
// partition with r > 0.5, since a cost-free r can park at 1 on a
// zero-capacity arc that never crosses. The summed capacity must agree
// with the reported objective.
//
// Complexity: O(V + A).
func (m *CutLP) Cut(sol *lp.Solution, opts Options) (*Cut, error) {
	opts.normalize()
	if sol == nil {
		return nil, ErrNilSolution
	}
	if !sol.IsOptimal() {
		return nil, fmt.Errorf("flow: cannot interpret a %s solution", sol.Status)
	}
	if want := m.Problem.NumVariables(); len(sol.Values) != want {
		return nil, fmt.Errorf("%w: %d values for %d variables",
			ErrInfeasibleAssignment, len(sol.Values), want)
	}

	// Integrality audit across the whole vertex.
	for i, v := range sol.Values {
		if math.Abs(v) > opts.Tolerance && math.Abs(v-1) > opts.Tolerance {
			return nil, fmt.Errorf("%w: %s = %g", ErrFractionalCut, m.Problem.Name(i), v)
		}
	}

	// The partition comes first: the source is implicitly on its own
	// side and the z variables place the interior nodes. The sink never
	// joins.
	side := map[string]bool{m.net.Source(): true}
	for v, col := range m.zOf {
		if sol.Values[col] > 0.5 {
			side[v] = true
		}
	}

	// An arc belongs to the cut only when it crosses the partition and
	// its r pays for it; r alone does not decide membership.
	cut := &Cut{}
	for i, a := range m.arcs {
		if side[a.Tail] && !side[a.Head] && sol.Values[i] > 0.5 {
			cut.Arcs = append(cut.Arcs, a)
			cut.Value += a.Capacity
		}
	}
	if drift := math.Abs(cut.Value - sol.Objective); drift > opts.Tolerance*float64(1+len(m.arcs)) {
		return nil, fmt.Errorf("%w: cut value %g disagrees with objective %g",
			ErrInfeasibleAssignment, cut.Value, sol.Objective)
	}

	cut.SourceSide = append(cut.SourceSide, m.net.Source())
	for v, col := range m.zOf {
		if sol.Values[col] > 0.5 {
			cut.SourceSide = append(cut.SourceSide, v)
		}
	}
	sort.Strings(cut.SourceSide)

	return cut, nil
}
