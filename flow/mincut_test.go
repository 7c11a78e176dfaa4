package flow_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowcut/flow"
	"github.com/katalvlaran/flowcut/lp"
	"github.com/katalvlaran/flowcut/network"
	"github.com/katalvlaran/flowcut/simplex"
)

// MinCutSuite exercises both cut strategies and their agreement.
type MinCutSuite struct {
	suite.Suite
}

// TestClassicResidual verifies the residual strategy on the benchmark
// network, whose minimum cut is unique.
func (s *MinCutSuite) TestClassicResidual() {
	cut, err := flow.MinCut(classicNetwork(), simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 180.0, cut.Value, delta)
	require.Equal(s.T(), []network.ArcKey{
		{Tail: "A", Head: "C"},
		{Tail: "D", Head: "t"},
	}, cut.Keys())
	require.Equal(s.T(), []string{"A", "B", "D", "s"}, cut.SourceSide)
	require.True(s.T(), cut.Contains("A", "C"))
	require.False(s.T(), cut.Contains("s", "A"))
}

// TestClassicDualLP verifies the dual strategy lands on the same cut.
func (s *MinCutSuite) TestClassicDualLP() {
	cut, err := flow.MinCutLP(classicNetwork(), simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 180.0, cut.Value, delta)
	require.Equal(s.T(), []network.ArcKey{
		{Tail: "A", Head: "C"},
		{Tail: "D", Head: "t"},
	}, cut.Keys())
	require.Equal(s.T(), []string{"A", "B", "D", "s"}, cut.SourceSide)
}

// TestStrategiesAgree cross-validates the two strategies and the flow
// value on every fixture.
func (s *MinCutSuite) TestStrategiesAgree() {
	fixtures := map[string]*network.Network{
		"classic":      classicNetwork(),
		"single":       singleArc(),
		"disconnected": splitNetwork(),
		"degenerate":   deadSourceNetwork(),
		"backflow":     backflowNetwork(),
		"island":       islandNetwork(),
	}

	for name, net := range fixtures {
		opts := flow.DefaultOptions()
		res, err := flow.MaxFlow(net, simplex.New(), opts)
		require.NoError(s.T(), err, name)

		residual, err := flow.MinCutFromFlow(net, res, opts)
		require.NoError(s.T(), err, name)
		dual, err := flow.MinCutLP(net, simplex.New(), opts)
		require.NoError(s.T(), err, name)

		require.InDelta(s.T(), res.Value, residual.Value, delta, name)
		require.InDelta(s.T(), res.Value, dual.Value, delta, name)
		require.NoError(s.T(), flow.Verify(net, res, residual, opts), name)
		require.NoError(s.T(), flow.Verify(net, res, dual, opts), name)
	}
}

// TestSingleArcCut verifies both strategies on the one-arc network.
func (s *MinCutSuite) TestSingleArcCut() {
	residual, err := flow.MinCut(singleArc(), simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)
	dual, err := flow.MinCutLP(singleArc(), simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)

	for _, cut := range []*flow.Cut{residual, dual} {
		require.InDelta(s.T(), 50.0, cut.Value, delta)
		require.Equal(s.T(), []network.ArcKey{{Tail: "s", Head: "t"}}, cut.Keys())
		require.Equal(s.T(), []string{"s"}, cut.SourceSide)
	}
}

// TestDisconnectedCut verifies the empty cut and matching partitions.
func (s *MinCutSuite) TestDisconnectedCut() {
	residual, err := flow.MinCut(splitNetwork(), simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)
	dual, err := flow.MinCutLP(splitNetwork(), simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)

	for _, cut := range []*flow.Cut{residual, dual} {
		require.InDelta(s.T(), 0.0, cut.Value, delta)
		require.Empty(s.T(), cut.Arcs)
		require.Equal(s.T(), []string{"A", "s"}, cut.SourceSide)
	}
}

// TestIsolatedComponentCut verifies both strategies leave the island
// arc out: it can never cross a partition separating s from t.
func (s *MinCutSuite) TestIsolatedComponentCut() {
	residual, err := flow.MinCut(islandNetwork(), simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)
	dual, err := flow.MinCutLP(islandNetwork(), simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)

	for _, cut := range []*flow.Cut{residual, dual} {
		require.InDelta(s.T(), 50.0, cut.Value, delta)
		require.Equal(s.T(), []network.ArcKey{{Tail: "s", Head: "t"}}, cut.Keys())
		require.False(s.T(), cut.Contains("X", "Y"))
	}

	// The island side labels are free in the dual, so only the residual
	// partition is pinned down.
	require.Equal(s.T(), []string{"s"}, residual.SourceSide)
}

// TestDegenerateCut verifies the no-solve policy on dead networks.
func (s *MinCutSuite) TestDegenerateCut() {
	solver := &countingSolver{inner: simplex.New()}
	cut, err := flow.MinCutLP(deadSourceNetwork(), solver, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, solver.calls)
	require.InDelta(s.T(), 0.0, cut.Value, delta)
	require.Empty(s.T(), cut.Arcs)
	require.Equal(s.T(), []string{"s"}, cut.SourceSide)
}

// TestNotOptimalDetection verifies residual extraction refuses flows
// that still admit augmenting paths.
func (s *MinCutSuite) TestNotOptimalDetection() {
	net := classicNetwork()
	zero := &flow.Result{Value: 0, Flow: map[network.ArcKey]float64{}}
	_, err := flow.MinCutFromFlow(net, zero, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrNotOptimal)

	// 90 units along s->A->C->t leave s->B->D->t wide open.
	partial := &flow.Result{Value: 90, Flow: map[network.ArcKey]float64{
		{Tail: "s", Head: "A"}: 90,
		{Tail: "A", Head: "C"}: 90,
		{Tail: "C", Head: "t"}: 90,
	}}
	_, err = flow.MinCutFromFlow(net, partial, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrNotOptimal)
}

// TestFractionalVertexReported verifies a doctored fractional solution
// is refused, not rounded.
func (s *MinCutSuite) TestFractionalVertexReported() {
	canned := &cannedSolver{sol: &lp.Solution{
		Status:    lp.StatusOptimal,
		Values:    []float64{0.5},
		Objective: 25,
	}}
	_, err := flow.MinCutLP(singleArc(), canned, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrFractionalCut)
}

// TestCutInterpreterRejects verifies the dual-side verification layer.
func (s *MinCutSuite) TestCutInterpreterRejects() {
	model, err := flow.BuildCutLP(singleArc())
	require.NoError(s.T(), err)
	opts := flow.DefaultOptions()

	_, err = model.Cut(nil, opts)
	require.ErrorIs(s.T(), err, flow.ErrNilSolution)

	_, err = model.Cut(&lp.Solution{Status: lp.StatusUnknown}, opts)
	require.Error(s.T(), err)

	_, err = model.Cut(&lp.Solution{Status: lp.StatusOptimal, Values: []float64{1, 0}}, opts)
	require.ErrorIs(s.T(), err, flow.ErrInfeasibleAssignment)

	drifted := &lp.Solution{Status: lp.StatusOptimal, Values: []float64{1}, Objective: 999}
	_, err = model.Cut(drifted, opts)
	require.ErrorIs(s.T(), err, flow.ErrInfeasibleAssignment)
}

// TestCutMembershipFollowsPartition verifies a cost-free r parked at 1
// on a non-crossing arc stays out of the cut.
func (s *MinCutSuite) TestCutMembershipFollowsPartition() {
	net, err := network.FromArcs("s", "t",
		network.Arc{Tail: "s", Head: "t", Capacity: 50},
		network.Arc{Tail: "X", Head: "s", Capacity: 0},
	)
	require.NoError(s.T(), err)
	model, err := flow.BuildCutLP(net)
	require.NoError(s.T(), err)

	// Columns: cut[s,t], cut[X,s], side[X]. The zero-capacity arc into
	// the source costs nothing, so an optimal vertex may park its r at
	// 1 even though the arc cannot cross.
	parked := &lp.Solution{
		Status:    lp.StatusOptimal,
		Values:    []float64{1, 1, 0},
		Objective: 50,
	}
	cut, err := model.Cut(parked, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []network.ArcKey{{Tail: "s", Head: "t"}}, cut.Keys())
	require.False(s.T(), cut.Contains("X", "s"))
	require.InDelta(s.T(), 50.0, cut.Value, delta)
	require.Equal(s.T(), []string{"s"}, cut.SourceSide)

	// Whatever vertex the live solver lands on, the cut reads the same.
	solved, err := flow.MinCutLP(net, simplex.New(), flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 50.0, solved.Value, delta)
	require.Equal(s.T(), []network.ArcKey{{Tail: "s", Head: "t"}}, solved.Keys())
}

// TestSolverErrorsPropagateUnchanged verifies dual-LP pass-through.
func (s *MinCutSuite) TestSolverErrorsPropagateUnchanged() {
	raised := fmt.Errorf("backend says: %w", lp.ErrInfeasible)
	_, err := flow.MinCutLP(classicNetwork(), &failingSolver{err: raised}, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, lp.ErrInfeasible)
	require.Equal(s.T(), raised, err)
}

// TestCutLPShape verifies the exported dual builder surface.
func (s *MinCutSuite) TestCutLPShape() {
	net := classicNetwork()
	model, err := flow.BuildCutLP(net)
	require.NoError(s.T(), err)

	require.False(s.T(), model.Problem.Maximize)
	// One r per arc plus one z per interior node.
	require.Equal(s.T(), net.ArcCount()+len(net.Interior()), model.Problem.NumVariables())
	// One row per arc; none can point back into the source here.
	require.Equal(s.T(), net.ArcCount(), model.Problem.NumRows())
	require.Equal(s.T(), "cut[s,A]", model.Problem.Name(0))
	require.NoError(s.T(), model.Problem.Validate())
}

func TestMinCutSuite(t *testing.T) {
	suite.Run(t, new(MinCutSuite))
}
