package netio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowcut/netio"
	"github.com/katalvlaran/flowcut/network"
)

// NetioSuite exercises the YAML codec in both directions.
type NetioSuite struct {
	suite.Suite
}

// classicDoc is the six-node dataset in block form.
const classicDoc = `
source: s
sink: t
arcs:
  - tail: s
    head: A
    capacity: 100
  - tail: s
    head: B
    capacity: 150
  - tail: A
    head: B
    capacity: 120
  - tail: A
    head: C
    capacity: 90
  - tail: B
    head: D
    capacity: 110
  - tail: C
    head: D
    capacity: 120
  - tail: C
    head: t
    capacity: 140
  - tail: D
    head: t
    capacity: 90
`

// TestParseClassic verifies the canonical document end to end.
func (s *NetioSuite) TestParseClassic() {
	net, err := netio.Parse([]byte(classicDoc))
	require.NoError(s.T(), err)

	require.Equal(s.T(), "s", net.Source())
	require.Equal(s.T(), "t", net.Sink())
	require.Equal(s.T(), 6, net.NodeCount())
	require.Equal(s.T(), 8, net.ArcCount())

	c, ok := net.Capacity("A", "C")
	require.True(s.T(), ok)
	require.Equal(s.T(), 90.0, c)

	// Arc order in the file is the arc order in the network.
	arcs := net.Arcs()
	require.Equal(s.T(), network.ArcKey{Tail: "s", Head: "A"}, arcs[0].Key())
	require.Equal(s.T(), network.ArcKey{Tail: "D", Head: "t"}, arcs[7].Key())
}

// TestParseFlowStyle verifies the compact inline form of arcs.
func (s *NetioSuite) TestParseFlowStyle() {
	net, err := netio.Parse([]byte(
		"source: s\nsink: t\narcs: [{tail: s, head: t, capacity: 50}]\n",
	))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, net.ArcCount())

	c, ok := net.Capacity("s", "t")
	require.True(s.T(), ok)
	require.Equal(s.T(), 50.0, c)
}

// TestParseExtraNodes verifies the optional nodes list declares
// members no arc touches.
func (s *NetioSuite) TestParseExtraNodes() {
	net, err := netio.Parse([]byte(
		"source: s\nsink: t\nnodes: [C]\narcs: [{tail: s, head: t, capacity: 1}]\n",
	))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"C", "s", "t"}, net.Nodes())
	require.True(s.T(), net.HasNode("C"))
	require.Zero(s.T(), net.OutDegree("C"))
}

// TestParseNoArcs verifies an arc-free document still builds.
func (s *NetioSuite) TestParseNoArcs() {
	net, err := netio.Parse([]byte("source: s\nsink: t\n"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, net.ArcCount())
	require.Equal(s.T(), []string{"s", "t"}, net.Nodes())
}

// TestParseDocumentErrors verifies schema failures wrap ErrInvalidDocument.
func (s *NetioSuite) TestParseDocumentErrors() {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"malformed yaml", "source: s\nsink: t\narcs: [\n"},
		{"unknown top-level field", "source: s\nsink: t\nflow: 3\n"},
		{"unknown arc field", "source: s\nsink: t\narcs: [{tail: s, head: t, cap: 1}]\n"},
		{"capacity not a number", "source: s\nsink: t\narcs: [{tail: s, head: t, capacity: lots}]\n"},
		{"missing source", "sink: t\narcs: [{tail: s, head: t, capacity: 1}]\n"},
		{"missing sink", "source: s\narcs: [{tail: s, head: t, capacity: 1}]\n"},
	}
	for _, tc := range cases {
		tc := tc
		s.Run(tc.name, func() {
			_, err := netio.Parse([]byte(tc.input))
			require.ErrorIs(s.T(), err, netio.ErrInvalidDocument)
		})
	}
}

// TestParseNetworkErrorsPassThrough verifies structural failures keep
// their network package identity.
func (s *NetioSuite) TestParseNetworkErrorsPassThrough() {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{
			"source equals sink",
			"source: s\nsink: s\narcs: [{tail: s, head: t, capacity: 1}]\n",
			network.ErrSourceIsSink,
		},
		{
			"duplicate arc",
			"source: s\nsink: t\narcs: [{tail: s, head: t, capacity: 1}, {tail: s, head: t, capacity: 2}]\n",
			network.ErrDuplicateArc,
		},
		{
			"negative capacity",
			"source: s\nsink: t\narcs: [{tail: s, head: t, capacity: -1}]\n",
			network.ErrNegativeCapacity,
		},
		{
			"non-finite capacity",
			"source: s\nsink: t\narcs: [{tail: s, head: t, capacity: .nan}]\n",
			network.ErrNonFiniteCapacity,
		},
		{
			"self loop",
			"source: s\nsink: t\narcs: [{tail: s, head: s, capacity: 1}]\n",
			network.ErrSelfLoop,
		},
		{
			"empty endpoint",
			"source: s\nsink: t\narcs: [{tail: s, capacity: 1}]\n",
			network.ErrEmptyNodeID,
		},
	}
	for _, tc := range cases {
		tc := tc
		s.Run(tc.name, func() {
			_, err := netio.Parse([]byte(tc.input))
			require.ErrorIs(s.T(), err, tc.want)
			require.ErrorIs(s.T(), err, network.ErrInvalidNetwork)
			require.NotErrorIs(s.T(), err, netio.ErrInvalidDocument)
		})
	}
}

// TestLoad verifies the file path entry point.
func (s *NetioSuite) TestLoad() {
	path := filepath.Join(s.T().TempDir(), "net.yaml")
	require.NoError(s.T(), os.WriteFile(path, []byte(classicDoc), 0o600))

	net, err := netio.Load(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, net.ArcCount())
}

// TestLoadMissingFile verifies read failures keep their os identity.
func (s *NetioSuite) TestLoadMissingFile() {
	_, err := netio.Load(filepath.Join(s.T().TempDir(), "absent.yaml"))
	require.Error(s.T(), err)
	require.ErrorIs(s.T(), err, os.ErrNotExist)
	require.NotErrorIs(s.T(), err, netio.ErrInvalidDocument)
}

// TestMarshalRoundTrip verifies Marshal emits a document Parse accepts
// and that nothing is lost on the way.
func (s *NetioSuite) TestMarshalRoundTrip() {
	original, err := netio.Parse([]byte(classicDoc))
	require.NoError(s.T(), err)

	data, err := netio.Marshal(original)
	require.NoError(s.T(), err)

	reparsed, err := netio.Parse(data)
	require.NoError(s.T(), err)
	require.Equal(s.T(), original.Source(), reparsed.Source())
	require.Equal(s.T(), original.Sink(), reparsed.Sink())
	require.Equal(s.T(), original.Nodes(), reparsed.Nodes())
	require.Equal(s.T(), original.Arcs(), reparsed.Arcs())
}

// TestMarshalExtraNodes verifies only unimplied nodes land in the
// nodes list.
func (s *NetioSuite) TestMarshalExtraNodes() {
	net, err := network.New(
		[]string{"s", "t", "C"},
		[]network.Arc{{Tail: "s", Head: "t", Capacity: 1}},
		"s", "t",
	)
	require.NoError(s.T(), err)

	data, err := netio.Marshal(net)
	require.NoError(s.T(), err)
	require.Contains(s.T(), string(data), "nodes:")
	require.Contains(s.T(), string(data), "C")
	require.NotContains(s.T(), string(data), "- s\n", "implied nodes stay out of the list")

	reparsed, err := netio.Parse(data)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"C", "s", "t"}, reparsed.Nodes())
}

// TestMarshalNil verifies the nil guard.
func (s *NetioSuite) TestMarshalNil() {
	_, err := netio.Marshal(nil)
	require.ErrorIs(s.T(), err, netio.ErrNilNetwork)
}

// TestNonFiniteRejected verifies YAML infinity spellings cannot smuggle
// an unbounded capacity in.
func (s *NetioSuite) TestNonFiniteRejected() {
	_, err := netio.Parse([]byte(
		"source: s\nsink: t\narcs: [{tail: s, head: t, capacity: .inf}]\n",
	))
	require.ErrorIs(s.T(), err, network.ErrNonFiniteCapacity)
	require.NotErrorIs(s.T(), err, netio.ErrInvalidDocument)
}

func TestNetioSuite(t *testing.T) {
	suite.Run(t, new(NetioSuite))
}
